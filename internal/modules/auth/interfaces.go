package auth

import (
	"context"

	"tallerlima/internal/domain"
)

type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID, email, name, role string) (string, error)
}
