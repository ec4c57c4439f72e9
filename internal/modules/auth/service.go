package auth

import (
	"context"
	"errors"
	"strings"

	"tallerlima/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains the credential-exchange logic for the dashboard.
type Service struct {
	users UserRepositoryInterface
	jwt   TokenIssuer
}

func NewService(users UserRepositoryInterface, jwt TokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login validates the credentials against the stored bcrypt hash and
// issues a session token bound to {id, email, name, role}.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	name := ""
	if user.Name != nil {
		name = *user.Name
	}
	token, err := s.jwt.GenerateToken(user.ID, user.Email, name, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user}, nil
}

// Me resolves the session's user record.
func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

