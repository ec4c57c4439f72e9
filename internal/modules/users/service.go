package users

import (
	"context"
	"errors"
	"strings"

	"tallerlima/internal/domain"
	"tallerlima/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service holds the SUPER_ADMIN-only user management logic.
type Service struct {
	repo *repository.UserRepository
}

func NewService(repo *repository.UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, p ListParams) ([]domain.User, int64, error) {
	q := repository.ListQuery{
		Page:      p.Page,
		Limit:     p.Limit,
		SortBy:    p.SortBy,
		SortOrder: p.SortOrder,
	}
	if p.Search != "" {
		q.Filters = append(q.Filters, repository.NameOrEmailContains(p.Search))
	}
	return s.repo.List(ctx, q)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	role := domain.RoleUser
	if req.Role != "" {
		role = domain.UserRole(req.Role)
		if !role.Valid() {
			return nil, ErrRoleInvalid
		}
	}

	// Duplicate pre-check; the store's unique constraint stays as backstop.
	exists, err := s.repo.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         normalizeName(req.Name),
		Role:         role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		exists, err := s.repo.ExistsByEmail(ctx, *req.Email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
		u.Email = *req.Email
	}

	if req.Name != nil {
		u.Name = normalizeName(req.Name)
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if req.Role != nil && *req.Role != "" {
		role := domain.UserRole(*req.Role)
		if !role.Valid() {
			return nil, ErrRoleInvalid
		}
		u.Role = role
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return u, nil
}

// Delete removes a user; the acting super admin can never remove their
// own account.
func (s *Service) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrSelfDelete
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeName(name *string) *string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return nil
	}
	return name
}
