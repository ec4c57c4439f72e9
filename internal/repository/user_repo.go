package repository

import (
	"context"
	"errors"
	"strings"

	"tallerlima/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userSortColumn(sortBy string) string {
	switch sortBy {
	case "name", "email":
		return "users." + sortBy
	default:
		return "users.created_at"
	}
}

func (r *UserRepository) List(ctx context.Context, q ListQuery) ([]domain.User, int64, error) {
	build := func(db *gorm.DB) *gorm.DB {
		tx := db.Model(&domain.User{})
		for _, f := range q.Filters {
			if v, ok := f.(NameOrEmailContains); ok {
				tx = tx.Where("LOWER(users.email) LIKE ? OR LOWER(users.name) LIKE ?", contains(string(v)), contains(string(v)))
			}
		}
		return tx
	}

	var users []domain.User
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return build(r.db.WithContext(gctx)).Count(&total).Error
	})
	g.Go(func() error {
		return build(r.db.WithContext(gctx)).
			Order(userSortColumn(q.SortBy) + " " + q.Direction()).
			Limit(q.Limit).
			Offset(q.Offset()).
			Find(&users).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

// ExistsByEmail reports whether another user already holds the email.
// excludeID skips the user being updated so they can keep their own email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id).Error
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error
	return total, err
}

// IsDuplicate recognizes a unique-constraint violation from either the
// postgres driver or gorm's translated error, as a backstop behind the
// pre-check query.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
