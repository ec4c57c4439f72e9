package repository

import (
	"context"

	"tallerlima/internal/domain"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogRecord ties the generic parameter to the two directory tables.
type catalogRecord[E any] interface {
	*E
	domain.CatalogEntry
}

// CatalogConfig describes one directory table: its name and the column
// on addresses/contacts that references it.
type CatalogConfig struct {
	Table    string
	OwnerKey string
}

func (c CatalogConfig) sortColumn(sortBy string) string {
	switch sortBy {
	case "name", "type", "checked":
		return c.Table + "." + sortBy
	case "district":
		return "addresses.district"
	default:
		return c.Table + ".created_at"
	}
}

// CatalogRepository is the single CRUD+filter data-access component,
// instantiated once for workshops and once for engine rectifiers.
type CatalogRepository[E any, P catalogRecord[E]] struct {
	db  *gorm.DB
	cfg CatalogConfig
}

func NewCatalogRepository[E any, P catalogRecord[E]](db *gorm.DB, cfg CatalogConfig) *CatalogRepository[E, P] {
	return &CatalogRepository[E, P]{db: db, cfg: cfg}
}

// List runs the count and the windowed fetch concurrently over the same
// folded predicate. The two reads are not snapshot-isolated against each
// other; under concurrent writes total and the page may diverge slightly.
func (r *CatalogRepository[E, P]) List(ctx context.Context, q ListQuery) ([]E, int64, error) {
	build := func(db *gorm.DB) *gorm.DB {
		tx := db.Model(new(E))
		join := q.SortBy == "district"
		for _, f := range q.Filters {
			switch v := f.(type) {
			case NameContains:
				tx = tx.Where("LOWER("+r.cfg.Table+".name) LIKE ?", contains(string(v)))
			case CheckedEquals:
				tx = tx.Where(r.cfg.Table+".checked = ?", bool(v))
			case DistrictContains:
				join = true
				tx = tx.Where("LOWER(addresses.district) LIKE ?", contains(string(v)))
			}
		}
		if join {
			tx = tx.Joins("LEFT JOIN addresses ON addresses." + r.cfg.OwnerKey + " = " + r.cfg.Table + ".id")
		}
		return tx
	}

	var entries []E
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return build(r.db.WithContext(gctx)).Count(&total).Error
	})
	g.Go(func() error {
		return build(r.db.WithContext(gctx)).
			Order(r.cfg.sortColumn(q.SortBy) + " " + q.Direction()).
			Limit(q.Limit).
			Offset(q.Offset()).
			Preload("Address").
			Preload("Contact").
			Find(&entries).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// GetByID fetches the full entity graph: parent plus owned sub-records.
func (r *CatalogRepository[E, P]) GetByID(ctx context.Context, id string) (P, error) {
	var e E
	err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Contact").
		First(&e, r.cfg.Table+".id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return P(&e), nil
}

// Create persists the entry and any attached sub-records in one call.
func (r *CatalogRepository[E, P]) Create(ctx context.Context, e P) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// Update writes the parent row only; sub-records are reconciled through
// SaveAddress/SaveContact as separate sequential operations.
func (r *CatalogRepository[E, P]) Update(ctx context.Context, e P) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error
}

// SaveAddress creates the row when it has no id yet, updates it in place
// otherwise.
func (r *CatalogRepository[E, P]) SaveAddress(ctx context.Context, a *domain.Address) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *CatalogRepository[E, P]) SaveContact(ctx context.Context, c *domain.Contact) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes the entry and cascades to its owned address and contact.
func (r *CatalogRepository[E, P]) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where(r.cfg.OwnerKey+" = ?", id).Delete(&domain.Address{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where(r.cfg.OwnerKey+" = ?", id).Delete(&domain.Contact{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(new(E), "id = ?", id).Error
}

// Counts returns the total and checked row counts for the dashboard.
func (r *CatalogRepository[E, P]) Counts(ctx context.Context) (total int64, checked int64, err error) {
	if err = r.db.WithContext(ctx).Model(new(E)).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.WithContext(ctx).Model(new(E)).Where("checked = ?", true).Count(&checked).Error; err != nil {
		return 0, 0, err
	}
	return total, checked, nil
}
