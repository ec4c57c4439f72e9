package catalog

import (
	"context"
	"errors"
	"strings"

	"tallerlima/internal/domain"
	"tallerlima/internal/repository"

	"gorm.io/gorm"
)

const (
	defaultProvince = "Lima"
	defaultCountry  = "Perú"
)

// Service implements the entity access layer once for both directory
// kinds: list query building, CRUD and sub-record reconciliation.
type Service[E any, P record[E]] struct {
	repo *repository.CatalogRepository[E, P]
	def  Definition[E, P]
}

func NewService[E any, P record[E]](repo *repository.CatalogRepository[E, P], def Definition[E, P]) *Service[E, P] {
	return &Service[E, P]{repo: repo, def: def}
}

func (s *Service[E, P]) List(ctx context.Context, p ListParams) ([]E, int64, error) {
	q := repository.ListQuery{
		Page:      p.Page,
		Limit:     p.Limit,
		SortBy:    p.SortBy,
		SortOrder: p.SortOrder,
	}
	if p.Search != "" {
		q.Filters = append(q.Filters, repository.NameContains(p.Search))
	}
	if p.Checked != nil {
		q.Filters = append(q.Filters, repository.CheckedEquals(*p.Checked))
	}
	if p.District != "" {
		q.Filters = append(q.Filters, repository.DistrictContains(p.District))
	}
	return s.repo.List(ctx, q)
}

func (s *Service[E, P]) Get(ctx context.Context, id string) (P, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service[E, P]) Create(ctx context.Context, req EntryRequest) (P, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Type == nil || !s.def.Types[*req.Type] {
		return nil, ErrTypeInvalid
	}

	e := s.def.New(req)

	if req.Address != nil {
		a, err := addressFromPayload(req.Address)
		if err != nil {
			return nil, err
		}
		e.AttachAddress(a)
	}
	if req.Contact != nil {
		e.AttachContact(contactFromPayload(req.Contact))
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	// Return the persisted graph, not the in-memory object.
	return s.repo.GetByID(ctx, e.EntryID())
}

func (s *Service[E, P]) Update(ctx context.Context, id string, req EntryRequest) (P, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Type != nil && !s.def.Types[*req.Type] {
		return nil, ErrTypeInvalid
	}

	s.def.Apply(e, req)
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	// Reconcile sub-records: update in place when owned, create bound to
	// the parent otherwise. An omitted fragment is left untouched.
	if req.Address != nil {
		if existing := e.OwnedAddress(); existing != nil {
			if err := applyAddressPayload(existing, req.Address); err != nil {
				return nil, err
			}
			if err := s.repo.SaveAddress(ctx, existing); err != nil {
				return nil, err
			}
		} else {
			a, err := addressFromPayload(req.Address)
			if err != nil {
				return nil, err
			}
			e.AttachAddress(a)
			if err := s.repo.SaveAddress(ctx, a); err != nil {
				return nil, err
			}
		}
	}

	if req.Contact != nil {
		if existing := e.OwnedContact(); existing != nil {
			applyContactPayload(existing, req.Contact)
			if err := s.repo.SaveContact(ctx, existing); err != nil {
				return nil, err
			}
		} else {
			c := contactFromPayload(req.Contact)
			e.AttachContact(c)
			if err := s.repo.SaveContact(ctx, c); err != nil {
				return nil, err
			}
		}
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service[E, P]) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service[E, P]) Counts(ctx context.Context) (total int64, checked int64, err error) {
	return s.repo.Counts(ctx)
}

func addressFromPayload(p *AddressPayload) (*domain.Address, error) {
	a := &domain.Address{}
	if err := applyAddressPayload(a, p); err != nil {
		return nil, err
	}
	return a, nil
}

// applyAddressPayload replaces every address field from the fragment;
// fragments are full replacements, not merges.
func applyAddressPayload(a *domain.Address, p *AddressPayload) error {
	if strings.TrimSpace(p.District) == "" {
		return ErrDistrictRequired
	}
	a.Street = p.Street
	a.District = p.District
	a.Province = defaultProvince
	if p.Province != nil && *p.Province != "" {
		a.Province = *p.Province
	}
	a.Country = defaultCountry
	if p.Country != nil && *p.Country != "" {
		a.Country = *p.Country
	}
	a.Latitude = p.Latitude
	a.Longitude = p.Longitude
	return nil
}

func contactFromPayload(p *ContactPayload) *domain.Contact {
	c := &domain.Contact{}
	applyContactPayload(c, p)
	return c
}

func applyContactPayload(c *domain.Contact, p *ContactPayload) {
	c.Phone = p.Phone
	c.PhoneAlt = p.PhoneAlt
	c.Email = p.Email
	c.Whatsapp = p.Whatsapp
	c.Website = p.Website
	c.Facebook = p.Facebook
	c.Instagram = p.Instagram
}
