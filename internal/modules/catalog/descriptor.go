package catalog

import "tallerlima/internal/domain"

// record ties the generic parameter to the two directory entities.
type record[E any] interface {
	*E
	domain.CatalogEntry
}

// Definition parameterizes the generic catalog module for one entity
// kind: its route slug, allowed type values and field mapping.
type Definition[E any, P record[E]] struct {
	Slug  string
	Kind  string
	Types map[string]bool
	New   func(req EntryRequest) P
	Apply func(e P, req EntryRequest)
}

// Workshops defines the auto-repair workshop instantiation.
func Workshops() Definition[domain.Workshop, *domain.Workshop] {
	return Definition[domain.Workshop, *domain.Workshop]{
		Slug: "workshops",
		Kind: "workshop",
		Types: map[string]bool{
			string(domain.WorkshopMecanico):    true,
			string(domain.WorkshopDireccion):   true,
			string(domain.WorkshopMultimarca):  true,
			string(domain.WorkshopDiagnostico): true,
			string(domain.WorkshopElectrico):   true,
			string(domain.WorkshopPlanchado):   true,
			string(domain.WorkshopOtro):        true,
		},
		New: func(req EntryRequest) *domain.Workshop {
			w := &domain.Workshop{
				Description: req.Description,
				Rating:      req.Rating,
				TenantID:    req.TenantID,
				Services:    req.Services,
			}
			if req.Name != nil {
				w.Name = *req.Name
			}
			if req.Type != nil {
				w.Type = domain.WorkshopType(*req.Type)
			}
			if req.Checked != nil {
				w.Checked = *req.Checked
			}
			if w.Services == nil {
				w.Services = []string{}
			}
			return w
		},
		Apply: func(w *domain.Workshop, req EntryRequest) {
			if req.Name != nil {
				w.Name = *req.Name
			}
			if req.Type != nil {
				w.Type = domain.WorkshopType(*req.Type)
			}
			if req.Description != nil {
				w.Description = req.Description
			}
			if req.Services != nil {
				w.Services = req.Services
			}
			if req.Rating != nil {
				w.Rating = req.Rating
			}
			if req.Checked != nil {
				w.Checked = *req.Checked
			}
			if req.TenantID != nil {
				w.TenantID = req.TenantID
			}
		},
	}
}

// Rectifiers defines the engine-rectifier instantiation.
func Rectifiers() Definition[domain.EngineRectifier, *domain.EngineRectifier] {
	return Definition[domain.EngineRectifier, *domain.EngineRectifier]{
		Slug: "rectifiers",
		Kind: "rectifier",
		Types: map[string]bool{
			string(domain.RectifierRectificadora): true,
			string(domain.RectifierTorno):         true,
			string(domain.RectifierSoldadura):     true,
			string(domain.RectifierOtro):          true,
		},
		New: func(req EntryRequest) *domain.EngineRectifier {
			r := &domain.EngineRectifier{
				Description: req.Description,
				Rating:      req.Rating,
				TenantID:    req.TenantID,
				Specialties: req.Specialties,
			}
			if req.Name != nil {
				r.Name = *req.Name
			}
			if req.Type != nil {
				r.Type = domain.RectifierType(*req.Type)
			}
			if req.Checked != nil {
				r.Checked = *req.Checked
			}
			if r.Specialties == nil {
				r.Specialties = []string{}
			}
			return r
		},
		Apply: func(r *domain.EngineRectifier, req EntryRequest) {
			if req.Name != nil {
				r.Name = *req.Name
			}
			if req.Type != nil {
				r.Type = domain.RectifierType(*req.Type)
			}
			if req.Description != nil {
				r.Description = req.Description
			}
			if req.Specialties != nil {
				r.Specialties = req.Specialties
			}
			if req.Rating != nil {
				r.Rating = req.Rating
			}
			if req.Checked != nil {
				r.Checked = *req.Checked
			}
			if req.TenantID != nil {
				r.TenantID = req.TenantID
			}
		},
	}
}
