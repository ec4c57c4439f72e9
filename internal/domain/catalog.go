package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkshopType string

const (
	WorkshopMecanico    WorkshopType = "MECANICO"
	WorkshopDireccion   WorkshopType = "DIRECCION"
	WorkshopMultimarca  WorkshopType = "MULTIMARCA"
	WorkshopDiagnostico WorkshopType = "DIAGNOSTICO"
	WorkshopElectrico   WorkshopType = "ELECTRICO"
	WorkshopPlanchado   WorkshopType = "PLANCHADO"
	WorkshopOtro        WorkshopType = "OTRO"
)

type RectifierType string

const (
	RectifierRectificadora RectifierType = "RECTIFICADORA"
	RectifierTorno         RectifierType = "TORNO"
	RectifierSoldadura     RectifierType = "SOLDADURA"
	RectifierOtro          RectifierType = "OTRO"
)

// CatalogEntry is implemented by Workshop and EngineRectifier so the
// catalog repository and service can be written once and instantiated
// for both tables.
type CatalogEntry interface {
	EntryID() string
	OwnedAddress() *Address
	OwnedContact() *Contact
	AttachAddress(a *Address)
	AttachContact(c *Contact)
}

// Workshop is an auto-repair shop in the Lima directory.
type Workshop struct {
	ID          string       `json:"id" gorm:"primaryKey;size:36"`
	Name        string       `json:"name"`
	Type        WorkshopType `json:"type"`
	Description *string      `json:"description"`
	Services    []string     `json:"services" gorm:"serializer:json"`
	Rating      *float64     `json:"rating"`
	Checked     bool         `json:"checked"`
	TenantID    *string      `json:"tenantId"`
	CreatedAt   time.Time    `json:"createdAt"`
	Address     *Address     `json:"address" gorm:"foreignKey:WorkshopID"`
	Contact     *Contact     `json:"contact" gorm:"foreignKey:WorkshopID"`
}

func (Workshop) TableName() string { return "workshops" }

func (w *Workshop) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

func (w *Workshop) EntryID() string        { return w.ID }
func (w *Workshop) OwnedAddress() *Address { return w.Address }
func (w *Workshop) OwnedContact() *Contact { return w.Contact }

func (w *Workshop) AttachAddress(a *Address) {
	a.WorkshopID = &w.ID
	a.RectifierID = nil
	w.Address = a
}

func (w *Workshop) AttachContact(c *Contact) {
	c.WorkshopID = &w.ID
	c.RectifierID = nil
	w.Contact = c
}

// EngineRectifier is an engine-rectification shop. Structurally a
// Workshop with specialties instead of services.
type EngineRectifier struct {
	ID          string        `json:"id" gorm:"primaryKey;size:36"`
	Name        string        `json:"name"`
	Type        RectifierType `json:"type"`
	Description *string       `json:"description"`
	Specialties []string      `json:"specialties" gorm:"serializer:json"`
	Rating      *float64      `json:"rating"`
	Checked     bool          `json:"checked"`
	TenantID    *string       `json:"tenantId"`
	CreatedAt   time.Time     `json:"createdAt"`
	Address     *Address      `json:"address" gorm:"foreignKey:RectifierID"`
	Contact     *Contact      `json:"contact" gorm:"foreignKey:RectifierID"`
}

func (EngineRectifier) TableName() string { return "engine_rectifiers" }

func (r *EngineRectifier) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *EngineRectifier) EntryID() string        { return r.ID }
func (r *EngineRectifier) OwnedAddress() *Address { return r.Address }
func (r *EngineRectifier) OwnedContact() *Contact { return r.Contact }

func (r *EngineRectifier) AttachAddress(a *Address) {
	a.RectifierID = &r.ID
	a.WorkshopID = nil
	r.Address = a
}

func (r *EngineRectifier) AttachContact(c *Contact) {
	c.RectifierID = &r.ID
	c.WorkshopID = nil
	r.Contact = c
}

// Address is owned by exactly one workshop or one rectifier.
type Address struct {
	ID          string   `json:"id" gorm:"primaryKey;size:36"`
	Street      *string  `json:"street"`
	District    string   `json:"district"`
	Province    string   `json:"province"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	WorkshopID  *string  `json:"workshopId,omitempty" gorm:"size:36;uniqueIndex"`
	RectifierID *string  `json:"rectifierId,omitempty" gorm:"size:36;uniqueIndex"`
}

func (Address) TableName() string { return "addresses" }

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Contact holds the reachable channels for a workshop or rectifier.
type Contact struct {
	ID          string  `json:"id" gorm:"primaryKey;size:36"`
	Phone       *string `json:"phone"`
	PhoneAlt    *string `json:"phoneAlt"`
	Email       *string `json:"email"`
	Whatsapp    *string `json:"whatsapp"`
	Website     *string `json:"website"`
	Facebook    *string `json:"facebook"`
	Instagram   *string `json:"instagram"`
	WorkshopID  *string `json:"workshopId,omitempty" gorm:"size:36;uniqueIndex"`
	RectifierID *string `json:"rectifierId,omitempty" gorm:"size:36;uniqueIndex"`
}

func (Contact) TableName() string { return "contacts" }

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
