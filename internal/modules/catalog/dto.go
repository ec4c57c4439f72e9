package catalog

// AddressPayload is the address fragment of a create/update request.
// Province and country default to Lima / Perú when absent.
type AddressPayload struct {
	Street    *string  `json:"street"`
	District  string   `json:"district"`
	Province  *string  `json:"province"`
	Country   *string  `json:"country"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// ContactPayload is the contact fragment of a create/update request.
type ContactPayload struct {
	Phone     *string `json:"phone"`
	PhoneAlt  *string `json:"phoneAlt"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Whatsapp  *string `json:"whatsapp"`
	Website   *string `json:"website" validate:"omitempty,url"`
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
}

// EntryRequest covers both entity kinds; the definition picks the tag
// list it cares about (services for workshops, specialties for
// rectifiers). Nil fields are left untouched on update.
type EntryRequest struct {
	Name        *string         `json:"name"`
	Type        *string         `json:"type"`
	Description *string         `json:"description"`
	Services    []string        `json:"services"`
	Specialties []string        `json:"specialties"`
	Rating      *float64        `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Checked     *bool           `json:"checked"`
	TenantID    *string         `json:"tenantId"`
	Address     *AddressPayload `json:"address"`
	Contact     *ContactPayload `json:"contact"`
}

// ListParams is the normalized query-string input of a listing request.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	District  string
	Checked   *bool
	SortBy    string
	SortOrder string
}
