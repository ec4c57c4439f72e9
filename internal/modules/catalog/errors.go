package catalog

import "errors"

var (
	ErrNotFound         = errors.New("entry not found")
	ErrNameRequired     = errors.New("name is required")
	ErrTypeInvalid      = errors.New("invalid entry type")
	ErrDistrictRequired = errors.New("district is required")
)
