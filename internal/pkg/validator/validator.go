// Package validator runs the shared struct-tag validation the request
// handlers apply after JSON binding.
package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the `validate` tags on v and returns a field-to-rule
// map of the violations; nil means the struct is clean.
func Validate(v any) (fields map[string]string) {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields = make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
