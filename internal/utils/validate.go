package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError mirrors one validator issue in an error response.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Validate checks a payload against its struct tags and returns the issue
// list, or nil when the payload is valid.
func Validate(payload interface{}) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Rule: "invalid"}}
	}

	errs := make([]FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		errs = append(errs, FieldError{Field: e.Field(), Rule: e.Tag()})
	}
	return errs
}
