package binder

import (
	"github.com/go-playground/validator/v10"
	"github.com/shelfmark/shelfmark/pkg/isbn"
)

// isbnValidator ensures the value is a well-formed ISBN-10 or ISBN-13,
// hyphenated or not. The empty string is allowed so the validator can be
// used on optional params; add `required` to the validate tag when the
// value must be present.
func isbnValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return isbn.Valid(value)
}
