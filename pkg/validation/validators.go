package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Allow letters, spaces, and common name punctuation: . ' -
var nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}
