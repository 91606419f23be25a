// Package validation wraps a shared validator instance for request payloads.
package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Struct validates a struct against its `validate` tags.
func Struct(s interface{}) error {
	return validate.Struct(s)
}
