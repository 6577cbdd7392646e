package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a request struct against its validate tags.
func Validate(s interface{}) error {
	return validate.Struct(s)
}
