package middleware

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and returns a
// field-to-message map, or nil when everything passes.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"body": "Invalid request body!"}
	}

	errors := make(map[string]string)
	for _, fe := range fieldErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", fe.Field())
		case "email":
			errors[field] = "Invalid email!"
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long!", fe.Field(), fe.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long!", fe.Field(), fe.Param())
		case "gt":
			errors[field] = fmt.Sprintf("%s must be greater than %s!", fe.Field(), fe.Param())
		case "gte":
			errors[field] = fmt.Sprintf("%s must be at least %s!", fe.Field(), fe.Param())
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s!", fe.Field(), fe.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", fe.Field())
		}
	}
	return errors
}
