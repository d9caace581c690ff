// Package validation wraps a shared validator instance configured for the
// site's form schemas. Validation is pure and synchronous; all field
// violations are collected in one pass rather than failing fast.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// emailRegex accepts the basic local@domain.tld shape. Deliberately stricter
// than RFC address grammar: a dot-less domain is rejected.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dobRegex matches the literal YYYY-MM-DD pattern. Calendar validity is not
// checked; "2025-02-30" passes.
var dobRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func init() {
	validate = validator.New()

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Replaces the built-in email rule with the basic shape above so the
	// same inputs are accepted server-side as in the browser widgets.
	if err := validate.RegisterValidation("email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		return dobRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// FieldErrors maps a field name to a human-readable violation message. An
// empty set signals a valid submission.
type FieldErrors map[string]string

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// String renders the set in a stable "field: message" form for logs.
func (fe FieldErrors) String() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// ValidateStruct validates a form struct and collects every field violation.
// It returns nil when the struct is valid.
func ValidateStruct(s interface{}) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only reachable when the input is not a struct, a programming
		// error that must not pass as a valid submission.
		panic(err)
	}
	if len(validationErrors) == 0 {
		return nil
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldErrors[fieldError.Field()] = fieldErrorMessage(fieldError)
	}
	return fieldErrors
}

// fieldErrorMessage returns a user-friendly message for a field violation.
// The text is the English default; the page layer swaps in localized copy
// from the dictionary store keyed by field name.
func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "dateformat":
		return fmt.Sprintf("%s must use the YYYY-MM-DD format", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
