package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// contactEmailPattern is the accepted seller-email shape: something
// before an @, something after it, and a dotted domain, none of it
// containing whitespace or extra @ signs.
var contactEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// newValidator builds the validator used by the submission workflow,
// with the contact_email rule registered.
func newValidator() *validator.Validate {
	v := validator.New()
	// The registration only fails for a nil function.
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return contactEmailPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidationError carries per-field messages for input the user can
// correct. No network call has been made when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// newValidationError maps validator errors onto user-facing field
// messages keyed by the lowercased field name.
func newValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = fmt.Sprintf("%s is required", name)
		case "contact_email":
			fields[name] = "email must look like local@domain.tld"
		case "gte":
			fields[name] = fmt.Sprintf("%s must be non-negative", name)
		default:
			fields[name] = fmt.Sprintf("%s is invalid", name)
		}
	}
	return &ValidationError{Fields: fields}
}
