// Package validation adapts go-playground/validator to the domain's
// ValidationError.
package validation

import (
	"reflect"
	"strings"

	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type structValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports field names by their json tag.
func New() service.StructValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &structValidator{validate: validate}
}

// Struct validates s. Rule failures come back as *domainerrors.ValidationError.
func (v *structValidator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate struct")
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		fields[fieldErr.Field()] = rule
	}

	return domainerrors.NewValidationError(fields)
}
