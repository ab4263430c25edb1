// Package validator plugs the domain struct validator into echo.
package validator

import "voterdesk/internal/domain/service"

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validator service.StructValidator
}

func New(validator service.StructValidator) *EchoValidator {
	return &EchoValidator{validator: validator}
}

// Validate reports rule failures as *domainerrors.ValidationError.
func (v *EchoValidator) Validate(i any) error {
	return v.validator.Struct(i)
}
