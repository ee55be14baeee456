// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "dash/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates incoming request payloads against their
// struct tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates a RequestValidator backed by go-playground/validator.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag violations surface as a 400
// validation error without echoing field values back to the client.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
