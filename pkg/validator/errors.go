package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFieldSpec is returned when a field is declared with a malformed configuration.
	ErrInvalidFieldSpec = errors.New("invalid field spec")

	// ErrInvalidFormSpec is returned when a form is declared with a malformed configuration.
	ErrInvalidFormSpec = errors.New("invalid form spec")

	// ErrUnknownField is returned when a single field is validated against a form that does not declare it.
	ErrUnknownField = errors.New("unknown field")
)
