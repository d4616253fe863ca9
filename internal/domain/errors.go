package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidLanguage is returned when a language code is not supported.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrInvalidProficiencyLevel is returned when a proficiency level is unknown.
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")

	// ErrInvalidTone is returned when a tone is unknown.
	ErrInvalidTone = errors.New("invalid tone")

	// ErrInvalidRecallQuality is returned when a recall quality is unknown.
	ErrInvalidRecallQuality = errors.New("invalid recall quality")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel so errors.Is keeps working.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
