package services

import (
	"errors"
	"fmt"
)

// Define common service errors
var (
	ErrNotFound   = errors.New("resource not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict") // e.g., duplicate company+position, duplicate application
	ErrValidation = errors.New("validation failed")
	ErrInternal   = errors.New("internal error")
)

// ValidationError reports a single invalid field. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, format string, args ...any) error {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return &ValidationError{Field: field, Message: format}
}
