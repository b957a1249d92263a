package services

import "errors"

// ValidationError marks a client-side payload problem. Handlers translate it
// to a 400 response; it is never logged as a failure.
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
