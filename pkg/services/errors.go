package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAuthRequired is returned when a config requires authentication
	// and the caller is anonymous
	ErrAuthRequired = errors.New("authentication required")

	// ErrSessionBlocked is returned when a participant who already
	// completed the study attempts to start again
	ErrSessionBlocked = errors.New("session blocked")

	// ErrSessionEnded is returned when mutating a session whose endedAt
	// is already set
	ErrSessionEnded = errors.New("session ended")

	// ErrForbidden is returned when a session is not a member of the
	// chat group it is addressing
	ErrForbidden = errors.New("not a member")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
