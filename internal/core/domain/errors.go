package domain

import (
	"errors"
	"fmt"
)

// Domain Errors
var (
	// ErrZoneNotFound signals a reference to a zone id that does not exist.
	ErrZoneNotFound = errors.New("zone not found")
)

// ValidationError describes a malformed client request (bad vote type,
// missing field, out-of-range parameter). Handlers translate it to a 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
