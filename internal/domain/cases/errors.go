package cases

import (
	"errors"
	"fmt"
)

var (
	// ErrCaseNotFound is returned when a case id does not exist.
	ErrCaseNotFound = errors.New("case not found")

	// ErrDuplicateIdentification is returned when a create collides with an
	// already-registered identification. The database unique constraint is
	// the authoritative guard; the service pre-check only produces this
	// error earlier with the same meaning.
	ErrDuplicateIdentification = errors.New("identification already registered")
)

// ValidationError reports the first submission rule that failed. It names
// the offending field so the caller can surface an itemized message.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
