// Package models declares the persistent entity schemas and their
// structural constraints. Validation lives here, next to the data shapes,
// so every call path that persists a record runs the same checks.
package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMalformedID reports an identifier that is not a well-formed UUID.
// Distinct from a not-found failure: it is raised before any query runs.
var ErrMalformedID = errors.New("malformed identifier")

// ValidationError reports a record that fails a schema constraint:
// a missing required field, a bad enum value, or a length violation.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
}

// ValidID reports whether id is a well-formed entity reference.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
