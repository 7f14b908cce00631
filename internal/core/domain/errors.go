package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when an entity does not exist for the requesting
// tenant. An id that exists under a different tenant yields the same error,
// so callers cannot probe for cross-tenant existence.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert collides with an existing id.
var ErrConflict = errors.New("already exists")

// ValidationError reports malformed input fields. Fields maps a field name to
// a human-readable message so forms can render errors inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// PartialFailureError reports a cascading write that partially succeeded,
// e.g. an ad was deleted but detaching it from referencing campaigns failed.
// The primary write is not rolled back; callers surface this as a warning.
type PartialFailureError struct {
	Op  string
	Err error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s partially applied: %v", e.Op, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }
