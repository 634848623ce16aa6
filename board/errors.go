/*
errors.go - Centralized error types for the board engine

PURPOSE:
  All domain error types in one place. The API layer maps these to HTTP
  statuses; stores return them instead of driver-specific errors.

USAGE:
  if errors.Is(err, board.ErrDuplicateName) { ... 409 ... }
  if board.IsNotFound(err)                 { ... 404 ... }
*/
package board

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrSpaceNotFound is returned when a space uuid resolves to nothing.
	ErrSpaceNotFound = errors.New("space not found")

	// ErrPersonNotFound is returned when a referenced person doesn't exist.
	ErrPersonNotFound = errors.New("person not found")

	// ErrProductNotFound is returned when a referenced product doesn't exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrTagNotFound is returned when a referenced tag doesn't exist.
	ErrTagNotFound = errors.New("tag not found")

	// ErrDuplicateName is returned when a name collides within its scope
	// (product names per space, tag names per space and kind).
	ErrDuplicateName = errors.New("duplicate name")

	// ErrUnassignedMissing is returned when a space has lost its sentinel
	// "unassigned" product. Spaces are always created with one.
	ErrUnassignedMissing = errors.New("space has no unassigned product")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// ValidationError reports a rejected field before any write happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSpaceNotFound) ||
		errors.Is(err, ErrPersonNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrTagNotFound)
}

// IsConflict returns true if the error indicates a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}

// IsValidation returns true if the error is a rejected-input error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
