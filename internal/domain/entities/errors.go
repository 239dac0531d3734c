package entities

import (
	"errors"
	"strings"
)

// ErrValidation is the kind shared by every column validation failure.
// Use errors.Is(err, ErrValidation) to branch on it.
var ErrValidation = errors.New("column validation failed")

// ValidationError carries every violated rule, in rule order.
// Violations is never empty.
type ValidationError struct {
	Violations []string
}

// Error renders one violation per line, verbatim.
func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "\n")
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a validation error from a non-empty violation list.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: copyStrings(violations)}
}
