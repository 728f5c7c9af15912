package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned, wrapped in an *InputError, for any value
// the engine refuses to compute with
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which input was rejected and why
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field string, value any, format string, args ...any) error {
	return &InputError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
