package calibration

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel behind every validation failure in the
// engine. Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which field failed validation and why.
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
