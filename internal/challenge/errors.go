package challenge

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the lineage's current state.
	ErrInvalidTransition = errors.New("invalid challenge state transition")

	// ErrInvalidChallenge is returned for malformed challenge definitions.
	ErrInvalidChallenge = errors.New("invalid challenge")

	// ErrNoFeedback is returned by a feedback source that has nothing to offer.
	ErrNoFeedback = errors.New("no corrective feedback available")

	// ErrCorruptLineage is returned when stored attempts cannot be replayed.
	ErrCorruptLineage = errors.New("corrupt challenge lineage")
)

// TransitionError describes a rejected state transition.
type TransitionError struct {
	From State
	Op   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from state %s", e.Op, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
