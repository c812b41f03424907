package engine

import (
	"errors"

	"github.com/abhisek/calibra/internal/benchmark"
	"github.com/abhisek/calibra/internal/calibration"
	"github.com/abhisek/calibra/internal/challenge"
	"github.com/abhisek/calibra/internal/store"
)

// Kind classifies an error for callers outside the process.
type Kind string

const (
	KindInvalidInput         Kind = "INVALID_INPUT"
	KindInsufficientPeerPool Kind = "INSUFFICIENT_PEER_POOL"
	KindPeerComparisonOff    Kind = "PEER_COMPARISON_NOT_ENABLED"
	KindInvalidTransition    Kind = "INVALID_TRANSITION"
	KindDuplicateAttempt     Kind = "DUPLICATE_ATTEMPT"
	KindNotFound             Kind = "NOT_FOUND"
	KindInternal             Kind = "INTERNAL"
)

// ErrNotFound is returned for unknown objectives and challenges.
var ErrNotFound = errors.New("not found")

// ErrorKind maps err to its Kind. A nil error has no kind.
func ErrorKind(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, calibration.ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, benchmark.ErrInsufficientPool):
		return KindInsufficientPeerPool
	case errors.Is(err, benchmark.ErrNotOptedIn):
		return KindPeerComparisonOff
	case errors.Is(err, challenge.ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, store.ErrDuplicateAttempt):
		return KindDuplicateAttempt
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}
