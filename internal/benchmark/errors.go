package benchmark

import (
	"errors"
	"fmt"
)

var (
	// ErrNotOptedIn is returned when the requester has not opted in to
	// peer comparison.
	ErrNotOptedIn = errors.New("peer comparison not enabled")

	// ErrInsufficientPool is returned when the pool is below the minimum
	// size. No statistics accompany it.
	ErrInsufficientPool = errors.New("insufficient peer pool")
)

// PoolError reports how far a pool is from the minimum size.
type PoolError struct {
	Have int
	Need int
}

func (e *PoolError) Error() string {
	return fmt.Sprintf("peer pool has %d members, need %d", e.Have, e.Need)
}

func (e *PoolError) Unwrap() error {
	return ErrInsufficientPool
}
