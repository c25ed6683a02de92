package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is matched by every *SizeError.
	ErrInvalidSize = errors.New("invalid sample size")

	// ErrNotIterable is returned by PoolOf for values that are not a sequence of strings.
	ErrNotIterable = errors.New("data is not a sequence of strings")

	// ErrEmptyPool is returned when a pool would contain no items.
	ErrEmptyPool = errors.New("pool is empty")

	// ErrExhaustedRetries is returned when a rejection loop hits its attempt cap.
	ErrExhaustedRetries = errors.New("exhausted retries")
)

// SizeError describes a requested size outside the range a pool can serve.
type SizeError struct {
	Op        string // operation that rejected the size, e.g. "generate"
	Size      int    // requested size
	Min       int    // smallest accepted size
	Max       int    // largest accepted size
	Available int    // number of items in the pool
	Reason    string // optional extra detail
}

func (e *SizeError) Error() string {
	msg := fmt.Sprintf("%s: size %d out of range [%d, %d] for pool of %d items",
		e.Op, e.Size, e.Min, e.Max, e.Available)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports ErrInvalidSize as a match so callers can use errors.Is.
func (e *SizeError) Is(target error) bool {
	return target == ErrInvalidSize
}
