package resilience

import (
	"errors"
	"fmt"
)

// ErrNoCacheAvailable is returned when a live fetch failed and nothing was ever cached
var ErrNoCacheAvailable = errors.New("no cached data available")

// Status is the outcome of a resolution
type Status int

const (
	StatusOK Status = iota
	StatusStale
	StatusErr
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStale:
		return "stale"
	default:
		return "error"
	}
}

// Result is exactly one of: a live or fresh-cached value (OK), a cached value served
// after a failed fetch (Stale) or a failure with no cached value (Err).
type Result[T any] struct {
	Value  T
	Status Status
	// Reason is the message of the fetch error that caused a stale fallback
	Reason string
	Err    error
}

// Ok wraps a fresh value
func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value, Status: StatusOK}
}

// Stale wraps a cached value served because the live fetch failed
func Stale[T any](value T, reason string) Result[T] {
	return Result[T]{Value: value, Status: StatusStale, Reason: reason}
}

// Err wraps a failure with nothing cached. The result matches both
// ErrNoCacheAvailable and cause under errors.Is.
func Err[T any](cause error) Result[T] {
	return Result[T]{Status: StatusErr, Err: fmt.Errorf("%w: %w", ErrNoCacheAvailable, cause)}
}

// IsStale reports whether the value came from cache after a failure
func (r Result[T]) IsStale() bool {
	return r.Status == StatusStale
}

// Failed reports whether no value is available
func (r Result[T]) Failed() bool {
	return r.Status == StatusErr
}
