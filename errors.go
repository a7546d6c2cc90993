package assoc

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by positional accessors given an offset
	// outside [0, Len()).
	ErrOutOfRange = errors.New("offset out of range")

	// ErrCorrupted is returned by Check when the node store and the index
	// disagree or the index breaks its own invariants.
	ErrCorrupted = errors.New("container corrupted")
)

// OutOfRangeError reports a positional access outside [0, Size).
//
// It matches ErrOutOfRange with errors.Is.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("offset %d out of range [0, %d)", e.Index, e.Size)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// CorruptionError describes a broken structural invariant found by Check.
//
// It matches ErrCorrupted with errors.Is, and so does the underlying index
// error, if any.
type CorruptionError struct {
	Component string
	Reason    string
	cause     error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrCorrupted, e.Component, e.Reason)
}

func (e *CorruptionError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrCorrupted}
	}
	return []error{ErrCorrupted, e.cause}
}

func corrupted(component string, cause error, format string, args ...any) error {
	return &CorruptionError{
		Component: component,
		Reason:    fmt.Sprintf(format, args...),
		cause:     cause,
	}
}
