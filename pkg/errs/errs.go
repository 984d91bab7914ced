// Package errs declares error types used throughout the value runtime. All
// contract violations the runtime can report are declared here, so that
// callers can test for them with type assertions or errors.As.
package errs

import (
	"fmt"
	"strconv"
)

// OutOfRange is returned when an index or size is out of its valid range.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    string
}

func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf(
			"out of range: %s has no valid value, but is %s", e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %s to %s, but is %s",
		e.What, strconv.Itoa(e.ValidLow), strconv.Itoa(e.ValidHigh), e.Actual)
}

// ImmutableAssignment is returned when assigning through a read-only
// container, or to a list element that is not independently boxed.
type ImmutableAssignment struct{}

func (ImmutableAssignment) Error() string {
	return "cannot assign to immutable value"
}

// EmptyCollection is returned when removing an element from an empty array.
type EmptyCollection struct {
	What string
}

func (e EmptyCollection) Error() string {
	return e.What + " on empty collection"
}

// InfiniteLength is returned when an operation needs the full length of an
// unbounded list, such as counting, reversing or rotating it.
type InfiniteLength struct {
	What string
}

func (e InfiniteLength) Error() string {
	return e.What + " on unbounded list"
}

// AlreadyConsumed is returned when pulling from or caching a sequence that
// has already been consumed or cached.
type AlreadyConsumed struct {
	What string
}

func (e AlreadyConsumed) Error() string {
	return e.What + " on already consumed sequence"
}

// NotPositional is returned when binding a value that is not a positional
// collection to a positional parameter.
type NotPositional struct {
	Kind string
}

func (e NotPositional) Error() string {
	return "cannot bind " + e.Kind + " to positional parameter"
}

// WorkUnitFailure wraps the failure of one work unit of a parallel
// consumption, recording the logical source index of the element whose
// processing failed.
type WorkUnitFailure struct {
	Index int
	Cause error
}

func (e WorkUnitFailure) Error() string {
	return fmt.Sprintf("work unit %d: %v", e.Index, e.Cause)
}

func (e WorkUnitFailure) Unwrap() error { return e.Cause }
