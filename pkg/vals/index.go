package vals

import (
	"errors"
)

// Indexer wraps the Index method.
type Indexer interface {
	// Index retrieves one element of the receiver at the specified position.
	Index(i int) (any, error)
}

var errNotIndexable = errors.New("not indexable")

// Index indexes a value with the given position. It is implemented for
// types satisfying the Indexer interface (List, Array and Slip all do). For
// other types, it returns a nil value and a non-nil error.
//
// Indexing out of range always fails; there is no sentinel value. Negative
// positions count from the end.
func Index(v any, i int) (any, error) {
	switch v := v.(type) {
	case Indexer:
		return v.Index(i)
	default:
		return nil, errNotIndexable
	}
}
