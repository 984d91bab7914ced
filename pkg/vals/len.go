package vals

import (
	"github.com/slipway-lang/slipway/pkg/errs"
)

// Lener wraps the Len method.
type Lener interface {
	// Len computes the length of the receiver, or returns -1 if it does not
	// have a well-defined finite length.
	Len() int
}

// Counter wraps the Count method.
type Counter interface {
	// Count returns the length of the receiver, or an error when no finite
	// length exists.
	Count() (int, error)
}

// Len returns the length of the value, or -1 if the value does not have a
// well-defined finite length. It is implemented for the builtin type string
// and for types satisfying the Lener interface (List, Array and Slip all
// do). For other types, it returns -1.
func Len(v any) int {
	switch v := v.(type) {
	case string:
		return len(v)
	case Lener:
		return v.Len()
	}
	return -1
}

type cannotCount struct{ kind string }

func (err cannotCount) Error() string { return "cannot count " + err.kind }

// Count returns the number of elements of a sequence value. It fails with
// errs.InfiniteLength for an unbounded List, and with a "cannot count"
// error for values that are not sequences.
func Count(v any) (int, error) {
	switch v := v.(type) {
	case string:
		return len(v), nil
	case Counter:
		return v.Count()
	case Lener:
		if n := v.Len(); n >= 0 {
			return n, nil
		}
		return 0, errs.InfiniteLength{What: "count"}
	}
	return 0, cannotCount{Kind(v)}
}
