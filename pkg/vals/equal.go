package vals

import (
	"reflect"
)

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value.
	Equal(other any) bool
}

// Equal returns whether two values are equal. Containers are transparent to
// Equal: both operands are unboxed first (recursively for sequence
// elements), so a freshly boxed copy compares equal to its source; aliasing
// is observable through mutation, not through Equal. Lists compare
// elementwise against Lists and Slips; Arrays compare elementwise against
// Arrays. Two unbounded Lists never compare equal. Seqs compare by
// identity. For types outside the model, reflect.DeepEqual decides.
func Equal(x, y any) bool {
	x, y = Unbox(x), Unbox(y)
	switch x := x.(type) {
	case nil:
		return x == y
	case bool:
		return x == y
	case int:
		return x == y
	case float64:
		return x == y
	case string:
		return x == y
	case Equaler:
		return x.Equal(y)
	case Slip:
		return equalToList(x.List, y)
	case List:
		return equalToList(x, y)
	case *Array:
		if yy, ok := y.(*Array); ok {
			return equalSlices(x.Values(), yy.Values())
		}
		return false
	case *Seq:
		return x == y
	case *HyperSeq:
		return x == y
	default:
		return reflect.DeepEqual(x, y)
	}
}

func equalToList(x List, y any) bool {
	switch y := y.(type) {
	case Slip:
		return equalList(x, y.List)
	case List:
		return equalList(x, y)
	default:
		return false
	}
}

func equalList(x, y List) bool {
	if x.Unbounded() || y.Unbounded() {
		return false
	}
	if x.Len() != y.Len() {
		return false
	}
	xit, yit := x.Iterator(), y.Iterator()
	for {
		xv, ok := xit.Pull()
		if !ok {
			return true
		}
		yv, _ := yit.Pull()
		if !Equal(xv, yv) {
			return false
		}
	}
}

func equalSlices(x, y []any) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Equal(x[i], y[i]) {
			return false
		}
	}
	return true
}
