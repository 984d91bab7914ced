package vals

// Iterable wraps the Iterator method.
type Iterable interface {
	// Iterator returns an Iterator over the elements of the receiver.
	Iterator() Iterator
}

type cannotIterate struct{ kind string }

func (err cannotIterate) Error() string { return "cannot iterate " + err.kind }

// CanIterate returns whether the value can be iterated. If CanIterate(v) is
// true, calling Iterate(v, f) will not result in an error.
func CanIterate(v any) bool {
	switch v.(type) {
	case string, Iterable, *Seq, *HyperSeq:
		return true
	}
	return false
}

// Iterate iterates the supplied value, calling f on each of its elements;
// f can return false to break the iteration. It is implemented for the
// builtin type string (iterating runes), for types satisfying the Iterable
// interface (List and Slip produce their elements as stored, Containers
// included; Array produces its slot values), and for Seq and HyperSeq,
// which it consumes under their one-shot contract. For other types it does
// nothing and returns an error.
func Iterate(v any, f func(any) bool) error {
	switch v := v.(type) {
	case string:
		for _, r := range v {
			if !f(string(r)) {
				break
			}
		}
	case *Seq:
		return v.Each(f)
	case *HyperSeq:
		return v.seq.Each(f)
	case Iterable:
		it := v.Iterator()
		for {
			e, ok := it.Pull()
			if !ok {
				break
			}
			if !f(e) {
				break
			}
		}
	default:
		return cannotIterate{Kind(v)}
	}
	return nil
}

// Collect collects all elements of an iterable value into a slice.
func Collect(v any) ([]any, error) {
	var vs []any
	if n := Len(v); n >= 0 {
		vs = make([]any, 0, n)
	}
	err := Iterate(v, func(e any) bool {
		vs = append(vs, e)
		return true
	})
	return vs, err
}
