package vals

// Iterator is the pull-based production protocol. Pull returns the next
// value and true, or a zero value and false once the producer is exhausted.
// After exhaustion has been signaled, every further Pull reports exhaustion
// again.
type Iterator interface {
	Pull() (any, bool)
}

// IterValues returns an Iterator producing the given values in order.
func IterValues(vs ...any) Iterator {
	return &sliceIterator{elems: vs}
}

type sliceIterator struct {
	elems []any
	i     int
}

func (it *sliceIterator) Pull() (any, bool) {
	if it.i >= len(it.elems) {
		return nil, false
	}
	v := it.elems[it.i]
	it.i++
	return v, true
}

// Gen adapts a generator function into an Iterator. The function is never
// called again after it has reported exhaustion, making the Iterator
// idempotent at the end even if the function is not.
func Gen(next func() (any, bool)) Iterator {
	return &genIterator{next: next}
}

type genIterator struct {
	next func() (any, bool)
	done bool
}

func (it *genIterator) Pull() (any, bool) {
	if it.done {
		return nil, false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		return nil, false
	}
	return v, true
}
