package vals

import (
	"strconv"

	"github.com/slipway-lang/slipway/pkg/errs"
	"src.elv.sh/pkg/persistent/vector"
)

// List is an immutable ordered sequence. Once constructed, its element
// sequence and each element's identity never change. Elements are either
// bare values or *Container; only an element that is a Container can be
// assigned through (see Assign).
//
// A List may be backed by an Iterator, in which case elements are produced
// on demand and memoized. Such a List may be unbounded; operations that need
// the full length of an unbounded List fail with errs.InfiniteLength.
//
// The zero value is an empty List.
type List struct {
	vec  vector.Vector
	tail *lazyTail
}

// EmptyList is an empty List.
var EmptyList = List{}

// lazyTail produces and memoizes elements following the materialized prefix.
// It is shared by all copies of the List value, so materialization done
// through one copy is visible through all.
type lazyTail struct {
	it        Iterator
	elems     []any
	done      bool
	unbounded bool
}

// ensure materializes elements until at least n are memoized or the producer
// is exhausted.
func (t *lazyTail) ensure(n int) {
	for !t.done && len(t.elems) < n {
		v, ok := t.it.Pull()
		if !ok {
			t.done = true
			return
		}
		t.elems = append(t.elems, v)
	}
}

// drain materializes all remaining elements.
func (t *lazyTail) drain() {
	for !t.done {
		v, ok := t.it.Pull()
		if !ok {
			t.done = true
			return
		}
		t.elems = append(t.elems, v)
	}
}

// NewList returns a List of exactly the given elements. No operand rules
// apply; each argument becomes one element, Containers and Slips included.
func NewList(elems ...any) List {
	return newListFromSlice(elems)
}

func newListFromSlice(elems []any) List {
	vec := vector.Empty
	for _, e := range elems {
		vec = vec.Conj(e)
	}
	return List{vec: vec}
}

// NewLazyList returns a List whose elements are produced on demand by it and
// memoized. If unbounded is true, the producer is declared possibly
// infinite: Count, Reverse and Rotate fail with errs.InfiniteLength, and Len
// reports -1, until the producer happens to exhaust.
func NewLazyList(it Iterator, unbounded bool) List {
	return List{tail: &lazyTail{it: it, unbounded: unbounded}}
}

func (l List) prefixLen() int {
	if l.vec == nil {
		return 0
	}
	return l.vec.Len()
}

// complete reports whether all elements have been materialized.
func (l List) complete() bool {
	return l.tail == nil || l.tail.done
}

// Unbounded reports whether the List is declared possibly infinite and its
// producer has not yet exhausted.
func (l List) Unbounded() bool {
	return l.tail != nil && l.tail.unbounded && !l.tail.done
}

// elemAt returns the i-th element, materializing lazy elements as needed.
func (l List) elemAt(i int) (any, bool) {
	if i < 0 {
		return nil, false
	}
	if n := l.prefixLen(); i < n {
		return l.vec.Index(i)
	} else if l.tail != nil {
		j := i - n
		l.tail.ensure(j + 1)
		if j < len(l.tail.elems) {
			return l.tail.elems[j], true
		}
	}
	return nil, false
}

// Len returns the number of elements, or -1 if the List is unbounded. A
// bounded lazy List is drained to find its length.
func (l List) Len() int {
	if l.Unbounded() {
		return -1
	}
	if l.tail != nil {
		l.tail.drain()
	}
	n := l.prefixLen()
	if l.tail != nil {
		n += len(l.tail.elems)
	}
	return n
}

// Count returns the number of elements. It fails with errs.InfiniteLength if
// the List is unbounded.
func (l List) Count() (int, error) {
	if l.Unbounded() {
		return 0, errs.InfiniteLength{What: "count"}
	}
	return l.Len(), nil
}

// Index returns the i-th element. Elements are returned as stored: an
// element that was boxed at construction is returned as its *Container.
// Negative indices count from the end and require a bounded List. An index
// with no element fails with errs.OutOfRange.
func (l List) Index(i int) (any, error) {
	if i >= 0 {
		if v, ok := l.elemAt(i); ok {
			return v, nil
		}
		// elemAt exhausted the producer, so the length is finite now.
		return nil, posIndexOutOfRange(i, l.Len())
	}
	if l.Unbounded() {
		return nil, errs.InfiniteLength{What: "negative index"}
	}
	n := l.Len()
	if i < -n {
		return nil, negIndexOutOfRange(i, n)
	}
	v, _ := l.elemAt(i + n)
	return v, nil
}

// Assign assigns v through the Container at index i. It fails with
// errs.ImmutableAssignment if the element is not independently boxed.
func (l List) Assign(i int, v any) error {
	elem, err := l.Index(i)
	if err != nil {
		return err
	}
	c, ok := elem.(*Container)
	if !ok {
		return errs.ImmutableAssignment{}
	}
	return c.Set(v)
}

// all returns every element, or errs.InfiniteLength (tagged with what) if
// the List is unbounded.
func (l List) all(what string) ([]any, error) {
	if l.Unbounded() {
		return nil, errs.InfiniteLength{What: what}
	}
	n := l.Len()
	elems := make([]any, 0, n)
	for i := 0; i < n; i++ {
		v, _ := l.elemAt(i)
		elems = append(elems, v)
	}
	return elems, nil
}

// Reverse returns a new List with the elements in reverse order. The
// receiver is never mutated. It fails with errs.InfiniteLength if the List
// is unbounded.
func (l List) Reverse() (List, error) {
	elems, err := l.all("reverse")
	if err != nil {
		return EmptyList, err
	}
	for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
		elems[i], elems[j] = elems[j], elems[i]
	}
	return newListFromSlice(elems), nil
}

// Rotate returns a new List rotated n positions to the left; n may be
// negative. The receiver is never mutated. It fails with
// errs.InfiniteLength if the List is unbounded.
func (l List) Rotate(n int) (List, error) {
	elems, err := l.all("rotate")
	if err != nil {
		return EmptyList, err
	}
	if len(elems) == 0 {
		return l, nil
	}
	k := ((n % len(elems)) + len(elems)) % len(elems)
	rotated := make([]any, 0, len(elems))
	rotated = append(rotated, elems[k:]...)
	rotated = append(rotated, elems[:k]...)
	return newListFromSlice(rotated), nil
}

// Slice returns a new List of the elements from i up to but not including j.
// Element identity is preserved: boxed elements of the receiver appear as
// the same Containers in the result.
func (l List) Slice(i, j int) (List, error) {
	if i < 0 || j < i {
		return EmptyList, errs.OutOfRange{
			What: "slice lower index", ValidLow: 0, ValidHigh: j,
			Actual: strconv.Itoa(i)}
	}
	l.elemAt(j - 1) // materialize up to j
	if l.complete() && j > l.Len() {
		return EmptyList, errs.OutOfRange{
			What: "slice upper index", ValidLow: i, ValidHigh: l.Len(),
			Actual: strconv.Itoa(j)}
	}
	elems := make([]any, 0, j-i)
	for k := i; k < j; k++ {
		v, ok := l.elemAt(k)
		if !ok {
			return EmptyList, errs.OutOfRange{
				What: "slice upper index", ValidLow: i, ValidHigh: l.Len(),
				Actual: strconv.Itoa(j)}
		}
		elems = append(elems, v)
	}
	return newListFromSlice(elems), nil
}

// Iterator returns an Iterator over the elements. Elements are produced as
// stored (Containers unboxed by the consumer if desired). Iterating an
// unbounded List produces elements for as long as the backing producer
// does.
func (l List) Iterator() Iterator {
	return &listIterator{l: l}
}

type listIterator struct {
	l List
	i int
}

func (it *listIterator) Pull() (any, bool) {
	v, ok := it.l.elemAt(it.i)
	if !ok {
		return nil, false
	}
	it.i++
	return v, true
}

func posIndexOutOfRange(i, n int) errs.OutOfRange {
	return errs.OutOfRange{
		What: "index", ValidLow: 0, ValidHigh: n - 1,
		Actual: strconv.Itoa(i)}
}

func negIndexOutOfRange(i, n int) errs.OutOfRange {
	return errs.OutOfRange{
		What: "negative index", ValidLow: -n, ValidHigh: -1,
		Actual: strconv.Itoa(i)}
}
