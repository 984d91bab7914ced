package vals

import (
	"strconv"

	"github.com/slipway-lang/slipway/pkg/errs"
)

// Array is a mutable ordered sequence. Every slot is always boxed: an Array
// owns one Container per slot, including slots created by growth, so every
// element read goes through a Container and every element is assignable.
type Array struct {
	slots []*Container
}

// NewArray returns an Array of the given values, each boxed into a fresh
// mutable Container. No operand rules apply.
func NewArray(vs ...any) *Array {
	slots := make([]*Container, len(vs))
	for i, v := range vs {
		slots[i] = box(v)
	}
	return &Array{slots: slots}
}

// Len returns the number of slots.
func (a *Array) Len() int { return len(a.slots) }

// Index returns the current value of the i-th slot, read through its
// Container. Negative indices count from the end. An index with no slot
// fails with errs.OutOfRange.
func (a *Array) Index(i int) (any, error) {
	c, err := a.Slot(i)
	if err != nil {
		return nil, err
	}
	return c.Get(), nil
}

// Slot returns the Container owning the i-th slot. Negative indices count
// from the end.
func (a *Array) Slot(i int) (*Container, error) {
	if i < 0 {
		if i < -len(a.slots) {
			return nil, negIndexOutOfRange(i, len(a.slots))
		}
		i += len(a.slots)
	} else if i >= len(a.slots) {
		return nil, posIndexOutOfRange(i, len(a.slots))
	}
	return a.slots[i], nil
}

// Set assigns v to the i-th slot. Writing past the current length grows the
// Array: each intermediate slot gets a fresh empty Container, then the
// target slot's Container is assigned. Negative indices count from the end
// and never grow.
func (a *Array) Set(i int, v any) error {
	if i < 0 {
		c, err := a.Slot(i)
		if err != nil {
			return err
		}
		return c.Set(v)
	}
	for i >= len(a.slots) {
		a.slots = append(a.slots, NewContainer(nil))
	}
	return a.slots[i].Set(v)
}

// Push appends values. Each value is resolved through the argument rules
// first: a bare List or Array appends one fresh Container per element, a
// Container-boxed value appends exactly one. All appended Containers are
// freshly allocated.
func (a *Array) Push(vs ...any) {
	for _, v := range vs {
		for _, e := range Expand(v) {
			a.slots = append(a.slots, box(e))
		}
	}
}

// Unshift prepends values, following the same argument rules as Push. The
// values end up in argument order at the front.
func (a *Array) Unshift(vs ...any) {
	var front []*Container
	for _, v := range vs {
		for _, e := range Expand(v) {
			front = append(front, box(e))
		}
	}
	a.slots = append(front, a.slots...)
}

// Pop removes the last slot and returns its value. It fails with
// errs.EmptyCollection on an empty Array.
func (a *Array) Pop() (any, error) {
	if len(a.slots) == 0 {
		return nil, errs.EmptyCollection{What: "pop"}
	}
	v := a.slots[len(a.slots)-1].Get()
	a.slots = a.slots[:len(a.slots)-1]
	return v, nil
}

// Shift removes the first slot and returns its value. It fails with
// errs.EmptyCollection on an empty Array.
func (a *Array) Shift() (any, error) {
	if len(a.slots) == 0 {
		return nil, errs.EmptyCollection{What: "shift"}
	}
	v := a.slots[0].Get()
	a.slots = a.slots[1:]
	return v, nil
}

// Splice removes count slots starting at start, inserts the replacement
// values in their place (each boxed into a fresh Container), and returns the
// removed values. start must be between 0 and the current length; count is
// clamped to the available slots.
func (a *Array) Splice(start, count int, repl ...any) ([]any, error) {
	if start < 0 || start > len(a.slots) {
		return nil, errs.OutOfRange{
			What: "splice start", ValidLow: 0, ValidHigh: len(a.slots),
			Actual: strconv.Itoa(start)}
	}
	if count < 0 {
		count = 0
	}
	if count > len(a.slots)-start {
		count = len(a.slots) - start
	}
	removed := make([]any, count)
	for i := 0; i < count; i++ {
		removed[i] = a.slots[start+i].Get()
	}
	inserted := make([]*Container, len(repl))
	for i, v := range repl {
		inserted[i] = box(v)
	}
	rest := append(inserted, a.slots[start+count:]...)
	a.slots = append(a.slots[:start:start], rest...)
	return removed, nil
}

// AssignAll replaces the Array's element sequence with the values produced
// by src, which must be a List, Slip, Array, Seq or HyperSeq. The producer
// is consumed eagerly and fully, and every produced value is copied into a
// newly allocated Container; source Containers are never reused. For the
// lazy alternative, see (*Seq).LazyList.
func (a *Array) AssignAll(src any) error {
	var slots []*Container
	add := func(v any) bool {
		slots = append(slots, box(v))
		return true
	}
	switch src := src.(type) {
	case List, Slip, *Array:
		if err := Iterate(src, add); err != nil {
			return err
		}
	case *Seq:
		if err := src.Each(add); err != nil {
			return err
		}
	case *HyperSeq:
		if err := src.seq.Each(add); err != nil {
			return err
		}
	default:
		return errs.NotPositional{Kind: Kind(src)}
	}
	a.slots = slots
	return nil
}

// List returns an immutable List over the Array's current slots. The List
// shares the slot Containers, so mutation of a slot is visible through it,
// while later growth or shrinkage of the Array is not.
func (a *Array) List() List {
	elems := make([]any, len(a.slots))
	for i, c := range a.slots {
		elems[i] = c
	}
	return newListFromSlice(elems)
}

// Values returns the current slot values.
func (a *Array) Values() []any {
	vs := make([]any, len(a.slots))
	for i, c := range a.slots {
		vs[i] = c.Get()
	}
	return vs
}

// Iterator returns an Iterator over the current slot values. The slot set is
// captured at the call, mutation of captured slots remains visible.
func (a *Array) Iterator() Iterator {
	slots := a.slots
	i := 0
	return Gen(func() (any, bool) {
		if i >= len(slots) {
			return nil, false
		}
		v := slots[i].Get()
		i++
		return v, true
	})
}
