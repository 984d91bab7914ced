package vals

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/slipway-lang/slipway/pkg/errs"
)

func TestArray_EveryElementBoxed(t *testing.T) {
	a := NewArray(1, NewList(2, 3))
	for i := 0; i < a.Len(); i++ {
		if _, err := a.Slot(i); err != nil {
			t.Errorf("Slot(%d) -> error %v", i, err)
		}
	}
	v, err := a.Index(1)
	if err != nil {
		t.Fatalf("Index(1) -> error %v", err)
	}
	if !Equal(v, NewList(2, 3)) {
		t.Errorf("Index(1) -> %s, want (2 3)", Repr(v))
	}
}

// Writing past the end grows the Array; every gap slot gets a fresh empty
// Container, which is itself assignable.
func TestArray_Growth(t *testing.T) {
	a := NewArray("a")
	if err := a.Set(3, "d"); err != nil {
		t.Fatalf("Set(3) -> error %v", err)
	}
	if a.Len() != 4 {
		t.Fatalf("Len -> %d, want 4", a.Len())
	}
	if diff := cmp.Diff(vs("a", nil, nil, "d"), a.Values()); diff != "" {
		t.Errorf("Values (-want +got):\n%s", diff)
	}
	if err := a.Set(1, "b"); err != nil {
		t.Errorf("Set on gap slot -> error %v", err)
	}
	c1, _ := a.Slot(1)
	c2, _ := a.Slot(2)
	if c1 == c2 {
		t.Errorf("gap slots share a Container")
	}
}

func TestArray_SetNegativeIndex(t *testing.T) {
	a := NewArray("a", "b")
	if err := a.Set(-1, "z"); err != nil {
		t.Fatalf("Set(-1) -> error %v", err)
	}
	if v, _ := a.Index(1); v != "z" {
		t.Errorf("Index(1) -> %v, want z", v)
	}
	if err := a.Set(-3, "w"); err == nil {
		t.Errorf("Set(-3) -> nil error, want OutOfRange")
	}
}

// Push resolves each value through the argument rules: a bare List pushes
// one Container per element, a boxed List pushes exactly one.
func TestArray_PushArgumentRules(t *testing.T) {
	a := NewArray()
	a.Push(1)
	a.Push(NewList(2, 3))
	a.Push(NewContainer(NewList(4, 5)))
	if a.Len() != 4 {
		t.Fatalf("Len -> %d, want 4", a.Len())
	}
	if v, _ := a.Index(3); !Equal(v, NewList(4, 5)) {
		t.Errorf("last element -> %s, want (4 5)", Repr(v))
	}
}

func TestArray_Unshift(t *testing.T) {
	a := NewArray("c")
	a.Unshift("a", "b")
	if diff := cmp.Diff(vs("a", "b", "c"), a.Values()); diff != "" {
		t.Errorf("Values (-want +got):\n%s", diff)
	}
}

func TestArray_PopShift(t *testing.T) {
	a := NewArray(1, 2, 3)
	if v, err := a.Pop(); v != 3 || err != nil {
		t.Errorf("Pop -> (%v, %v), want (3, nil)", v, err)
	}
	if v, err := a.Shift(); v != 1 || err != nil {
		t.Errorf("Shift -> (%v, %v), want (1, nil)", v, err)
	}
	if a.Len() != 1 {
		t.Errorf("Len -> %d, want 1", a.Len())
	}
}

func TestArray_PopShiftEmpty(t *testing.T) {
	a := NewArray()
	if _, err := a.Pop(); err != (errs.EmptyCollection{What: "pop"}) {
		t.Errorf("Pop on empty -> %v, want EmptyCollection", err)
	}
	if _, err := a.Shift(); err != (errs.EmptyCollection{What: "shift"}) {
		t.Errorf("Shift on empty -> %v, want EmptyCollection", err)
	}
}

func TestArray_Splice(t *testing.T) {
	a := NewArray("a", "b", "c", "d")
	removed, err := a.Splice(1, 2, "x")
	if err != nil {
		t.Fatalf("Splice -> error %v", err)
	}
	if diff := cmp.Diff(vs("b", "c"), removed); diff != "" {
		t.Errorf("removed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(vs("a", "x", "d"), a.Values()); diff != "" {
		t.Errorf("Values (-want +got):\n%s", diff)
	}
}

func TestArray_SpliceClampsCount(t *testing.T) {
	a := NewArray(1, 2)
	removed, err := a.Splice(1, 10)
	if err != nil {
		t.Fatalf("Splice -> error %v", err)
	}
	if diff := cmp.Diff(vs(2), removed); diff != "" {
		t.Errorf("removed (-want +got):\n%s", diff)
	}
	if _, err := a.Splice(5, 0); err == nil {
		t.Errorf("Splice with bad start -> nil error, want OutOfRange")
	}
}

// Eager assignment consumes the producer fully and never reuses source
// Containers: mutating the source afterwards does not change the Array.
func TestArray_AssignAllIndependence(t *testing.T) {
	c := NewContainer(3)
	src := NewList(2, c, 4)
	a := NewArray("stale")
	if err := a.AssignAll(src); err != nil {
		t.Fatalf("AssignAll -> error %v", err)
	}
	if diff := cmp.Diff(vs(2, 3, 4), a.Values()); diff != "" {
		t.Fatalf("Values (-want +got):\n%s", diff)
	}
	if err := c.Set(99); err != nil {
		t.Fatalf("Set -> error %v", err)
	}
	if v, _ := a.Index(1); v != 3 {
		t.Errorf("array value changed by source mutation: %v", v)
	}
}

func TestArray_AssignAllFromSeq(t *testing.T) {
	s := NewSeq(IterValues(2, 3, 4))
	a := NewArray()
	if err := a.AssignAll(s); err != nil {
		t.Fatalf("AssignAll -> error %v", err)
	}
	if diff := cmp.Diff(vs(2, 3, 4), a.Values()); diff != "" {
		t.Errorf("Values (-want +got):\n%s", diff)
	}
	if s.State() != SeqConsumed {
		t.Errorf("source Seq state %v, want consumed", s.State())
	}
}

func TestArray_AssignAllRejectsNonProducer(t *testing.T) {
	a := NewArray()
	if err := a.AssignAll(42); err != (errs.NotPositional{Kind: "number"}) {
		t.Errorf("AssignAll(42) -> %v, want NotPositional", err)
	}
}

// The List view shares slot Containers: slot mutation shows through it,
// while growth does not.
func TestArray_ListView(t *testing.T) {
	a := NewArray(1, 2)
	l := a.List()
	if err := a.Set(0, 10); err != nil {
		t.Fatalf("Set -> error %v", err)
	}
	a.Push(3)
	if got, _ := l.Index(0); Unbox(got) != 10 {
		t.Errorf("List view misses slot mutation: %v", Unbox(got))
	}
	if n, _ := l.Count(); n != 2 {
		t.Errorf("List view length %d after Push, want 2", n)
	}
}
