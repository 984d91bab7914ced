package vals

import (
	"testing"

	"github.com/slipway-lang/slipway/pkg/errs"
	"github.com/slipway-lang/slipway/pkg/tt"
)

func TestContainer_SetGet(t *testing.T) {
	c := NewContainer("old")
	if got := c.Get(); got != "old" {
		t.Errorf("Get -> %v, want old", got)
	}
	if err := c.Set("new"); err != nil {
		t.Errorf("Set -> error %v, want nil", err)
	}
	if got := c.Get(); got != "new" {
		t.Errorf("Get after Set -> %v, want new", got)
	}
}

func TestContainer_ReadOnly(t *testing.T) {
	c := NewReadOnly("fixed")
	err := c.Set("changed")
	if err != (errs.ImmutableAssignment{}) {
		t.Errorf("Set on read-only -> %v, want ImmutableAssignment", err)
	}
	if got := c.Get(); got != "fixed" {
		t.Errorf("Get after failed Set -> %v, want fixed", got)
	}
}

func TestContainer_Mutable(t *testing.T) {
	tt.Test(t, func(c *Container) bool { return c.Mutable() },
		tt.Args(NewContainer(1)).Rets(true),
		tt.Args(NewReadOnly(1)).Rets(false),
	)
}

func TestUnbox(t *testing.T) {
	c := NewContainer("boxed")
	tt.Test(t, Unbox,
		tt.Args(c).Rets("boxed"),
		tt.Args("bare").Rets("bare"),
		tt.Args(nil).Rets(nil),
	)
}

// A Container referenced from several sequences is the sharing mechanism:
// mutation through one reference is visible through all.
func TestContainer_SharedAcrossSequences(t *testing.T) {
	c := NewContainer("before")
	l := NewList("x", c)
	a := NewArray("y")
	a.slots = append(a.slots, c) // deliberate aliasing

	if err := c.Set("after"); err != nil {
		t.Fatalf("Set -> error %v", err)
	}
	got, err := l.Index(1)
	if err != nil {
		t.Fatalf("list Index -> error %v", err)
	}
	if Unbox(got) != "after" {
		t.Errorf("list sees %v, want after", Unbox(got))
	}
	av, err := a.Index(1)
	if err != nil {
		t.Fatalf("array Index -> error %v", err)
	}
	if av != "after" {
		t.Errorf("array sees %v, want after", av)
	}
}
