package vals

import (
	"github.com/slipway-lang/slipway/pkg/errs"
)

// Container is a single assignable slot. It is the only mutation surface in
// the value model: Lists never mutate elements, and Arrays mutate only
// through the Container each slot owns. A Container may be referenced from
// multiple Lists or Arrays at the same time; mutation through any one
// reference is visible through all of them.
type Container struct {
	value    any
	readOnly bool
}

// NewContainer creates a mutable Container holding v.
func NewContainer(v any) *Container {
	return &Container{value: v}
}

// NewReadOnly creates a Container whose value can never be reassigned. Set
// always returns an error.
func NewReadOnly(v any) *Container {
	return &Container{value: v, readOnly: true}
}

// Get returns the current value of the container.
func (c *Container) Get() any { return c.value }

// Set assigns a new value to the container.
func (c *Container) Set(v any) error {
	if c.readOnly {
		return errs.ImmutableAssignment{}
	}
	c.value = v
	return nil
}

// Mutable returns whether the container accepts assignment.
func (c *Container) Mutable() bool { return !c.readOnly }

// Unbox returns the value inside v if it is a *Container, and v itself
// otherwise.
func Unbox(v any) any {
	if c, ok := v.(*Container); ok {
		return c.value
	}
	return v
}

// box allocates a fresh mutable Container holding the value of v. If v is
// itself a *Container, the new Container holds its current value; source
// Containers are never reused, so later mutation of the source is not
// visible through the copy.
func box(v any) *Container {
	return NewContainer(Unbox(v))
}
