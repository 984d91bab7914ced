package vals

import (
	"src.elv.sh/pkg/persistent/vector"
)

// MakeList builds a List from constructor operands:
//
//   - A Slip operand contributes its elements positionally.
//   - Every other operand contributes exactly one element, Containers and
//     nested Lists included.
//   - When exactly one operand is supplied, it is resolved through the
//     argument rules instead: a bare List or Array spreads into its
//     elements, a Container-boxed value stays one element.
//
// Only an explicit Container creates a boxing boundary; there is no way to
// group operands without one.
func MakeList(operands ...any) List {
	if len(operands) == 1 {
		switch op := operands[0].(type) {
		case Slip:
			return op.List
		case List:
			return op
		case *Array:
			return op.List()
		default:
			return NewList(op)
		}
	}
	vec := vector.Empty
	for _, op := range operands {
		if s, ok := op.(Slip); ok {
			it := s.Iterator()
			for {
				e, ok := it.Pull()
				if !ok {
					break
				}
				vec = vec.Conj(e)
			}
		} else {
			vec = vec.Conj(op)
		}
	}
	return List{vec: vec}
}

// MakeArray builds an Array from constructor operands: an empty Array is
// allocated and the operand sequence is assigned into it eagerly, Slip
// operands splicing positionally and every resulting value getting a fresh
// Container. Unlike MakeList, a single bare List operand stays one element;
// spreading a List into an Array goes through AssignAll or Push.
func MakeArray(operands ...any) *Array {
	a := &Array{}
	for _, op := range operands {
		if s, ok := op.(Slip); ok {
			it := s.Iterator()
			for {
				e, ok := it.Pull()
				if !ok {
					break
				}
				a.slots = append(a.slots, box(e))
			}
		} else {
			a.slots = append(a.slots, box(op))
		}
	}
	return a
}

// Expand resolves one value in a positional slot to the arguments it
// supplies:
//
//  1. A *Container supplies one argument, the container itself, whatever it
//     boxes.
//  2. A bare List, Slip or Array supplies one argument per element; Array
//     elements are read through their Containers.
//  3. Anything else supplies itself as one argument.
//
// The value must be bounded; use Arguments for producers that may not be.
func Expand(v any) []any {
	switch v := v.(type) {
	case *Container:
		return []any{v}
	case Slip:
		return collectList(v.List)
	case List:
		return collectList(v)
	case *Array:
		return v.Values()
	default:
		return []any{v}
	}
}

func collectList(l List) []any {
	var elems []any
	it := l.Iterator()
	for {
		v, ok := it.Pull()
		if !ok {
			return elems
		}
		elems = append(elems, v)
	}
}

// Arguments is Expand as a lazy producer, usable with unbounded Lists.
func Arguments(v any) Iterator {
	switch v := v.(type) {
	case *Container:
		return IterValues(v)
	case Slip:
		return v.Iterator()
	case List:
		return v.Iterator()
	case *Array:
		return v.Iterator()
	default:
		return IterValues(v)
	}
}

// NumArguments returns the number of arguments a value supplies in a
// positional slot, failing with errs.InfiniteLength for unbounded Lists.
func NumArguments(v any) (int, error) {
	switch v := v.(type) {
	case *Container:
		return 1, nil
	case Slip:
		return v.Count()
	case List:
		return v.Count()
	case *Array:
		return v.Len(), nil
	default:
		return 1, nil
	}
}
