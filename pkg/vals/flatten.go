package vals

// Flatten returns a lazy Seq over the leaves of v. The traversal recurses
// into any List-like value that is not Container-boxed, and stops at every
// *Container, contributing its boxed value as one element even when it
// boxes a whole List or Array. Arrays never need recursion at all: every
// Array slot is Container-boxed by construction, so an Array contributes
// exactly its own slot values in order. Anything else flattens to itself.
func Flatten(v any) *Seq {
	return NewSeq(&flattenIterator{stack: []Iterator{IterValues(v)}})
}

type flattenIterator struct {
	stack []Iterator
}

func (f *flattenIterator) Pull() (any, bool) {
	for len(f.stack) > 0 {
		it := f.stack[len(f.stack)-1]
		v, ok := it.Pull()
		if !ok {
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}
		switch v := v.(type) {
		case *Container:
			// Boxing stops the traversal.
			return v.Get(), true
		case *Array:
			// All slots are boxed, so the traversal stops at every one of
			// them: the Array contributes its slot values and nothing below.
			f.stack = append(f.stack, v.List().Iterator())
		case Slip:
			f.stack = append(f.stack, v.Iterator())
		case List:
			f.stack = append(f.stack, v.Iterator())
		default:
			return v, true
		}
	}
	return nil, false
}
