package vals

// Slip marks a List for splicing. When a Slip appears as an operand to
// MakeList, MakeArray, Push or Unshift, its elements are spliced into the
// result positionally instead of nesting as one element. In every other
// context a Slip behaves exactly as its wrapped List; finished Lists never
// retain a Slip as an element unless one was deliberately boxed.
type Slip struct {
	List
}

// ToSlip wraps a List for splicing.
func ToSlip(l List) Slip {
	return Slip{l}
}

// Unwrap returns the wrapped List.
func (s Slip) Unwrap() List {
	return s.List
}
