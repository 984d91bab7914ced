package vals

import (
	"fmt"
	"strconv"
	"strings"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents the value, preferably as a
	// literal that would construct an equal value.
	Repr() string
}

// Repr returns the representation for a value, used in error messages and
// test failures. Lists render as (...), Arrays as [...], Slips with a
// leading slip marker, boxed values with a leading &. An unbounded List
// renders only as its kind; representing it literally would not terminate.
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return strconv.Quote(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case *Container:
		return "&" + Repr(v.Get())
	case Slip:
		return "slip" + reprList(v.List)
	case List:
		return reprList(v)
	case *Array:
		elems := make([]string, len(v.slots))
		for i, c := range v.slots {
			elems[i] = Repr(c.Get())
		}
		return "[" + strings.Join(elems, " ") + "]"
	case *Seq:
		return "<seq " + v.State().String() + ">"
	case *HyperSeq:
		return "<hyperseq " + v.State().String() + ">"
	case Reprer:
		return v.Repr()
	default:
		return fmt.Sprintf("<unknown %v>", v)
	}
}

func reprList(l List) string {
	if l.Unbounded() {
		return "<unbounded list>"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	first := true
	it := l.Iterator()
	for {
		v, ok := it.Pull()
		if !ok {
			break
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(Repr(v))
	}
	sb.WriteByte(')')
	return sb.String()
}
