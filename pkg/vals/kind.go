package vals

import (
	"fmt"
)

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the "kind" of the value, a concept similar to type but
// closed over the value model. It is implemented for the builtin nil, bool,
// string and number types, the Container, List, Array, Slip, Seq and
// HyperSeq types, and types satisfying the Kinder interface. For other
// types, it returns the Go type name of the argument preceded by "!!".
func Kind(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case string:
		return "string"
	case int:
		return "number"
	case float64:
		return "number"
	case *Container:
		return "box"
	case Slip:
		return "slip"
	case List:
		return "list"
	case *Array:
		return "array"
	case *Seq:
		return "seq"
	case *HyperSeq:
		return "hyperseq"
	case Kinder:
		return v.Kind()
	default:
		return fmt.Sprintf("!!%T", v)
	}
}
