package vals

import (
	"github.com/slipway-lang/slipway/pkg/errs"
)

// BindToArrayParam binds a value to a positional (array) parameter. Lists
// and Slips are copied eagerly into a fresh Array; an Array binds as itself.
// A Seq or HyperSeq is not positional and fails with errs.NotPositional,
// unless fallbackCache is set, in which case the production is cached and
// the resulting List is bound instead. The fallback is an escape hatch for
// call-site argument binding only; plain variable binding must pass false.
func BindToArrayParam(v any, fallbackCache bool) (*Array, error) {
	switch v := v.(type) {
	case *Array:
		return v, nil
	case List, Slip:
		a := &Array{}
		if err := a.AssignAll(v); err != nil {
			return nil, err
		}
		return a, nil
	case *Seq:
		if !fallbackCache {
			return nil, errs.NotPositional{Kind: Kind(v)}
		}
		l, err := v.Cache()
		if err != nil {
			return nil, err
		}
		return BindToArrayParam(l, false)
	case *HyperSeq:
		if !fallbackCache {
			return nil, errs.NotPositional{Kind: Kind(v)}
		}
		l, err := v.Cache()
		if err != nil {
			return nil, err
		}
		return BindToArrayParam(l, false)
	default:
		return nil, errs.NotPositional{Kind: Kind(v)}
	}
}
