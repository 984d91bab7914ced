package vals

import (
	"github.com/slipway-lang/slipway/pkg/tt"
)

// vs makes a []any from its arguments.
func vs(xs ...any) []any { return xs }

// eq returns a tt matcher that matches using Equal, so sequence values
// compare by elements rather than by internals.
func eq(want any) tt.Matcher { return eqMatcher{want} }

type eqMatcher struct{ want any }

func (m eqMatcher) Match(got tt.RetValue) bool { return Equal(m.want, got) }

// counter returns an Iterator producing from, from+1, ... without end, and
// a pointer to the number of pulls made so far.
func counter(from int) (Iterator, *int) {
	pulls := new(int)
	n := from
	return Gen(func() (any, bool) {
		*pulls++
		v := n
		n++
		return v, true
	}), pulls
}

// upto returns an Iterator producing 0, 1, ..., n-1.
func upto(n int) Iterator {
	i := 0
	return Gen(func() (any, bool) {
		if i >= n {
			return nil, false
		}
		v := i
		i++
		return v, true
	})
}
