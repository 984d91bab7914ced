package errs

import (
	"errors"
	"testing"
)

var errorMessageTests = []struct {
	err     error
	wantMsg string
}{
	{
		OutOfRange{What: "index", ValidLow: 0, ValidHigh: 2, Actual: "3"},
		"out of range: index must be from 0 to 2, but is 3",
	},
	{
		OutOfRange{What: "index", ValidLow: 0, ValidHigh: -1, Actual: "0"},
		"out of range: index has no valid value, but is 0",
	},
	{
		ImmutableAssignment{},
		"cannot assign to immutable value",
	},
	{
		EmptyCollection{What: "pop"},
		"pop on empty collection",
	},
	{
		InfiniteLength{What: "count"},
		"count on unbounded list",
	},
	{
		AlreadyConsumed{What: "pull"},
		"pull on already consumed sequence",
	},
	{
		NotPositional{Kind: "seq"},
		"cannot bind seq to positional parameter",
	},
	{
		WorkUnitFailure{Index: 3, Cause: errors.New("lemons")},
		"work unit 3: lemons",
	},
}

func TestErrorMessages(t *testing.T) {
	for _, test := range errorMessageTests {
		if gotMsg := test.err.Error(); gotMsg != test.wantMsg {
			t.Errorf("got message %v, want %v", gotMsg, test.wantMsg)
		}
	}
}

func TestWorkUnitFailure_Unwrap(t *testing.T) {
	cause := errors.New("lemons")
	err := WorkUnitFailure{Index: 0, Cause: cause}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) is false, want true")
	}
}
