package vals

import (
	"github.com/slipway-lang/slipway/pkg/errs"
	"src.elv.sh/pkg/persistent/vector"
)

// SeqState is the consumption state of a Seq.
type SeqState uint8

const (
	// SeqFresh is the initial state; the Seq has produced nothing yet.
	SeqFresh SeqState = iota
	// SeqConsuming means at least one element has been pulled and the
	// producer is not known to be exhausted.
	SeqConsuming
	// SeqCached means the production has been captured as a List; the List
	// can be re-requested, the Seq itself can no longer be pulled.
	SeqCached
	// SeqConsumed is terminal: the production is gone.
	SeqConsumed
)

func (s SeqState) String() string {
	switch s {
	case SeqFresh:
		return "fresh"
	case SeqConsuming:
		return "consuming"
	case SeqCached:
		return "cached"
	case SeqConsumed:
		return "consumed"
	}
	return "invalid"
}

// Seq is a one-shot sequence over a pull-based producer. A Seq is consumable
// exactly once: after a full drain, or after the production has been
// captured with Cache or LazyList, any further Pull fails with
// errs.AlreadyConsumed. Cache and LazyList themselves are idempotent and
// return the same captured List on repeated calls.
type Seq struct {
	it     Iterator
	state  SeqState
	cached List
}

// NewSeq returns a fresh Seq over the given producer.
func NewSeq(it Iterator) *Seq {
	return &Seq{it: it}
}

// ToSequence is the coercion entry point for producers; it is NewSeq under
// the name other layers use.
func ToSequence(it Iterator) *Seq {
	return NewSeq(it)
}

// State returns the current consumption state.
func (s *Seq) State() SeqState { return s.state }

// Pull returns the next value and true, or a zero value and false exactly
// once when the producer is exhausted. Pulling again after exhaustion, or
// after Cache or LazyList, fails with errs.AlreadyConsumed.
func (s *Seq) Pull() (any, bool, error) {
	switch s.state {
	case SeqFresh, SeqConsuming:
		s.state = SeqConsuming
		v, ok := s.it.Pull()
		if !ok {
			s.state = SeqConsumed
			return nil, false, nil
		}
		return v, true, nil
	default:
		return nil, false, errs.AlreadyConsumed{What: "pull"}
	}
}

// Cache drains the producer and captures the result as an immutable List.
// On a fresh Seq the drain is eager and complete; on a Seq already cached
// (by Cache or LazyList) the same captured List is returned without
// re-draining. On a Seq that has been pulled by other means it fails with
// errs.AlreadyConsumed.
func (s *Seq) Cache() (List, error) {
	switch s.state {
	case SeqFresh:
		vec := vector.Empty
		for {
			v, ok := s.it.Pull()
			if !ok {
				break
			}
			vec = vec.Conj(v)
		}
		s.cached = List{vec: vec}
		s.state = SeqCached
		return s.cached, nil
	case SeqCached:
		return s.cached, nil
	default:
		return EmptyList, errs.AlreadyConsumed{What: "cache"}
	}
}

// LazyList captures the production as a lazily-materializing List: elements
// are produced on demand and memoized instead of being drained eagerly.
// Like Cache it is only available on a fresh Seq and is idempotent
// afterwards.
func (s *Seq) LazyList() (List, error) {
	switch s.state {
	case SeqFresh:
		s.cached = NewLazyList(s.it, false)
		s.state = SeqCached
		return s.cached, nil
	case SeqCached:
		return s.cached, nil
	default:
		return EmptyList, errs.AlreadyConsumed{What: "cache"}
	}
}

// Each pulls every remaining element and calls f with it. The iteration
// stops early, leaving the Seq consuming, if f returns false; otherwise the
// Seq ends up consumed.
func (s *Seq) Each(f func(any) bool) error {
	for {
		v, ok, err := s.Pull()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if !f(v) {
			return nil
		}
	}
}
