package vals

import (
	"context"
	"runtime"
	"sync"

	"github.com/slipway-lang/slipway/pkg/errs"
	"github.com/slipway-lang/slipway/pkg/errutil"
)

// HyperSeq is a Seq whose consumption may be distributed across concurrent
// execution units. The consume-once contract is identical to Seq; the only
// relaxation is that the order in which elements reach a consumer callback
// is unspecified. Each element is still produced exactly once. Ordered
// results are available through Collect, which places every result at its
// logical source index regardless of completion order.
type HyperSeq struct {
	seq    *Seq
	degree int
}

// NewHyperSeq returns a fresh HyperSeq over the given producer, running at
// most degree work units concurrently. A degree below 1 means one unit per
// CPU.
func NewHyperSeq(it Iterator, degree int) *HyperSeq {
	if degree < 1 {
		degree = runtime.NumCPU()
	}
	return &HyperSeq{seq: NewSeq(it), degree: degree}
}

// State returns the current consumption state.
func (h *HyperSeq) State() SeqState { return h.seq.State() }

// Pull consumes sequentially, under the same contract as (*Seq).Pull.
func (h *HyperSeq) Pull() (any, bool, error) { return h.seq.Pull() }

// Cache drains sequentially and captures the production as a List, under
// the same contract as (*Seq).Cache. The captured List is in source order.
func (h *HyperSeq) Cache() (List, error) { return h.seq.Cache() }

// Each calls f once for every element, with up to the configured number of
// calls running concurrently. Delivery order is unspecified. When f returns
// an error or ctx is canceled, no new work units are issued, in-flight
// units are waited out, and the HyperSeq ends up consumed; the failures are
// surfaced as errs.WorkUnitFailure values, aggregated if there are several.
// A non-nil error means consumption must not be treated as complete.
func (h *HyperSeq) Each(ctx context.Context, f func(any) error) error {
	if err := h.start(); err != nil {
		return err
	}
	defer h.finish()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		failed  []error
		stopped bool
	)
	sem := make(chan struct{}, h.degree)
	for i := 0; ; i++ {
		mu.Lock()
		bail := stopped
		mu.Unlock()
		if bail || ctx.Err() != nil {
			break
		}
		v, ok := h.seq.it.Pull()
		if !ok {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v any) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := f(v); err != nil {
				mu.Lock()
				failed = append(failed, errs.WorkUnitFailure{Index: i, Cause: err})
				stopped = true
				mu.Unlock()
			}
		}(i, v)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		failed = append(failed, err)
	}
	return errutil.Multi(failed...)
}

// Collect materializes the production into an Array, applying f to each
// element concurrently and placing every result at its logical source index
// regardless of completion order. A nil f collects the elements themselves.
// On any failure the collection is all-or-fail: no Array is returned and
// the aggregated failure is surfaced.
func (h *HyperSeq) Collect(ctx context.Context, f func(any) (any, error)) (*Array, error) {
	if f == nil {
		f = func(v any) (any, error) { return v, nil }
	}
	if err := h.start(); err != nil {
		return nil, err
	}
	defer h.finish()

	var src []any
	for {
		v, ok := h.seq.it.Pull()
		if !ok {
			break
		}
		src = append(src, v)
	}
	// Each unit owns results[i] exclusively; no locking on the buffer.
	results := make([]any, len(src))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		failed  []error
		stopped bool
	)
	sem := make(chan struct{}, h.degree)
	for i, v := range src {
		mu.Lock()
		bail := stopped
		mu.Unlock()
		if bail || ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v any) {
			defer wg.Done()
			defer func() { <-sem }()
			r, err := f(v)
			if err != nil {
				mu.Lock()
				failed = append(failed, errs.WorkUnitFailure{Index: i, Cause: err})
				stopped = true
				mu.Unlock()
				return
			}
			results[i] = r
		}(i, v)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		failed = append(failed, err)
	}
	if err := errutil.Multi(failed...); err != nil {
		return nil, err
	}
	return NewArray(results...), nil
}

// start moves a fresh HyperSeq to consuming, and rejects one that is not
// fresh.
func (h *HyperSeq) start() error {
	if h.seq.state != SeqFresh {
		return errs.AlreadyConsumed{What: "pull"}
	}
	h.seq.state = SeqConsuming
	return nil
}

// finish is the exhaustion/cancellation barrier: whether the consumption
// completed or was cut short, the HyperSeq is consumed afterwards.
func (h *HyperSeq) finish() {
	h.seq.state = SeqConsumed
}
