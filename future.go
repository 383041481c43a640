// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree

import (
	"context"

	"github.com/pkg/errors"
)

// Future is a dispatch running on its own goroutine.
//
// The outcome is computed exactly once and may be read by any number of
// goroutines. Poll and Wait report a resolution failure as an error wrapping
// *MissingDependencyError, the way TryDispatch does. Any other panic raised
// during the dispatch is captured and re-raised in whoever reads the result.
type Future[In, Out any] struct {
	done      chan struct{}
	out       Outcome[In, Out]
	panicked  bool
	recovered any
}

// DispatchAsync starts h.Dispatch(ctx, in) on a new goroutine.
// Cancelling ctx does not stop the dispatch; handler bodies observe ctx
// themselves.
func (h *Handler[In, Out]) DispatchAsync(ctx context.Context, in In) *Future[In, Out] {
	f := &Future[In, Out]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.panicked = true
				f.recovered = r
			}
		}()
		f.out = h.f(ctx, in, declineCont[In, Out])
	}()
	return f
}

// Done returns a channel closed when the dispatch has finished.
func (f *Future[In, Out]) Done() <-chan struct{} {
	return f.done
}

// Poll returns the result without blocking. ready is false while the
// dispatch is still running. Once it has finished, Poll returns what Wait
// would.
func (f *Future[In, Out]) Poll() (out Outcome[In, Out], ready bool, err error) {
	select {
	case <-f.done:
		out, err = f.result()
		return out, true, err
	default:
		return Outcome[In, Out]{}, false, nil
	}
}

// Wait blocks until the dispatch finishes or ctx is done.
//
// Returns ctx.Err() if ctx ends first; the dispatch keeps running and can be
// waited on again. A resolution failure is returned as an error wrapping
// *MissingDependencyError. Any other panic is re-raised.
func (f *Future[In, Out]) Wait(ctx context.Context) (Outcome[In, Out], error) {
	select {
	case <-f.done:
	case <-ctx.Done():
		return Outcome[In, Out]{}, ctx.Err()
	}
	return f.result()
}

// result reads a finished dispatch.
func (f *Future[In, Out]) result() (Outcome[In, Out], error) {
	if f.panicked {
		if e, ok := f.recovered.(*MissingDependencyError); ok {
			return Outcome[In, Out]{}, errors.WithStack(e)
		}
		panic(f.recovered)
	}
	return f.out, nil
}
