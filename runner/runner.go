// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/dtree"
)

// Runner dispatches inputs through a fixed handler tree.
// A Runner is safe for concurrent use.
type Runner[In, Out any] struct {
	root      *dtree.Handler[In, Out]
	name      string
	cfg       Config
	log       zerolog.Logger
	hooks     Hooks[In, Out]
	collector *Collector
	prepare   func(ctx context.Context, in In) (In, error)
}

// New returns a Runner for root.
func New[In, Out any](root *dtree.Handler[In, Out], opts ...Option[In, Out]) (*Runner[In, Out], error) {
	if root == nil {
		return nil, errors.New("runner: root handler is nil")
	}
	r := &Runner[In, Out]{
		root: root,
		name: "dtree",
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "runner: invalid config")
	}
	if lvl, _ := r.cfg.level(); lvl != zerolog.NoLevel {
		r.log = r.log.Level(lvl)
	}
	r.log = r.log.With().Str("runner", r.name).Logger()
	return r, nil
}

// Name returns the runner's name.
func (r *Runner[In, Out]) Name() string { return r.name }

// Dispatch runs in through the tree.
//
// The returned error is non-nil only when the dispatch could not complete:
// ctx was already done, the prepare step failed, or the prepare step or the
// tree panicked. A dependency the container lacks surfaces as an error
// matching dtree.ErrMissingDependency; any other panic as a *PanicError.
// Failed dispatches go to Hooks.OnFailure, never OnOutcome. When err is
// non-nil the outcome declines with the original input.
func (r *Runner[In, Out]) Dispatch(ctx context.Context, in In) (out dtree.Outcome[In, Out], err error) {
	start := time.Now()
	ev := Event{ID: newID(start), Runner: r.name, Timestamp: start}
	log := r.log.With().Str("dispatch_id", ev.ID.String()).Logger()

	if err := ctx.Err(); err != nil {
		return dtree.Decline[In, Out](in), errors.Wrap(err, "dispatch not started")
	}
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}
	ctx = context.WithValue(ctx, idKey{}, ev.ID)
	ctx = log.WithContext(ctx)

	r.hooks.dispatch(ctx, ev)
	r.collector.start(r.name)
	log.Debug().Msg("dispatch started")

	defer func() {
		ev.Elapsed = time.Since(start)
		if err != nil {
			ev.Status = StatusFailed
			r.collector.finish(r.name, ev.Status, ev.Elapsed)
			log.Error().Err(err).Dur("elapsed", ev.Elapsed).Msg("dispatch failed")
			r.hooks.failure(ctx, ev, err)
			return
		}
		ev.Status = StatusDeclined
		if out.IsTerminated() {
			ev.Status = StatusTerminated
		}
		r.collector.finish(r.name, ev.Status, ev.Elapsed)
		log.Debug().Str("status", ev.Status).Dur("elapsed", ev.Elapsed).Msg("dispatch finished")
		r.hooks.outcome(ctx, ev, out)
	}()

	return r.run(ctx, in)
}

// run prepares in, executes the tree and turns panics from either step into
// errors. On failure the outcome declines with the input as given.
func (r *Runner[In, Out]) run(ctx context.Context, in In) (out dtree.Outcome[In, Out], err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		out = dtree.Decline[In, Out](in)
		if mde, ok := v.(*dtree.MissingDependencyError); ok {
			err = errors.WithStack(mde)
			return
		}
		err = errors.WithStack(newPanicError(v))
	}()

	next := in
	if r.prepare != nil {
		prepared, err := r.prepare(ctx, in)
		if err != nil {
			return dtree.Decline[In, Out](in), errors.Wrap(err, "prepare failed")
		}
		next = prepared
	}
	return r.root.Dispatch(ctx, next), nil
}

// DispatchAll dispatches every input concurrently, at most Concurrency at a
// time, and returns the outcomes in input order. The first failure cancels
// the dispatches that have not started yet and is returned; outcomes of
// inputs that did not complete decline with their input.
func (r *Runner[In, Out]) DispatchAll(ctx context.Context, inputs []In) ([]dtree.Outcome[In, Out], error) {
	outs := make([]dtree.Outcome[In, Out], len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	if r.cfg.Concurrency > 0 {
		g.SetLimit(r.cfg.Concurrency)
	}
	for i, in := range inputs {
		g.Go(func() error {
			out, err := r.Dispatch(gctx, in)
			outs[i] = out
			return errors.Wrapf(err, "input %d", i)
		})
	}
	return outs, g.Wait()
}
