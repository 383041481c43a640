// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Runner.
type Option[In, Out any] func(*Runner[In, Out])

// WithName labels logs, events and metrics. The default is "dtree".
func WithName[In, Out any](name string) Option[In, Out] {
	return func(r *Runner[In, Out]) {
		r.name = name
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger[In, Out any](log zerolog.Logger) Option[In, Out] {
	return func(r *Runner[In, Out]) {
		r.log = log
	}
}

// WithHooks sets the lifecycle hooks.
func WithHooks[In, Out any](hooks Hooks[In, Out]) Option[In, Out] {
	return func(r *Runner[In, Out]) {
		r.hooks = hooks
	}
}

// WithConcurrency bounds the goroutines DispatchAll uses. Zero means one
// goroutine per input.
func WithConcurrency[In, Out any](n int) Option[In, Out] {
	return func(r *Runner[In, Out]) {
		r.cfg.Concurrency = n
	}
}

// WithTimeout bounds each dispatch.
func WithTimeout[In, Out any](d time.Duration) Option[In, Out] {
	return func(r *Runner[In, Out]) {
		r.cfg.Timeout = d
	}
}

// WithCollector reports every dispatch to c.
func WithCollector[In, Out any](c *Collector) Option[In, Out] {
	return func(r *Runner[In, Out]) {
		r.collector = c
	}
}

// WithPrepare runs fn on every input before it enters the tree. An error
// from fn fails the dispatch without running the tree.
func WithPrepare[In, Out any](fn func(ctx context.Context, in In) (In, error)) Option[In, Out] {
	return func(r *Runner[In, Out]) {
		r.prepare = fn
	}
}

// WithConfig applies a Config. Options given after it override its fields.
func WithConfig[In, Out any](cfg Config) Option[In, Out] {
	return func(r *Runner[In, Out]) {
		if cfg.Name != "" {
			r.name = cfg.Name
		}
		r.cfg = cfg
	}
}
