// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observe

import (
	"context"

	"code.hybscloud.com/dtree"
)

// Middleware observes one dispatch through a node. next runs the node with
// the continuation it was given; a middleware must call next exactly once
// and return its outcome.
type Middleware[In, Out any] func(ctx context.Context, node string, in In, next dtree.Cont[In, Out]) dtree.Outcome[In, Out]

// Chain composes middleware into one. The first middleware is the outermost.
//
//	Chain(logging, tracing) runs as logging → tracing → node
func Chain[In, Out any](mws ...Middleware[In, Out]) Middleware[In, Out] {
	return func(ctx context.Context, node string, in In, next dtree.Cont[In, Out]) dtree.Outcome[In, Out] {
		run := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			inner := run
			run = func(ctx context.Context, in In) dtree.Outcome[In, Out] {
				return mw(ctx, node, in, inner)
			}
		}
		return run(ctx, in)
	}
}

// Wrap returns a handler that behaves exactly as h, with mws observing each
// dispatch that reaches it under the name node.
func Wrap[In, Out any](node string, h *dtree.Handler[In, Out], mws ...Middleware[In, Out]) *dtree.Handler[In, Out] {
	if len(mws) == 0 {
		return h
	}
	mw := Chain(mws...)
	return dtree.FromFn(func(ctx context.Context, in In, k dtree.Cont[In, Out]) dtree.Outcome[In, Out] {
		return mw(ctx, node, in, func(ctx context.Context, in In) dtree.Outcome[In, Out] {
			return h.Execute(ctx, in, k)
		})
	})
}

// Status names an outcome for logs, spans and metric attributes.
func Status[In, Out any](o dtree.Outcome[In, Out]) string {
	if o.IsTerminated() {
		return "terminated"
	}
	return "declined"
}
