// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package runner hosts a dtree handler tree behind an error-returning API.
//
// A [Runner] owns a root handler and dispatches inputs through it. Every
// dispatch gets a ULID, runs under the configured timeout, is logged through
// zerolog, is reported to [Hooks] and, when configured, to a Prometheus
// [Collector]. Panics raised inside the tree (including dependency resolution
// failures) come back as errors instead of unwinding the caller.
//
//	r, err := runner.New(root,
//	    runner.WithLogger[*dtree.Container, string](log),
//	    runner.WithConcurrency[*dtree.Container, string](8),
//	)
//	out, err := r.Dispatch(ctx, dtree.NewContainer(req))
//
// [Runner.DispatchAll] dispatches a batch concurrently with a bounded number
// of goroutines and returns the outcomes in input order.
package runner
