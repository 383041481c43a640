// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree

import "context"

// Endpoint builds a terminal handler from a dependency-injected function.
//
// An endpoint always terminates: it resolves f's dependencies from the
// container, runs f and returns its result as the output. It never invokes
// its continuation and never declines. A dependency missing from the
// container panics with *MissingDependencyError.
//
//	double := dtree.Endpoint(dtree.Inject1(func(n int) int { return n * 2 }))
func Endpoint[Out any](f DepFn[Out]) *Handler[*Container, Out] {
	return FromFn(func(ctx context.Context, c *Container, _ Cont[*Container, Out]) Outcome[*Container, Out] {
		return Terminate[*Container](f(ctx, c))
	})
}
