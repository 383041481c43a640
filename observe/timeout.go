// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observe

import (
	"context"
	"time"

	"code.hybscloud.com/dtree"
)

// Timeout returns middleware that runs the node with a context that expires
// after d. Handlers that honour ctx see the deadline; the outcome itself is
// not changed. A non-positive d disables the middleware.
func Timeout[In, Out any](d time.Duration) Middleware[In, Out] {
	return func(ctx context.Context, _ string, in In, next dtree.Cont[In, Out]) dtree.Outcome[In, Out] {
		if d <= 0 {
			return next(ctx, in)
		}
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next(ctx, in)
	}
}
