// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observe

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"code.hybscloud.com/dtree"
)

// Logging returns middleware that logs every dispatch through a node at
// debug level, and dispatches that panic at error level before re-panicking.
func Logging[In, Out any](log zerolog.Logger) Middleware[In, Out] {
	return func(ctx context.Context, node string, in In, next dtree.Cont[In, Out]) dtree.Outcome[In, Out] {
		start := time.Now()
		done := false
		defer func() {
			if done {
				return
			}
			r := recover()
			if r == nil {
				return
			}
			log.Error().
				Str("node", node).
				Dur("elapsed", time.Since(start)).
				Interface("panic", r).
				Msg("node panicked")
			panic(r)
		}()

		out := next(ctx, in)
		done = true

		log.Debug().
			Str("node", node).
			Str("status", Status(out)).
			Dur("elapsed", time.Since(start)).
			Msg("node dispatched")
		return out
	}
}
