// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree

import (
	"context"

	"github.com/pkg/errors"
)

// Execute runs h on in with an explicit continuation k.
func (h *Handler[In, Out]) Execute(ctx context.Context, in In, k Cont[In, Out]) Outcome[In, Out] {
	return h.f(ctx, in, k)
}

// Dispatch runs h on in with the terminal continuation, so input that flows
// past the last handler comes back as Declined.
//
// A dependency that cannot be resolved panics with *MissingDependencyError.
func (h *Handler[In, Out]) Dispatch(ctx context.Context, in In) Outcome[In, Out] {
	return h.f(ctx, in, declineCont[In, Out])
}

// TryDispatch is like Dispatch but returns a resolution failure as an error
// instead of panicking. The error wraps *MissingDependencyError.
// Panics of any other kind propagate unchanged.
func (h *Handler[In, Out]) TryDispatch(ctx context.Context, in In) (out Outcome[In, Out], err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*MissingDependencyError)
			if !ok {
				panic(r)
			}
			err = errors.WithStack(e)
		}
	}()
	return h.f(ctx, in, declineCont[In, Out]), nil
}
