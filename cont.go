// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree

import "context"

// Cont is a continuation: "the rest of the dispatch" after a handler.
//
// A handler that wants later handlers to see the input invokes its
// continuation with it and returns whatever the continuation returns.
// A handler that rejects the input returns Decline(in) without invoking it.
type Cont[In, Out any] func(ctx context.Context, in In) Outcome[In, Out]

// declineCont is the terminal continuation used by Dispatch. It is a named
// function so that each instantiation is a static funcval.
func declineCont[In, Out any](_ context.Context, in In) Outcome[In, Out] {
	return Decline[In, Out](in)
}

// Terminal returns the terminal continuation, which declines with its input.
// Dispatch(ctx, in) is Execute(ctx, in, Terminal[In, Out]()).
func Terminal[In, Out any]() Cont[In, Out] {
	return declineCont[In, Out]
}
