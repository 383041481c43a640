// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree

import "context"

// HandlerFunc is the function a Handler wraps. It receives the input and the
// continuation to call if the input should flow onward.
type HandlerFunc[In, Out any] func(ctx context.Context, in In, k Cont[In, Out]) Outcome[In, Out]

// Handler is a node of a dispatch tree.
//
// A Handler is immutable after construction. Copying the pointer shares the
// node; trees can be dispatched from any number of goroutines at once.
type Handler[In, Out any] struct {
	f HandlerFunc[In, Out]
}

// FromFn wraps f into a Handler unchanged.
// Every other constructor and combinator is built on FromFn.
func FromFn[In, Out any](f HandlerFunc[In, Out]) *Handler[In, Out] {
	return &Handler[In, Out]{f: f}
}

// entryFn passes the input straight to the continuation.
func entryFn[In, Out any](ctx context.Context, in In, k Cont[In, Out]) Outcome[In, Out] {
	return k(ctx, in)
}

// Entry returns the identity handler: it never filters and forwards every
// input to its continuation. Entry is the conventional root of a tree.
func Entry[In, Out any]() *Handler[In, Out] {
	return FromFn(entryFn[In, Out])
}

// Chain links next after h.
//
// Running the result with continuation k runs h with a continuation that runs
// next with k. If h terminates, next and k are never invoked. If h forwards
// its input, next receives it with k still pending beyond it. If h declines
// without forwarding, next is skipped.
//
// Chain is associative: a.Chain(b).Chain(c) behaves as a.Chain(b.Chain(c)).
func (h *Handler[In, Out]) Chain(next *Handler[In, Out]) *Handler[In, Out] {
	self := h.f
	then := next.f
	return FromFn(func(ctx context.Context, in In, k Cont[In, Out]) Outcome[In, Out] {
		return self(ctx, in, func(ctx context.Context, left In) Outcome[In, Out] {
			return then(ctx, left, k)
		})
	})
}

// Branch attaches next as an independent alternative after h.
//
// When h forwards its input, next is dispatched on its own, with the
// terminal continuation. If next terminates the result terminates with its
// output; otherwise the leftover input goes to the outer continuation.
// Nothing after next is visible from inside next.
//
// Entry().Branch(a).Branch(b).Branch(c) tries a, b and c in that order and
// declines with the original input when none of them terminates.
func (h *Handler[In, Out]) Branch(next *Handler[In, Out]) *Handler[In, Out] {
	self := h.f
	alt := next.f
	return FromFn(func(ctx context.Context, in In, k Cont[In, Out]) Outcome[In, Out] {
		return self(ctx, in, func(ctx context.Context, left In) Outcome[In, Out] {
			out := alt(ctx, left, declineCont[In, Out])
			if out.terminated {
				return out
			}
			return k(ctx, out.input)
		})
	})
}

// Chain links handlers left to right: Chain(a, b, c) is a.Chain(b).Chain(c).
// With no handlers it returns Entry.
func Chain[In, Out any](hs ...*Handler[In, Out]) *Handler[In, Out] {
	if len(hs) == 0 {
		return Entry[In, Out]()
	}
	h := hs[0]
	for _, next := range hs[1:] {
		h = h.Chain(next)
	}
	return h
}

// Branches returns Entry().Branch(hs[0]).Branch(hs[1])...: a node that tries
// each alternative in order.
func Branches[In, Out any](hs ...*Handler[In, Out]) *Handler[In, Out] {
	h := Entry[In, Out]()
	for _, next := range hs {
		h = h.Branch(next)
	}
	return h
}
