// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree

import (
	"context"
	"reflect"
)

// Condition adapters. Each one either forwards its input to the
// continuation or declines with it; none of them terminates on its own.

// When forwards in to the continuation if pred(ctx, in) holds and declines
// with in otherwise. It works on any input type.
func When[In, Out any](pred func(ctx context.Context, in In) bool) *Handler[In, Out] {
	return FromFn(func(ctx context.Context, in In, k Cont[In, Out]) Outcome[In, Out] {
		if pred(ctx, in) {
			return k(ctx, in)
		}
		return Decline[In, Out](in)
	})
}

// Filter is When over a Container with a dependency-injected predicate.
//
//	five := dtree.Filter[string](dtree.Inject1(func(n int) bool { return n == 5 }))
func Filter[Out any](pred DepFn[bool]) *Handler[*Container, Out] {
	return When[*Container, Out](func(ctx context.Context, c *Container) bool {
		return pred(ctx, c)
	})
}

// FilterMap runs f; when it reports ok, the value it produced is made
// available to the rest of the dispatch under type T, otherwise FilterMap
// declines.
//
// The value lives in a sealed child container layered over c; c is never
// modified. If the rest of the dispatch declines with that child, the decline
// reports c instead, so callers get back the container they passed in.
func FilterMap[T, Out any](f func(ctx context.Context, c *Container) (T, bool)) *Handler[*Container, Out] {
	t := reflect.TypeFor[T]()
	return FromFn(func(ctx context.Context, c *Container, k Cont[*Container, Out]) Outcome[*Container, Out] {
		v, ok := f(ctx, c)
		if !ok {
			return Decline[*Container, Out](c)
		}
		return restore(k(ctx, c.with(t, v)), c)
	})
}

// Map is FilterMap for a total function: it never declines.
//
//	parsed := dtree.Map[Request, string](dtree.Inject1(parseRequest))
func Map[T, Out any](f DepFn[T]) *Handler[*Container, Out] {
	return FilterMap[T, Out](func(ctx context.Context, c *Container) (T, bool) {
		return f(ctx, c), true
	})
}

// Inspect runs f for its side effect and forwards the container unchanged.
func Inspect[Out any](f func(ctx context.Context, c *Container)) *Handler[*Container, Out] {
	return FromFn(func(ctx context.Context, c *Container, k Cont[*Container, Out]) Outcome[*Container, Out] {
		f(ctx, c)
		return k(ctx, c)
	})
}

// restore swaps a declined child container for its origin.
func restore[Out any](out Outcome[*Container, Out], origin *Container) Outcome[*Container, Out] {
	if out.terminated || out.input == origin {
		return out
	}
	for n := out.input; n != nil; n = n.parent {
		if n == origin {
			return Decline[*Container, Out](origin)
		}
	}
	return out
}
