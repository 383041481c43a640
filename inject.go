// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree

//go:generate go run ./cmd/dtree-gen --max 6 --out inject_generated.go --package dtree

import (
	"context"
	"fmt"
	"reflect"
)

// DepFn is a function whose parameters have been bound to a Container.
// Calling it resolves each declared dependency and runs the body.
//
// DepFn values are built with Inject0..Inject6 (checked at compile time)
// or InjectFunc (checked once, at construction, by reflection).
type DepFn[R any] func(ctx context.Context, c *Container) R

// Call invokes f against c.
func (f DepFn[R]) Call(ctx context.Context, c *Container) R {
	return f(ctx, c)
}

// InjectFunc binds an arbitrary function to the container by reflection.
//
// fn must be a function with exactly one result assignable to R. Each
// parameter is resolved by its declared type at call time; a parameter of type
// context.Context receives the dispatch context. Variadic functions are
// rejected. A malformed fn panics here rather than at dispatch.
func InjectFunc[R any](fn any) DepFn[R] {
	if fn == nil {
		panic("dtree: InjectFunc given nil")
	}
	v := reflect.ValueOf(fn)
	ft := v.Type()
	if ft.Kind() != reflect.Func {
		panic(fmt.Sprintf("dtree: InjectFunc wants a function, got %T", fn))
	}
	if v.IsNil() {
		panic("dtree: InjectFunc given a nil function")
	}
	if ft.IsVariadic() {
		panic(fmt.Sprintf("dtree: InjectFunc cannot inject variadic %v", ft))
	}
	rt := reflect.TypeFor[R]()
	if ft.NumOut() != 1 || !ft.Out(0).AssignableTo(rt) {
		panic(fmt.Sprintf("dtree: InjectFunc wants a function returning %v, got %v", rt, ft))
	}

	params := make([]reflect.Type, ft.NumIn())
	for i := range params {
		params[i] = ft.In(i)
	}

	return func(ctx context.Context, c *Container) R {
		args := make([]reflect.Value, len(params))
		for i, t := range params {
			args[i] = argValue(resolve(ctx, c, t), t)
		}
		res := reflect.New(rt).Elem()
		res.Set(v.Call(args)[0])
		r, _ := res.Interface().(R)
		return r
	}
}

// argValue converts a resolved value to a call argument of type t.
// A stored nil interface becomes the zero value of t.
func argValue(v any, t reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(v)
}

// Params returns the dependency types fn declares, in order, excluding
// context.Context. Pair it with Container.Missing to check a container
// before dispatch.
func Params(fn any) []reflect.Type {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func {
		panic(fmt.Sprintf("dtree: Params wants a function, got %T", fn))
	}
	var out []reflect.Type
	for i := range ft.NumIn() {
		if t := ft.In(i); t != contextType {
			out = append(out, t)
		}
	}
	return out
}

// Missing returns the types in want that c cannot supply.
// Hosts can call it before dispatch to fail fast on misconfiguration.
func (c *Container) Missing(want ...reflect.Type) []reflect.Type {
	var out []reflect.Type
	for _, t := range want {
		if t == contextType {
			continue
		}
		if !c.Has(t) {
			out = append(out, t)
		}
	}
	return out
}
