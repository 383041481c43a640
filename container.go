// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree

import (
	"cmp"
	"context"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
)

// Container is a type-indexed store of dependencies: at most one value per
// type, the latest insertion winning.
//
// A container is populated by its owner before dispatch and read by handlers
// during dispatch. The first read through Get, Lookup or a dependency-injected
// handler seals it; inserting into a sealed container panics. Values are
// shared, not copied: insert a pointer to share mutable state between handler
// bodies.
//
// Insert and sealing are serialized, so an Insert racing the first read either
// lands before the seal or panics. Once sealed, reads take no lock.
//
// The zero value is an empty, unsealed container. A Container must not be
// copied after first use.
type Container struct {
	parent *Container
	mu     sync.RWMutex
	values map[reflect.Type]any
	sealed atomic.Bool
}

// NewContainer returns a container holding values, each keyed by its dynamic
// type. Later values replace earlier values of the same type.
// A nil value panics: it has no type to key by.
func NewContainer(values ...any) *Container {
	c := &Container{values: make(map[reflect.Type]any, len(values))}
	for _, v := range values {
		if v == nil {
			panic("dtree: nil value passed to NewContainer")
		}
		c.values[reflect.TypeOf(v)] = v
	}
	return c
}

// Insert stores v under the static type T, returning the value it replaced.
// T may be an interface type; such values are found only by Get with the same T.
// Panics if c is sealed.
func Insert[T any](c *Container, v T) (prev T, replaced bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sealed.Load() {
		panic("dtree: insert into sealed container")
	}
	if c.values == nil {
		c.values = make(map[reflect.Type]any)
	}
	t := reflect.TypeFor[T]()
	old, ok := c.values[t]
	c.values[t] = v
	if !ok {
		return prev, false
	}
	prev, _ = old.(T)
	return prev, true
}

// Get returns the value stored under T and seals c.
// Panics with *MissingDependencyError if there is none.
func Get[T any](c *Container) T {
	t := reflect.TypeFor[T]()
	c.seal()
	v, ok := c.lookup(t)
	if !ok {
		missingDependency(c, t)
	}
	out, _ := v.(T)
	return out
}

// Lookup returns the value stored under T and true, or zero and false.
// Like Get, it seals c.
func Lookup[T any](c *Container) (T, bool) {
	var out T
	c.seal()
	v, ok := c.lookup(reflect.TypeFor[T]())
	if !ok {
		return out, false
	}
	out, _ = v.(T)
	return out, true
}

// Has reports whether a value of type t is stored. It does not seal c.
func (c *Container) Has(t reflect.Type) bool {
	_, ok := c.lookup(t)
	return ok
}

// Types returns the stored types sorted by name.
func (c *Container) Types() []reflect.Type {
	seen := make(map[reflect.Type]struct{})
	var types []reflect.Type
	for n := c; n != nil; n = n.parent {
		n.read(func(values map[reflect.Type]any) {
			for t := range values {
				if _, dup := seen[t]; dup {
					continue
				}
				seen[t] = struct{}{}
				types = append(types, t)
			}
		})
	}
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return cmp.Compare(a.String(), b.String())
	})
	return types
}

// Len returns the number of stored types.
func (c *Container) Len() int {
	return len(c.Types())
}

// Seal makes c read-only. Sealing is idempotent.
func (c *Container) Seal() {
	c.seal()
}

// Sealed reports whether c is read-only.
func (c *Container) Sealed() bool {
	return c.sealed.Load()
}

// Clone returns an unsealed container holding the same values as c.
// Hosts use it to derive per-dispatch containers from a shared base.
func (c *Container) Clone() *Container {
	out := &Container{values: make(map[reflect.Type]any)}
	var chain []*Container
	for n := c; n != nil; n = n.parent {
		chain = append(chain, n)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		chain[i].read(func(values map[reflect.Type]any) {
			for t, v := range values {
				out.values[t] = v
			}
		})
	}
	return out
}

func (c *Container) lookup(t reflect.Type) (v any, ok bool) {
	for n := c; n != nil && !ok; n = n.parent {
		n.read(func(values map[reflect.Type]any) {
			v, ok = values[t]
		})
	}
	return v, ok
}

// read runs f on c's own values. Sealed values are immutable and read
// without locking.
func (c *Container) read(f func(values map[reflect.Type]any)) {
	if c.sealed.Load() {
		f(c.values)
		return
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	f(c.values)
}

// with layers a sealed child holding v over c. c is sealed, not modified.
func (c *Container) with(t reflect.Type, v any) *Container {
	c.seal()
	child := &Container{parent: c, values: map[reflect.Type]any{t: v}}
	child.sealed.Store(true)
	return child
}

// seal waits for in-flight inserts, then marks c read-only.
func (c *Container) seal() {
	if c.sealed.Load() {
		return
	}
	c.mu.Lock()
	c.sealed.Store(true)
	c.mu.Unlock()
}

var contextType = reflect.TypeFor[context.Context]()

// resolve looks up t for a dependency-injected call. A context.Context
// parameter resolves to the dispatch context.
func resolve(ctx context.Context, c *Container, t reflect.Type) any {
	if t == contextType {
		return ctx
	}
	c.seal()
	v, ok := c.lookup(t)
	if !ok {
		missingDependency(c, t)
	}
	return v
}

// resolveAs is resolve with a static result type.
func resolveAs[T any](ctx context.Context, c *Container) T {
	v, _ := resolve(ctx, c, reflect.TypeFor[T]()).(T)
	return v
}
