// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/dtree"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randHandler returns a random handler over int together with a label for
// failure messages. The handler may terminate, forward or refuse depending on
// its input, and counts its invocations in *calls.
func randHandler(rng *rand.Rand, calls *int) (*intHandler, string) {
	m := rng.IntN(4) + 2
	r := rng.IntN(m)
	name := fmt.Sprintf("h%d", rng.IntN(1000))
	match := func(in int) bool { return ((in%m)+m)%m == r }

	switch kind := rng.IntN(4); kind {
	case 0:
		return dtree.FromFn(func(ctx context.Context, in int, k dtree.Cont[int, string]) dtree.Outcome[int, string] {
			*calls++
			return k(ctx, in)
		}), "forward"
	case 1:
		return dtree.FromFn(func(ctx context.Context, in int, k dtree.Cont[int, string]) dtree.Outcome[int, string] {
			*calls++
			if match(in) {
				return dtree.Terminate[int](name)
			}
			return k(ctx, in)
		}), fmt.Sprintf("%s: terminate if x%%%d==%d else forward", name, m, r)
	case 2:
		return dtree.FromFn(func(_ context.Context, in int, _ dtree.Cont[int, string]) dtree.Outcome[int, string] {
			*calls++
			if match(in) {
				return dtree.Terminate[int](name)
			}
			return dtree.Decline[int, string](in)
		}), fmt.Sprintf("%s: terminate if x%%%d==%d else refuse", name, m, r)
	default:
		return dtree.FromFn(func(ctx context.Context, in int, k dtree.Cont[int, string]) dtree.Outcome[int, string] {
			*calls++
			if match(in) {
				return dtree.Decline[int, string](in)
			}
			return k(ctx, in)
		}), fmt.Sprintf("refuse if x%%%d==%d else forward", m, r)
	}
}

// outerCont terminates with a marker so forwarding past the tree is visible.
func outerCont(_ context.Context, in int) dtree.Outcome[int, string] {
	if in%2 == 0 {
		return dtree.Terminate[int]("outer")
	}
	return dtree.Decline[int, string](in)
}

// TestPropertyChainLeftIdentity: Entry().Chain(a) ≡ a
func TestPropertyChainLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	ctx := context.Background()
	var calls int
	for range propertyN {
		a, label := randHandler(rng, &calls)
		x := randInt(rng)
		left := dtree.Entry[int, string]().Chain(a).Execute(ctx, x, outerCont)
		right := a.Execute(ctx, x, outerCont)
		if left != right {
			t.Fatalf("left identity: %v != %v (a=%s, x=%d)", left, right, label, x)
		}
	}
}

// TestPropertyChainRightIdentity: a.Chain(Entry()) ≡ a
func TestPropertyChainRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	ctx := context.Background()
	var calls int
	for range propertyN {
		a, label := randHandler(rng, &calls)
		x := randInt(rng)
		left := a.Chain(dtree.Entry[int, string]()).Execute(ctx, x, outerCont)
		right := a.Execute(ctx, x, outerCont)
		if left != right {
			t.Fatalf("right identity: %v != %v (a=%s, x=%d)", left, right, label, x)
		}
	}
}

// TestPropertyChainAssociativity: a.Chain(b).Chain(c) ≡ a.Chain(b.Chain(c))
func TestPropertyChainAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 2))
	ctx := context.Background()
	var calls int
	for range propertyN {
		a, la := randHandler(rng, &calls)
		b, lb := randHandler(rng, &calls)
		c, lc := randHandler(rng, &calls)
		x := randInt(rng)
		left := a.Chain(b).Chain(c).Execute(ctx, x, outerCont)
		right := a.Chain(b.Chain(c)).Execute(ctx, x, outerCont)
		if left != right {
			t.Fatalf("associativity: %v != %v (a=%s, b=%s, c=%s, x=%d)", left, right, la, lb, lc, x)
		}
		if d1, d2 := a.Chain(b).Chain(c).Dispatch(ctx, x), a.Chain(b.Chain(c)).Dispatch(ctx, x); d1 != d2 {
			t.Fatalf("associativity under Dispatch: %v != %v (x=%d)", d1, d2, x)
		}
	}
}

// TestPropertyBranchLeftBias: if a terminates on x, a.Branch(b) never runs b.
func TestPropertyBranchLeftBias(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 3))
	ctx := context.Background()
	for range propertyN {
		var aCalls, bCalls int
		a, label := randHandler(rng, &aCalls)
		b, _ := randHandler(rng, &bCalls)
		x := randInt(rng)

		alone := a.Dispatch(ctx, x)
		if !alone.IsTerminated() {
			continue
		}
		got := a.Branch(b).Execute(ctx, x, outerCont)
		if got != alone {
			t.Fatalf("left bias: %v != %v (a=%s, x=%d)", got, alone, label, x)
		}
		if bCalls != 0 {
			t.Fatalf("left bias: b invoked %d times (a=%s, x=%d)", bCalls, label, x)
		}
	}
}

// TestPropertyBranchIsolation: when nothing terminates, the original input comes back.
func TestPropertyBranchIsolation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 4))
	ctx := context.Background()
	var calls int
	for range propertyN {
		a, la := randHandler(rng, &calls)
		b, lb := randHandler(rng, &calls)
		x := randInt(rng)

		out := a.Branch(b).Dispatch(ctx, x)
		if out.IsTerminated() {
			continue
		}
		left, _ := out.Input()
		if left != x {
			t.Fatalf("isolation: leftover %d != %d (a=%s, b=%s)", left, x, la, lb)
		}
	}
}

// TestPropertyEndpointTotality: an endpoint with its dependencies present always terminates.
func TestPropertyEndpointTotality(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 5))
	ctx := context.Background()
	e := dtree.Endpoint(dtree.Inject2(func(n int, s string) string { return fmt.Sprint(s, n) }))
	for range propertyN {
		n := randInt(rng)
		c := dtree.NewContainer(n, fmt.Sprint(rng.IntN(10)))
		if out := e.Dispatch(ctx, c); !out.IsTerminated() {
			t.Fatalf("endpoint declined with %v", out)
		}
	}
}

// TestPropertyContainerDeterminism: Insert then Get returns the inserted value.
func TestPropertyContainerDeterminism(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 6))
	for range propertyN {
		var c dtree.Container
		n := randInt(rng)
		s := fmt.Sprint(randInt(rng))
		p := &n
		dtree.Insert(&c, n)
		dtree.Insert(&c, s)
		dtree.Insert(&c, p)
		if got := dtree.Get[int](&c); got != n {
			t.Fatalf("int: %d != %d", got, n)
		}
		if got := dtree.Get[string](&c); got != s {
			t.Fatalf("string: %q != %q", got, s)
		}
		if got := dtree.Get[*int](&c); got != p {
			t.Fatalf("*int: %p != %p", got, p)
		}
	}
}
