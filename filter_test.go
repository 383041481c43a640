// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree_test

import (
	"context"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/dtree"
)

type request string

type webHandler = *dtree.Handler[*dtree.Container, string]

func smiles() webHandler {
	return dtree.Filter[string](dtree.Inject1(func(r request) bool { return strings.HasPrefix(string(r), "/smile") })).
		Chain(dtree.Endpoint(dtree.Inject0(func() string { return "🙃" })))
}

func sqrt() webHandler {
	parse := dtree.FilterMap[float64, string](func(_ context.Context, c *dtree.Container) (float64, bool) {
		r := string(dtree.Get[request](c))
		arg, ok := strings.CutPrefix(r, "/sqrt ")
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseFloat(arg, 64)
		return n, err == nil
	})
	return parse.Chain(dtree.Endpoint(dtree.Inject1(func(n float64) string {
		return strconv.FormatFloat(math.Sqrt(n), 'f', -1, 64)
	})))
}

func notFound() webHandler {
	return say("404 Not Found")
}

func TestWebRouting(t *testing.T) {
	server := dtree.Branches(smiles(), sqrt(), notFound())

	cases := map[request]string{
		"/smile":    "🙃",
		"/sqrt 16":  "4",
		"/sqrt abc": "404 Not Found",
		"/lol":      "404 Not Found",
	}
	for in, want := range cases {
		out := server.Dispatch(context.Background(), dtree.NewContainer(in))
		got, ok := out.Output()
		require.True(t, ok, "request %q", in)
		assert.Equal(t, want, got, "request %q", in)
	}
}

func TestWhenOnPlainInput(t *testing.T) {
	even := dtree.When[int, string](func(_ context.Context, n int) bool { return n%2 == 0 }).
		Chain(terminal("even"))

	assert.Equal(t, dtree.Terminate[int]("even"), even.Dispatch(context.Background(), 4))
	assert.Equal(t, dtree.Decline[int, string](3), even.Dispatch(context.Background(), 3))
}

func TestFilterMapLayersValue(t *testing.T) {
	c := dtree.NewContainer(request("/sqrt 9"))
	var seen *dtree.Container
	h := dtree.FilterMap[float64, string](func(_ context.Context, _ *dtree.Container) (float64, bool) {
		return 9, true
	}).Chain(dtree.Endpoint(func(_ context.Context, child *dtree.Container) string {
		seen = child
		return "ok"
	}))

	out := h.Dispatch(context.Background(), c)
	require.True(t, out.IsTerminated())

	require.NotNil(t, seen)
	assert.NotSame(t, c, seen)
	assert.Equal(t, 9.0, dtree.Get[float64](seen))
	assert.Equal(t, request("/sqrt 9"), dtree.Get[request](seen))

	_, ok := dtree.Lookup[float64](c)
	assert.False(t, ok, "original container must not be modified")
}

func TestFilterMapDeclineReturnsOriginal(t *testing.T) {
	c := dtree.NewContainer(1)
	h := dtree.Map[string, string](dtree.Inject1(func(n int) string { return strconv.Itoa(n) })).
		Chain(dtree.Filter[string](dtree.Inject1(func(s string) bool { return s == "never" })))

	out := h.Dispatch(context.Background(), c)
	left, ok := out.Input()
	require.True(t, ok)
	assert.Same(t, c, left)
}

func TestFilterMapForwardedPastChild(t *testing.T) {
	// A continuation that declines with something other than the child keeps it.
	c := dtree.NewContainer(1)
	other := dtree.NewContainer(2)
	h := dtree.Map[string, string](dtree.Inject0(func() string { return "v" }))

	out := h.Execute(context.Background(), c, func(_ context.Context, _ *dtree.Container) dtree.Outcome[*dtree.Container, string] {
		return dtree.Decline[*dtree.Container, string](other)
	})
	left, _ := out.Input()
	assert.Same(t, other, left)
}

func TestMapShadowsParentValue(t *testing.T) {
	h := dtree.Map[int, int](dtree.Inject1(func(n int) int { return n + 1 })).
		Chain(dtree.Map[int, int](dtree.Inject1(func(n int) int { return n * 10 }))).
		Chain(dtree.Endpoint(dtree.Inject1(func(n int) int { return n })))

	out := h.Dispatch(context.Background(), dtree.NewContainer(4))
	got, _ := out.Output()
	assert.Equal(t, 50, got)
}

func TestInspectForwardsUnchanged(t *testing.T) {
	c := dtree.NewContainer(request("/x"))
	var visited []request
	h := dtree.Inspect[string](func(_ context.Context, c *dtree.Container) {
		visited = append(visited, dtree.Get[request](c))
	})

	out := h.Dispatch(context.Background(), c)
	left, ok := out.Input()
	require.True(t, ok)
	assert.Same(t, c, left)
	assert.Equal(t, []request{"/x"}, visited)
}
