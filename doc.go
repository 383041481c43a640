// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dtree provides continuation-passing dispatch trees
// (chains of responsibility shaped as trees) with type-directed
// dependency injection.
//
// A [Handler] receives an input and a continuation. It either consumes the
// input and terminates with an output, forwards the input to its
// continuation, or declines and hands the input back untouched. Handlers are
// composed into a tree once and dispatched any number of times, from any
// number of goroutines.
//
// # Outcome
//
// [Outcome] is the result of a dispatch:
//
//   - [Terminate]: the input was consumed, an output was produced
//   - [Decline]: no handler matched; carries the input back to the caller
//   - [Outcome.IsTerminated], [Outcome.IsDeclined]: Predicates
//   - [Outcome.Output], [Outcome.Input]: Accessors
//   - [MatchOutcome], [MapOutput]: Pattern matching and transformation
//
// # Handlers and Continuations
//
// [Cont] is "the rest of the dispatch". A handler forwards input by calling
// its continuation and rejects input by returning [Decline] without calling it.
//
//   - [FromFn]: Wrap a [HandlerFunc]; the universal constructor
//   - [Entry]: Identity handler, the conventional tree root
//   - [Terminal]: The continuation that declines with its input
//
// # Composition
//
//   - [Handler.Chain]: Sequential linking; the continuation threads through
//   - [Handler.Branch]: Independent alternative; the outer continuation is
//     reached only when the alternative declines
//   - [Chain], [Branches]: Variadic forms
//
// Chain is associative and Entry is its identity on both sides. Branch is
// left-biased: in a.Branch(b), b never sees input that a terminated on, and
// when both decline the original input comes back unchanged.
//
// # Execution
//
//   - [Handler.Execute]: Run with an explicit continuation
//   - [Handler.Dispatch]: Run with [Terminal]
//   - [Handler.TryDispatch]: Dispatch returning resolution failures as errors
//   - [Handler.DispatchAsync]: Dispatch on a new goroutine, returning a [Future]
//
// Within one dispatch, handlers run strictly left to right, depth first; no
// sibling is evaluated speculatively. The combinators never block, never lock
// and never observe the context; suspension and cancellation happen only in
// handler bodies.
//
// # Dependency Injection
//
// [Container] is a type-indexed store of shared values:
//
//   - [NewContainer], [Insert]: Populate (latest insertion wins)
//   - [Get]: Resolve a type; panics with [*MissingDependencyError] if absent
//   - [Lookup]: Non-panicking variant of Get
//   - [Container.Seal], [Container.Clone]: Freeze, or derive a fresh copy
//
// [DepFn] is a function whose parameters are bound to a container:
//
//   - [Inject0] … [Inject6]: Compile-time checked binding
//   - [InjectFunc]: Reflective binding, validated at construction
//   - [Params], [Container.Missing]: Up-front configuration checks
//
// A parameter of type [context.Context] receives the dispatch context.
// Resolution seals the container: values are inserted before dispatch and
// only read during it.
//
// # Endpoints and Conditions
//
//   - [Endpoint]: Terminal handler; always terminates
//   - [When], [Filter]: Forward on a predicate, decline otherwise
//   - [FilterMap], [Map]: Make a computed value available downstream
//   - [Inspect]: Side effect, then forward
//
// # Errors
//
// Declining is not an error. A dependency that the container cannot supply is
// a configuration bug and fails loudly: [Get] and every injected handler panic
// with [*MissingDependencyError], which matches [ErrMissingDependency]. It is
// never turned into a decline. Failures a handler body wants to report belong
// in its output type; the combinators pass them through untouched.
//
// # Example
//
//	tree := dtree.Branches(
//		dtree.Filter[string](dtree.Inject1(func(n int) bool { return n == 5 })).
//			Chain(dtree.Endpoint(dtree.Inject0(func() string { return "five" }))),
//		dtree.Filter[string](dtree.Inject1(func(n int) bool { return n > 2 })).
//			Chain(dtree.Endpoint(dtree.Inject0(func() string { return "gt" }))),
//	)
//
//	out := tree.Dispatch(ctx, dtree.NewContainer(5))
//	// out.Output() == "five", true
//
// # Related Packages
//
// Package observe wraps individual nodes with logging, tracing, metrics and
// timeouts. Package runner hosts a tree behind an error-returning API with
// dispatch IDs, lifecycle hooks, Prometheus metrics and bounded batch
// dispatch. Command dtree-gen regenerates the Inject arities.
package dtree
