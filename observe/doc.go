// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package observe instruments individual nodes of a dtree handler tree.
//
// A [Middleware] sits around one node. It sees the node's input and the
// outcome the node produced, including the part produced by whatever the node forwarded to.
// Middleware never alters that outcome; wrapping a node with [Wrap] leaves
// every dispatch result unchanged.
//
//	type mw = observe.Middleware[*dtree.Container, string]
//	var logging mw = observe.Logging[*dtree.Container, string](log)
//
//	root := dtree.Branches(
//	    observe.Wrap("smile", smiles(), logging, observe.TracingGlobal[*dtree.Container, string]()),
//	    observe.Wrap("sqrt", sqrt(), logging, observe.Metrics[*dtree.Container, string](meter)),
//	)
//
// # Built-in Middleware
//
//   - [Logging] logs node name, outcome and elapsed time through zerolog
//   - [Tracing] opens an OpenTelemetry span per node
//   - [Metrics] records a duration histogram and a dispatch counter per node
//   - [Timeout] attaches a deadline to the context the node runs with
//
// Middleware in a [Wrap] call are applied right-to-left: the first one is
// the outermost.
package observe
