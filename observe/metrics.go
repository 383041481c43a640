// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"code.hybscloud.com/dtree"
)

// MetricsGlobal is Metrics with the global MeterProvider.
func MetricsGlobal[In, Out any]() Middleware[In, Out] {
	return Metrics[In, Out](otel.Meter(instrumentationName))
}

// Metrics returns middleware that records per-node instruments:
//
//   - dtree.node.duration (Float64Histogram): seconds spent in the node and
//     everything it forwarded to, with attributes node and status
//   - dtree.node.dispatches (Int64Counter): dispatches through the node,
//     with attributes node and status
//
// Instruments are created once. The OTel API returns working noop
// instruments alongside an error, so creation errors are dropped.
func Metrics[In, Out any](meter metric.Meter) Middleware[In, Out] {
	duration, _ := meter.Float64Histogram(
		"dtree.node.duration",
		metric.WithDescription("Duration of dispatches through a tree node"),
		metric.WithUnit("s"),
	)
	dispatches, _ := meter.Int64Counter(
		"dtree.node.dispatches",
		metric.WithDescription("Dispatches through a tree node"),
		metric.WithUnit("{dispatch}"),
	)

	return func(ctx context.Context, node string, in In, next dtree.Cont[In, Out]) dtree.Outcome[In, Out] {
		start := time.Now()
		out := next(ctx, in)
		elapsed := time.Since(start).Seconds()

		attrs := metric.WithAttributes(
			attribute.String("node", node),
			attribute.String("status", Status(out)),
		)
		duration.Record(ctx, elapsed, attrs)
		dispatches.Add(ctx, 1, attrs)
		return out
	}
}
