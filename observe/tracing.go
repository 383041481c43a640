// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"code.hybscloud.com/dtree"
)

// instrumentationName is the scope name for spans and instruments.
const instrumentationName = "code.hybscloud.com/dtree/observe"

// TracingGlobal is Tracing with the global TracerProvider.
func TracingGlobal[In, Out any]() Middleware[In, Out] {
	return Tracing[In, Out](otel.Tracer(instrumentationName))
}

// Tracing returns middleware that runs each dispatch through a node inside
// a span named "dtree.node". The span carries the node name and the status
// of the outcome. A panic is recorded as a span error and re-raised.
func Tracing[In, Out any](tracer trace.Tracer) Middleware[In, Out] {
	return func(ctx context.Context, node string, in In, next dtree.Cont[In, Out]) dtree.Outcome[In, Out] {
		ctx, span := tracer.Start(ctx, "dtree.node",
			trace.WithAttributes(attribute.String("dtree.node", node)),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		done := false
		defer func() {
			if done {
				return
			}
			r := recover()
			if r == nil {
				return
			}
			span.RecordError(fmt.Errorf("panic: %v", r))
			span.SetStatus(codes.Error, "panic")
			panic(r)
		}()

		out := next(ctx, in)
		done = true

		span.SetAttributes(attribute.String("dtree.status", Status(out)))
		span.SetStatus(codes.Ok, "")
		return out
	}
}
