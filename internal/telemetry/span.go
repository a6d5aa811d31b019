package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Span is a trace span that also tracks the number of operations in flight.
type Span struct {
	ctx      context.Context
	span     trace.Span
	recorder *Recorder
}

// StartSpan starts a new span and records the start of an operation.
func (r *Recorder) StartSpan(
	ctx context.Context,
	name string,
	attrs ...Attr,
) (context.Context, *Span) {
	ctx, span := r.tracer.Start(
		ctx,
		name,
		trace.WithAttributes(asAttrKeyValues(attrs)...),
	)

	r.operationCount(ctx, 1)
	r.operationsInFlightCount(ctx, 1)

	return ctx, &Span{ctx, span, r}
}

// SetAttributes adds attributes to the span.
func (s *Span) SetAttributes(attrs ...Attr) {
	s.span.SetAttributes(asAttrKeyValues(attrs)...)
}

// End completes the span.
func (s *Span) End() {
	s.recorder.operationsInFlightCount(s.ctx, -1)
	s.span.End()
}
