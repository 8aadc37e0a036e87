package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the intern tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("intern")

// StartPreloadSpan starts a span covering a bulk preload into a registry.
// Individual Insert and Find calls are far too cheap to trace; preloads are
// the one batch operation worth a span.
//
// The span uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func StartPreloadSpan(ctx context.Context, registryID string, count int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "intern.preload",
		trace.WithAttributes(
			attribute.String("registry.id", registryID),
			attribute.Int("preload.count", count),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}
