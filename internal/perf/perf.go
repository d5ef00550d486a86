// Package perf records in-memory OpenTelemetry spans for the --perf report.
package perf

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "lcov-summary"

var (
	providerMu sync.Mutex
	exporter   *spanExporter
	provider   *sdktrace.TracerProvider
)

func ensureProvider() *sdktrace.TracerProvider {
	providerMu.Lock()
	defer providerMu.Unlock()

	if provider == nil {
		exporter = newSpanExporter()
		provider = sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		)
	}
	return provider
}

// StartSpan begins a named span. The caller must End it; ended spans are
// captured by the in-memory exporter and readable through GetSpans.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := ensureProvider().Tracer(tracerName)
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// Reset discards all recorded spans.
func Reset() {
	providerMu.Lock()
	defer providerMu.Unlock()

	if exporter != nil {
		exporter.ResetSpans()
	}
}
