package observability

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records interning activity.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
//
// Methods take no context: interning operations are synchronous in-memory
// updates with nothing to propagate.
type MetricsRecorder interface {
	// RecordLookup records one Insert or Find against a registry and
	// whether it was served by an existing index entry.
	RecordLookup(registryID string, hit bool)

	// RecordEviction records the removal of an index entry by the teardown
	// of its last handle.
	RecordEviction(registryID string)

	// RecordResurrection records a canceled teardown: a lookup revived the
	// count between the final release and the registry lock.
	RecordResurrection(registryID string)

	// RecordEntries adjusts the live-entry count for a registry.
	RecordEntries(registryID string, delta int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	hits          metric.Int64Counter
	misses        metric.Int64Counter
	evictions     metric.Int64Counter
	resurrections metric.Int64Counter
	entries       metric.Int64UpDownCounter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("intern")

	hits, err := meter.Int64Counter("intern.registry.hits",
		metric.WithDescription("Lookups served by an existing index entry"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter("intern.registry.misses",
		metric.WithDescription("Lookups that interned a new value or found nothing"),
	)
	if err != nil {
		return nil, err
	}

	evictions, err := meter.Int64Counter("intern.registry.evictions",
		metric.WithDescription("Index entries removed by last-handle teardown"),
	)
	if err != nil {
		return nil, err
	}

	resurrections, err := meter.Int64Counter("intern.registry.resurrections",
		metric.WithDescription("Teardowns canceled by a concurrent lookup"),
	)
	if err != nil {
		return nil, err
	}

	entries, err := meter.Int64UpDownCounter("intern.registry.entries",
		metric.WithDescription("Live index entries"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		hits:          hits,
		misses:        misses,
		evictions:     evictions,
		resurrections: resurrections,
		entries:       entries,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		return NoopMetrics{}
	}
	return m
}

func registryAttrs(registryID string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("registry.id", registryID))
}

// RecordLookup records one lookup against a registry.
func (m *otelMetrics) RecordLookup(registryID string, hit bool) {
	if hit {
		m.hits.Add(context.Background(), 1, registryAttrs(registryID))
		return
	}
	m.misses.Add(context.Background(), 1, registryAttrs(registryID))
}

// RecordEviction records one removed index entry.
func (m *otelMetrics) RecordEviction(registryID string) {
	m.evictions.Add(context.Background(), 1, registryAttrs(registryID))
}

// RecordResurrection records one canceled teardown.
func (m *otelMetrics) RecordResurrection(registryID string) {
	m.resurrections.Add(context.Background(), 1, registryAttrs(registryID))
}

// RecordEntries adjusts the live-entry count.
func (m *otelMetrics) RecordEntries(registryID string, delta int64) {
	m.entries.Add(context.Background(), delta, registryAttrs(registryID))
}
