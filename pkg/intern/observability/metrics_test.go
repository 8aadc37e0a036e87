package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest creates a test meter provider and returns a manual reader
// for collecting what was recorded.
func setupMetricsTest(t *testing.T) *sdkmetric.ManualReader {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	original := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	t.Cleanup(func() {
		otel.SetMeterProvider(original)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("error shutting down meter provider: %v", err)
		}
	})
	return reader
}

// collectMetrics collects all metrics from the reader.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)
	return &rm
}

// findMetric finds a metric by name in the collected data.
func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumDataPoints totals the data points of an int64 sum metric.
func sumDataPoints(t *testing.T, m *metricdata.Metrics) int64 {
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s has unexpected data type %T", m.Name, m.Data)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestNewMetricsRecorder(t *testing.T) {
	setupMetricsTest(t)

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)

	// Should not be a noop (since we set up a real provider).
	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "expected real metrics recorder, got noop")
}

func TestRecordLookup(t *testing.T) {
	reader := setupMetricsTest(t)

	m, err := newOtelMetrics()
	require.NoError(t, err)

	m.RecordLookup("reg-1", true)
	m.RecordLookup("reg-1", true)
	m.RecordLookup("reg-1", false)

	rm := collectMetrics(t, reader)

	hits := findMetric(rm, "intern.registry.hits")
	require.NotNil(t, hits)
	assert.Equal(t, int64(2), sumDataPoints(t, hits))

	misses := findMetric(rm, "intern.registry.misses")
	require.NotNil(t, misses)
	assert.Equal(t, int64(1), sumDataPoints(t, misses))
}

func TestRecordEviction(t *testing.T) {
	reader := setupMetricsTest(t)

	m, err := newOtelMetrics()
	require.NoError(t, err)

	m.RecordEviction("reg-1")

	rm := collectMetrics(t, reader)
	evictions := findMetric(rm, "intern.registry.evictions")
	require.NotNil(t, evictions)
	assert.Equal(t, int64(1), sumDataPoints(t, evictions))
}

func TestRecordResurrection(t *testing.T) {
	reader := setupMetricsTest(t)

	m, err := newOtelMetrics()
	require.NoError(t, err)

	m.RecordResurrection("reg-1")

	rm := collectMetrics(t, reader)
	resurrections := findMetric(rm, "intern.registry.resurrections")
	require.NotNil(t, resurrections)
	assert.Equal(t, int64(1), sumDataPoints(t, resurrections))
}

func TestRecordEntries(t *testing.T) {
	reader := setupMetricsTest(t)

	m, err := newOtelMetrics()
	require.NoError(t, err)

	m.RecordEntries("reg-1", 1)
	m.RecordEntries("reg-1", 1)
	m.RecordEntries("reg-1", -1)

	rm := collectMetrics(t, reader)
	entries := findMetric(rm, "intern.registry.entries")
	require.NotNil(t, entries)
	assert.Equal(t, int64(1), sumDataPoints(t, entries))
}

func TestRecordsCarryRegistryAttribute(t *testing.T) {
	reader := setupMetricsTest(t)

	m, err := newOtelMetrics()
	require.NoError(t, err)

	m.RecordLookup("reg-a", true)
	m.RecordLookup("reg-b", true)

	rm := collectMetrics(t, reader)
	hits := findMetric(rm, "intern.registry.hits")
	require.NotNil(t, hits)

	sum, ok := hits.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	// One data point per registry id.
	assert.Len(t, sum.DataPoints, 2)
}
