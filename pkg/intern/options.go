package intern

import (
	"log/slog"

	"github.com/randalmurphal/intern/pkg/intern/observability"
)

// registryConfig holds construction-time configuration for a Registry.
type registryConfig struct {
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	capacity int
}

// defaultRegistryConfig returns the default registry configuration:
// no logging, no metrics, no pre-sized index.
func defaultRegistryConfig() registryConfig {
	return registryConfig{
		metrics: observability.NoopMetrics{},
	}
}

// Option configures a Registry at construction time.
type Option func(*registryConfig)

// WithLogger attaches a structured logger. Interning activity is logged at
// debug level. Default: nil (logging disabled).
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	r := intern.NewRegistry(intern.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(c *registryConfig) {
		c.logger = logger
	}
}

// WithMetrics attaches a metrics recorder. Default: observability.NoopMetrics.
//
// Example:
//
//	r := intern.NewRegistry(intern.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *registryConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithCapacity pre-sizes the index for an expected number of entries.
// Default: 0 (grow on demand).
func WithCapacity(n int) Option {
	return func(c *registryConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}
