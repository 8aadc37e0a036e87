// Package observability provides opt-in observability for intern
// registries: structured logging via slog, metrics and tracing via
// OpenTelemetry.
//
// Everything here degrades to a no-op when disabled: a nil *slog.Logger
// disables logging, NoopMetrics disables metrics, and spans are no-ops
// unless a global OTel tracer provider is configured.
package observability

import "log/slog"

// LogInterned logs a newly interned value. entries is the index size after
// the insert.
func LogInterned(logger *slog.Logger, registryID string, valueLen, entries int) {
	if logger == nil {
		return
	}
	logger.Debug("value interned",
		slog.String("registry_id", registryID),
		slog.Int("value_len", valueLen),
		slog.Int("entries", entries),
	)
}

// LogDeduplicated logs an insert served by an existing index entry.
func LogDeduplicated(logger *slog.Logger, registryID string, valueLen int) {
	if logger == nil {
		return
	}
	logger.Debug("value deduplicated",
		slog.String("registry_id", registryID),
		slog.Int("value_len", valueLen),
	)
}

// LogEvicted logs the removal of an index entry after its last handle was
// released. entries is the index size after the removal.
func LogEvicted(logger *slog.Logger, registryID string, valueLen, entries int) {
	if logger == nil {
		return
	}
	logger.Debug("value evicted",
		slog.String("registry_id", registryID),
		slog.Int("value_len", valueLen),
		slog.Int("entries", entries),
	)
}

// LogRevived logs a canceled teardown: a lookup handed out a fresh handle
// between the final release and the registry lock.
func LogRevived(logger *slog.Logger, registryID string, valueLen int) {
	if logger == nil {
		return
	}
	logger.Debug("teardown canceled by concurrent lookup",
		slog.String("registry_id", registryID),
		slog.Int("value_len", valueLen),
	)
}
