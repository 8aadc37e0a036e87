package observability

// NoopMetrics is a MetricsRecorder that does nothing. It is the default for
// registries constructed without WithMetrics.
type NoopMetrics struct{}

// RecordLookup does nothing.
func (NoopMetrics) RecordLookup(string, bool) {}

// RecordEviction does nothing.
func (NoopMetrics) RecordEviction(string) {}

// RecordResurrection does nothing.
func (NoopMetrics) RecordResurrection(string) {}

// RecordEntries does nothing.
func (NoopMetrics) RecordEntries(string, int64) {}
