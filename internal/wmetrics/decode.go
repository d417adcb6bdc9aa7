package wmetrics

// Package-level handles for the counters a driver wires around
// wfcore.Decode. Kept as named vars (mirroring a metrics-by-name registry
// pattern) rather than free-floating literals so every caller shares the
// same series.
var (
	DecodeAttempts = DefaultRegistry.Counter("decode_attempts_total")
	DecodeFailures = DefaultRegistry.Counter("decode_failures_total")
	DecodeBytes    = DefaultRegistry.Histogram("decode_input_bytes")
	ActiveDecodes  = DefaultRegistry.Gauge("decode_active")
)
