package wmetrics

import "testing"

func TestCounterIsIdempotentPerName(t *testing.T) {
	r := NewRegistry()
	r.Counter("x").Inc()
	r.Counter("x").Add(4)
	if got := r.Counter("x").Value(); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestHistogramSnapshot(t *testing.T) {
	h := NewRegistry().Histogram("latency")
	h.Observe(1)
	h.Observe(3)
	count, sum, max := h.Snapshot()
	if count != 2 || sum != 4 || max != 3 {
		t.Fatalf("unexpected snapshot: count=%d sum=%v max=%v", count, sum, max)
	}
}
