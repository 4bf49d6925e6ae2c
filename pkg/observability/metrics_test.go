package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInitMetrics(t *testing.T) {
	provider, handler, err := InitMetrics(MetricsConfig{ServiceName: "nps-stub"})
	if err != nil {
		t.Fatalf("InitMetrics: %v", err)
	}
	if provider == nil {
		t.Fatal("expected a meter provider")
	}
	if handler == nil {
		t.Fatal("expected a metrics handler")
	}
}

func TestStubMetrics_ObserveOutcome(t *testing.T) {
	m := NewStubMetrics()

	m.ObserveOutcome("submit", "NO_CONTENT")
	m.ObserveOutcome("submit", "NO_CONTENT")
	m.ObserveOutcome("fetch", "PAGE_NOT_FOUND")

	got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("submit", "NO_CONTENT"))
	if got != 2 {
		t.Errorf("submit/NO_CONTENT = %v, want 2", got)
	}
	got = testutil.ToFloat64(m.RequestsTotal.WithLabelValues("fetch", "PAGE_NOT_FOUND"))
	if got != 1 {
		t.Errorf("fetch/PAGE_NOT_FOUND = %v, want 1", got)
	}
	got = testutil.ToFloat64(m.RequestsTotal.WithLabelValues("declare", "NO_CONTENT"))
	if got != 0 {
		t.Errorf("declare/NO_CONTENT = %v, want 0", got)
	}
}
