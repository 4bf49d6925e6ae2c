package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	handler := promhttp.Handler()

	return provider, handler, nil
}

// StubMetrics counts stub operations by outcome, so test-harness runs
// can be checked against the scenarios they were expected to exercise.
type StubMetrics struct {
	RequestsTotal *prometheus.CounterVec
}

// NewStubMetrics registers the stub counters on the default registry.
func NewStubMetrics() *StubMetrics {
	return &StubMetrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nps_stub_requests_total",
			Help: "Stub operations processed, labelled by operation and outcome code.",
		}, []string{"operation", "outcome"}),
	}
}

// ObserveOutcome increments the counter for one handled operation.
func (m *StubMetrics) ObserveOutcome(operation, outcome string) {
	m.RequestsTotal.WithLabelValues(operation, outcome).Inc()
}
