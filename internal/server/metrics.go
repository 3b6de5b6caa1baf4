package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments of the summation API together
// with the scrape handler.
type Metrics struct {
	handler http.Handler

	requestsTotal  *prometheus.CounterVec
	activeRequests prometheus.Gauge
	sumDuration    prometheus.Histogram
	elementsSummed prometheus.Counter
}

// NewMetrics creates the instrument set on a fresh registry, so tests can
// create as many Metrics values as they need without duplicate registration.
//
// Returns:
//   - *Metrics: The ready-to-use metrics bundle.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "parsum_requests_total",
			Help: "Total number of HTTP requests by endpoint and status.",
		}, []string{"endpoint", "status"}),
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "parsum_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		sumDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "parsum_sum_duration_seconds",
			Help:    "Wall-clock duration of summation runs.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		elementsSummed: factory.NewCounter(prometheus.CounterOpts{
			Name: "parsum_elements_summed_total",
			Help: "Total number of array elements summed.",
		}),
	}

	// Expose Go runtime metrics alongside the application instruments.
	reg.MustRegister(collectors.NewGoCollector())

	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// CountRequest records a completed request for an endpoint with its HTTP
// status class.
func (m *Metrics) CountRequest(endpoint, status string) {
	m.requestsTotal.WithLabelValues(endpoint, status).Inc()
}

// ObserveSum records one summation run.
//
// Parameters:
//   - seconds: The run duration in seconds.
//   - elements: The number of elements summed.
func (m *Metrics) ObserveSum(seconds float64, elements int) {
	m.sumDuration.Observe(seconds)
	m.elementsSummed.Add(float64(elements))
}

// WritePrometheus serves the scrape endpoint.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
