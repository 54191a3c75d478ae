package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BackendMetrics records calls made to the marketplace backend.
type BackendMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

// NewBackendMetrics registers the backend call metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewBackendMetrics(reg prometheus.Registerer) *BackendMetrics {
	if reg == nil {
		return &BackendMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "micromarket_backend_request_duration_seconds",
		Help:    "Duration of marketplace backend calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "micromarket_backend_requests_total",
		Help: "Marketplace backend calls by endpoint and status code.",
	}, []string{"endpoint", "status"})
	reg.MustRegister(duration, requests)
	return &BackendMetrics{
		duration: duration,
		requests: requests,
	}
}

// Observe records one call. A status of 0 means the request never got a
// response.
func (m *BackendMetrics) Observe(endpoint string, status int, elapsed time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	endpoint = normalizeLabel(endpoint)
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(endpoint, label).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
