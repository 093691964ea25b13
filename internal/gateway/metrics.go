package gateway

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StatusNetworkError labels requests that received no response
const StatusNetworkError = "network_error"

// Metrics records one sample per gateway call. A nil *Metrics records
// nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the client metrics on registry
func NewMetrics(registry prometheus.Registerer) *Metrics {
	requests := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "xendit_client_requests_total",
			Help: "The total number of Xendit API calls by operation and HTTP status",
		},
		[]string{"operation", "status"},
	)

	duration := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xendit_client_request_duration_seconds",
			Help:    "Xendit API call latency",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
		},
		[]string{"operation"},
	)

	return &Metrics{requests: requests, duration: duration}
}

func (m *Metrics) observe(operation string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := StatusNetworkError
	if status != 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(operation, label).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
