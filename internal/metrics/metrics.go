// Package metrics records per-attempt counters and request latency for the
// login and registration pipelines.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess           = "success"
	OutcomeValidationError   = "validation_error"
	OutcomeServerError       = "server_error"
	OutcomeUnclassifiedError = "unclassified_error"
)

const namespace = "aniresfr"

var requestDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30}

// AuthMetrics tracks attempts and remote call latency. A nil *AuthMetrics is
// valid and records nothing.
type AuthMetrics struct {
	Attempts *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *AuthMetrics {
	factory := promauto.With(reg)
	return &AuthMetrics{
		Attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_attempts_total",
				Help:      "Login and registration attempts by terminal outcome",
			},
			[]string{"operation", "outcome"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "auth_request_duration_seconds",
				Help:      "Latency of calls to the remote auth service",
				Buckets:   requestDurationBuckets,
			},
			[]string{"operation"},
		),
	}
}

// IncAttempt counts one finished attempt.
func (m *AuthMetrics) IncAttempt(operation, outcome string) {
	if m == nil {
		return
	}
	m.Attempts.WithLabelValues(operation, outcome).Inc()
}

// ObserveRequest records how long the remote call took.
func (m *AuthMetrics) ObserveRequest(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.Duration.WithLabelValues(operation).Observe(d.Seconds())
}
