package telemetry

import (
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/application"
	"github.com/DanielPopoola/avi-gateway/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LookupMetrics records invoker behaviour per protocol.
type LookupMetrics struct {
	Lookups   *prometheus.CounterVec
	Attempts  *prometheus.CounterVec
	Fallbacks *prometheus.CounterVec
	Failures  *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
}

// NewLookupMetrics registers the collectors on reg; pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewLookupMetrics(namespace string, reg prometheus.Registerer) *LookupMetrics {
	if namespace == "" {
		namespace = "avi_gateway"
	}
	factory := promauto.With(reg)

	return &LookupMetrics{
		Lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookups_total",
				Help:      "Address lookups by protocol and result (address, error, failed)",
			},
			[]string{"protocol", "result"},
		),
		Attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "endpoint_attempts_total",
				Help:      "Network calls issued against AVI endpoints",
			},
			[]string{"protocol"},
		),
		Fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fallbacks_total",
				Help:      "Lookups answered by the backup endpoint, by reason",
			},
			[]string{"protocol", "reason"},
		),
		Failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookup_failures_total",
				Help:      "Lookups that ended in an error, by category",
			},
			[]string{"protocol", "category"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "lookup_duration_seconds",
				Help:      "End-to-end lookup duration including fallback",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30},
			},
			[]string{"protocol"},
		),
	}
}

func (m *LookupMetrics) ObserveLookup(protocol domain.Protocol, outcome *domain.LookupOutcome, err error, duration time.Duration) {
	p := string(protocol)
	m.Duration.WithLabelValues(p).Observe(duration.Seconds())

	if err != nil {
		m.Lookups.WithLabelValues(p, domain.OutcomeFailed).Inc()
		m.Failures.WithLabelValues(p, string(application.CategorizeError(err))).Inc()
		m.Attempts.WithLabelValues(p).Add(float64(failedAttempts(err)))
		return
	}

	m.Lookups.WithLabelValues(p, outcome.Response.Kind()).Inc()
	m.Attempts.WithLabelValues(p).Add(float64(outcome.Attempts))
	if outcome.FellBack() {
		m.Fallbacks.WithLabelValues(p, string(outcome.FallbackReason)).Inc()
	}
}

// failedAttempts is the number of calls behind an error.
func failedAttempts(err error) int {
	if fbErr, ok := application.IsFallbackError(err); ok {
		if fbErr.Attempts > 0 {
			return fbErr.Attempts
		}
		return 2
	}
	if _, ok := application.IsConfigurationError(err); ok {
		return 0
	}
	return 1
}
