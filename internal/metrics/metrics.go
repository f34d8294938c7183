// Package metrics defines the Prometheus instruments for the escalation
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	EscalationsDispatched *prometheus.CounterVec
	EscalationsSuppressed *prometheus.CounterVec
	TierFailures          *prometheus.CounterVec
	UrgentItems           prometheus.Gauge
	AcknowledgedItems     prometheus.Gauge
	ClassificationSeconds prometheus.Histogram
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EscalationsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "escalations_dispatched_total",
			Help: "Total number of tier alerts fired, by tier.",
		}, []string{"tier"}),

		EscalationsSuppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "escalations_suppressed_total",
			Help: "Total number of tier alerts withheld, by tier and reason.",
		}, []string{"tier", "reason"}),

		TierFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "escalation_tier_failures_total",
			Help: "Total number of best-effort tier attempts that errored.",
		}, []string{"tier"}),

		UrgentItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "urgent_items",
			Help: "Urgent items found by the most recent classification pass.",
		}),

		AcknowledgedItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "acknowledged_items",
			Help: "Current size of the acknowledgment ledger.",
		}),

		ClassificationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "classification_seconds",
			Help:    "Latency of one urgency classification pass.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.EscalationsDispatched,
		m.EscalationsSuppressed,
		m.TierFailures,
		m.UrgentItems,
		m.AcknowledgedItems,
		m.ClassificationSeconds,
	)

	return m
}

// DispatchHooks returns the metric callback functions expected by
// dispatcher.Hooks. Centralises the prometheus observation calls so the
// dispatcher stays metrics-agnostic.
func (m *Metrics) DispatchHooks() (
	onDispatched func(tier string),
	onSuppressed func(tier, reason string),
	onFailed func(tier string),
) {
	onDispatched = func(tier string) {
		m.EscalationsDispatched.WithLabelValues(tier).Inc()
	}
	onSuppressed = func(tier, reason string) {
		m.EscalationsSuppressed.WithLabelValues(tier, reason).Inc()
	}
	onFailed = func(tier string) {
		m.TierFailures.WithLabelValues(tier).Inc()
	}
	return
}

// EngineHooks returns the gauge/histogram callbacks the engine reports
// classification and ledger changes through.
func (m *Metrics) EngineHooks() (
	onClassified func(urgentCount int, elapsed time.Duration),
	onLedgerChanged func(size int),
) {
	onClassified = func(urgentCount int, elapsed time.Duration) {
		m.UrgentItems.Set(float64(urgentCount))
		m.ClassificationSeconds.Observe(elapsed.Seconds())
	}
	onLedgerChanged = func(size int) {
		m.AcknowledgedItems.Set(float64(size))
	}
	return
}
