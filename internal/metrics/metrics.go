package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the controller's Prometheus collectors behind a private
// registry so the default registry never leaks unrelated collectors.
type Metrics struct {
	// registry owns every collector below.
	registry *prometheus.Registry

	// SequencesStarted counts started signal sequences by mode.
	SequencesStarted *prometheus.CounterVec
	// SignalsEmitted counts emitted pulses by kind (claxon, beep).
	SignalsEmitted *prometheus.CounterVec
	// TimingOverruns counts intervals whose processing time exceeded the
	// nominal length, forcing a zero-length wait.
	TimingOverruns prometheus.Counter
	// TriggerBounces counts button edges discarded by the hold check.
	TriggerBounces prometheus.Counter
}

// New creates the metrics set backed by a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SequencesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "regatta",
			Name:      "sequences_started_total",
			Help:      "Signal sequences started, labelled by mode.",
		}, []string{"mode"}),
		SignalsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "regatta",
			Name:      "signals_emitted_total",
			Help:      "Emitted signal pulses, labelled by kind.",
		}, []string{"kind"}),
		TimingOverruns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "regatta",
			Name:      "timing_overruns_total",
			Help:      "Intervals where emission time exceeded the nominal length.",
		}),
		TriggerBounces: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "regatta",
			Name:      "trigger_bounces_total",
			Help:      "Button edges discarded by the hold-duration check.",
		}),
	}

	m.registry.MustRegister(
		m.SequencesStarted,
		m.SignalsEmitted,
		m.TimingOverruns,
		m.TriggerBounces,
	)

	return m
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
