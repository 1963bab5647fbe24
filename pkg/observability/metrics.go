package observability

import (
	"context"

	"github.com/aretw0/inertia/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by node lifecycle events.
type Metrics struct {
	flips      *prometheus.CounterVec
	started    *prometheus.CounterVec
	completed  *prometheus.CounterVec
	superseded *prometheus.CounterVec
	offsets    *prometheus.HistogramVec
	active     *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		flips: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inertia_activation_flips_total",
				Help: "Total number of source selection flips",
			},
			[]string{"node"},
		),
		started: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inertia_transitions_started_total",
				Help: "Total number of pose transitions fitted",
			},
			[]string{"node"},
		),
		completed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inertia_transitions_completed_total",
				Help: "Total number of pose transitions that ran to the end of the blend",
			},
			[]string{"node"},
		),
		superseded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inertia_transitions_superseded_total",
				Help: "Total number of pose transitions replaced before completion",
			},
			[]string{"node"},
		),
		offsets: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inertia_transition_offset",
				Help:    "Largest initial offset per channel when a transition starts",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"node", "channel"},
		),
		active: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inertia_transitions_active",
				Help: "Number of pose transitions currently live",
			},
			[]string{"node"},
		),
	}

	for _, c := range []prometheus.Collector{m.flips, m.started, m.completed, m.superseded, m.offsets, m.active} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActivation: func(_ context.Context, e *domain.ActivationEvent) {
			m.flips.WithLabelValues(e.Node).Inc()
		},
		OnTransitionStart: func(_ context.Context, e *domain.TransitionEvent) {
			m.started.WithLabelValues(e.Node).Inc()
			m.active.WithLabelValues(e.Node).Inc()
			m.offsets.WithLabelValues(e.Node, "translation").Observe(e.Offsets.Translation)
			m.offsets.WithLabelValues(e.Node, "rotation").Observe(e.Offsets.Rotation)
			m.offsets.WithLabelValues(e.Node, "scale").Observe(e.Offsets.Scale)
		},
		OnTransitionEnd: func(_ context.Context, e *domain.TransitionEvent) {
			m.completed.WithLabelValues(e.Node).Inc()
			m.active.WithLabelValues(e.Node).Dec()
		},
		OnTransitionSuperseded: func(_ context.Context, e *domain.TransitionEvent) {
			m.superseded.WithLabelValues(e.Node).Inc()
			m.active.WithLabelValues(e.Node).Dec()
		},
	}
}
