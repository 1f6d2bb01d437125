package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the case pipeline.
type Metrics struct {
	// Flow latency by flow name
	FlowLatency *prometheus.HistogramVec

	// Flow outcomes by flow and error code ("ok" on success)
	FlowOutcome *prometheus.CounterVec

	// Side effects triggered by status transitions
	SideEffects *prometheus.CounterVec

	// Reference data cache lookups
	ReferenceCache *prometheus.CounterVec

	// Records persisted from the event stream
	Persisted *prometheus.CounterVec
}

// New registers the case metrics on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		FlowLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "caseregistry_flow_duration_seconds",
			Help:    "Duration of case flows including collaborator calls",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"flow"}), // flow: "create", "update", "search", "exists"

		FlowOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "caseregistry_flow_outcomes_total",
			Help: "Total case flow outcomes by flow and code",
		}, []string{"flow", "code"}),

		SideEffects: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "caseregistry_side_effects_total",
			Help: "Side effects triggered by workflow status",
		}, []string{"kind"}),

		ReferenceCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "caseregistry_reference_cache_total",
			Help: "Reference data cache lookups by result",
		}, []string{"result"}),

		Persisted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "caseregistry_persisted_records_total",
			Help: "Case records written by the persister by topic",
		}, []string{"topic"}),
	}
}

func (m *Metrics) ObserveFlow(flow string, d time.Duration) {
	if m != nil {
		m.FlowLatency.WithLabelValues(flow).Observe(d.Seconds())
	}
}

func (m *Metrics) IncrementOutcome(flow, code string) {
	if m != nil {
		m.FlowOutcome.WithLabelValues(flow, code).Inc()
	}
}

func (m *Metrics) IncrementSideEffect(kind string) {
	if m != nil {
		m.SideEffects.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) IncrementReferenceCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.ReferenceCache.WithLabelValues("hit").Inc()
		return
	}
	m.ReferenceCache.WithLabelValues("miss").Inc()
}

func (m *Metrics) AddPersisted(topic string, n int) {
	if m != nil {
		m.Persisted.WithLabelValues(topic).Add(float64(n))
	}
}
