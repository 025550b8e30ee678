package metrics

import "github.com/prometheus/client_golang/prometheus"

// ActionMetrics records CRM action dispatches.
type ActionMetrics struct {
	dispatched *prometheus.CounterVec
}

// NewActionMetrics registers the action metrics on the provided registerer.
func NewActionMetrics(reg prometheus.Registerer, namespace string) *ActionMetrics {
	if reg == nil {
		return &ActionMetrics{}
	}
	dispatched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_dispatched_total",
		Help:      "CRM actions dispatched by kind and outcome.",
	}, []string{"kind", "result"})
	reg.MustRegister(dispatched)
	return &ActionMetrics{dispatched: dispatched}
}

// Observe counts one dispatch; result is "success", "invalid" or "failure".
func (a *ActionMetrics) Observe(kind, result string) {
	if a == nil || a.dispatched == nil {
		return
	}
	a.dispatched.WithLabelValues(normalizeLabel(kind), normalizeLabel(result)).Inc()
}
