package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Order totals are in won; buckets span a sample-only order to a bulk gift order.
var orderTotalBuckets = []float64{0, 10000, 50000, 100000, 200000, 500000, 1000000, 5000000}

// ComposerMetrics records order composer activity.
type ComposerMetrics struct {
	operations  *prometheus.CounterVec
	submissions *prometheus.CounterVec
	orderTotal  prometheus.Histogram
}

// NewComposerMetrics registers the composer metrics on the provided registerer.
func NewComposerMetrics(reg prometheus.Registerer, namespace string) *ComposerMetrics {
	if reg == nil {
		return &ComposerMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "composer_operations_total",
		Help:      "Order composer mutations by operation.",
	}, []string{"operation"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "composer_submissions_total",
		Help:      "Order submissions by outcome.",
	}, []string{"result"})
	orderTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "composer_order_total_won",
		Help:      "Order total at submission time in won.",
		Buckets:   orderTotalBuckets,
	})
	reg.MustRegister(operations, submissions, orderTotal)
	return &ComposerMetrics{
		operations:  operations,
		submissions: submissions,
		orderTotal:  orderTotal,
	}
}

// IncOperation counts one composer mutation.
func (c *ComposerMetrics) IncOperation(op string) {
	if c == nil || c.operations == nil {
		return
	}
	c.operations.WithLabelValues(normalizeLabel(op)).Inc()
}

// ObserveSubmission records a submission outcome and, on success, its total.
func (c *ComposerMetrics) ObserveSubmission(total int64, err error) {
	if c == nil || c.submissions == nil {
		return
	}
	if err != nil {
		c.submissions.WithLabelValues("failure").Inc()
		return
	}
	c.submissions.WithLabelValues("success").Inc()
	c.orderTotal.Observe(float64(total))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
