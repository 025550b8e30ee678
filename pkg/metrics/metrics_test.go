package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestComposerMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewComposerMetrics(reg, "test")
	m.IncOperation("add_product")
	m.IncOperation("add_product")
	m.IncOperation("")
	m.ObserveSubmission(157500, nil)
	m.ObserveSubmission(0, errors.New("offline"))

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "test_composer_operations_total", "operation", "add_product"); err != nil {
		t.Fatalf("fetch operations: %v", err)
	} else if got != 2 {
		t.Fatalf("expected add_product=2, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "test_composer_operations_total", "operation", "unknown"); err != nil {
		t.Fatalf("fetch unknown: %v", err)
	} else if got != 1 {
		t.Fatalf("expected unknown=1, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "test_composer_submissions_total", "result", "failure"); err != nil {
		t.Fatalf("fetch failure: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failure=1, got %f", got)
	}

	mf := findMetricFamily(mfs, "test_composer_order_total_won")
	if mf == nil || len(mf.GetMetric()) != 1 {
		t.Fatalf("expected order total histogram")
	}
	if sum := mf.GetMetric()[0].GetHistogram().GetSampleSum(); sum != 157500 {
		t.Fatalf("expected histogram sum 157500, got %f", sum)
	}
}

func TestActionMetricsLabelsKindAndResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewActionMetrics(reg, "test")
	m.Observe("issue_coupon", "success")
	m.Observe("issue_coupon", "invalid")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if got, err := fetchCounterValue(mfs, "test_actions_dispatched_total", "result", "invalid"); err != nil {
		t.Fatalf("fetch invalid: %v", err)
	} else if got != 1 {
		t.Fatalf("expected invalid=1, got %f", got)
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	var nilMetrics *ComposerMetrics
	nilMetrics.IncOperation("x")
	nilMetrics.ObserveSubmission(1, nil)

	m := NewComposerMetrics(nil, "")
	m.IncOperation("x")
	NewActionMetrics(nil, "").Observe("x", "y")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
