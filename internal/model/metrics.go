package model

import (
	"fmt"
	"time"
)

// Metric is the result of one summary statistic: either a computed value
// or an explicit unavailable marker carrying the reason.
type Metric struct {
	Value  float64
	Reason string // non-empty when the metric could not be computed
}

// Available reports whether the metric carries a computed value.
func (m Metric) Available() bool { return m.Reason == "" }

// Percent renders the metric as a percentage with two decimals, or the
// literal "N/A" when unavailable.
func (m Metric) Percent() string {
	if !m.Available() {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", m.Value*100)
}

// MetricValue returns an available metric.
func MetricValue(v float64) Metric { return Metric{Value: v} }

// MetricUnavailable returns an unavailable metric with the given reason.
func MetricUnavailable(reason string) Metric { return Metric{Reason: reason} }

// SummaryMetrics holds the whole-period summary statistics. Each metric
// degrades to unavailable independently; one missing metric never blocks
// the others.
type SummaryMetrics struct {
	Start       time.Time
	End         time.Time
	TotalReturn Metric
	CAGR        Metric
	Volatility  Metric
	MaxDrawdown Metric
}

// Warnings returns one message per unavailable metric, in a fixed order.
func (s *SummaryMetrics) Warnings() []string {
	var msgs []string
	for _, m := range []struct {
		name   string
		metric Metric
	}{
		{"total return", s.TotalReturn},
		{"CAGR", s.CAGR},
		{"annualized volatility", s.Volatility},
		{"max drawdown", s.MaxDrawdown},
	} {
		if !m.metric.Available() {
			msgs = append(msgs, fmt.Sprintf("%s unavailable: %s", m.name, m.metric.Reason))
		}
	}
	return msgs
}
