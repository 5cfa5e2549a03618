package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricPercent(t *testing.T) {
	assert.Equal(t, "12.34%", MetricValue(0.12341).Percent())
	assert.Equal(t, "-25.00%", MetricValue(-0.25).Percent())
	assert.Equal(t, "0.00%", MetricValue(0).Percent())
	assert.Equal(t, "N/A", MetricUnavailable("need at least 2 closes").Percent())
}

func TestSummaryMetricsWarnings(t *testing.T) {
	sm := &SummaryMetrics{
		TotalReturn: MetricValue(0.1),
		CAGR:        MetricUnavailable("non-positive time span"),
		Volatility:  MetricUnavailable("need at least 2 daily returns"),
		MaxDrawdown: MetricValue(0),
	}
	warnings := sm.Warnings()
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "CAGR")
	assert.Contains(t, warnings[0], "non-positive time span")
	assert.Contains(t, warnings[1], "volatility")
}

func TestSummaryMetricsWarnings_AllAvailable(t *testing.T) {
	sm := &SummaryMetrics{
		TotalReturn: MetricValue(0.1),
		CAGR:        MetricValue(0.05),
		Volatility:  MetricValue(0.2),
		MaxDrawdown: MetricValue(-0.3),
	}
	assert.Empty(t, sm.Warnings())
}
