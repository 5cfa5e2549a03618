package calculator

import (
	"math"

	"EquityDash/internal/model"
)

// Indicator windows, in trading days.
const (
	shortMAWindow    = 50
	longMAWindow     = 200
	rollingVolWindow = 30
)

// Derive computes all per-bar indicator series for a price series.
// Leading entries whose window is not yet filled stay NaN.
func Derive(series *model.PriceSeries) *model.DerivedSeries {
	closes := series.Closes()

	daily := make([]float64, len(closes))
	for i := range daily {
		daily[i] = math.NaN()
	}
	for i, r := range DailyReturns(closes) {
		daily[i+1] = r
	}

	return &model.DerivedSeries{
		MA50:        RollingSMA(closes, shortMAWindow),
		MA200:       RollingSMA(closes, longMAWindow),
		DailyReturn: daily,
		RollingVol:  RollingVolatility(closes, rollingVolWindow),
	}
}

// Summarize computes the whole-period summary metrics. Each metric
// degrades to an explicit unavailable marker on insufficient data while
// the others still compute; no input aborts the summary.
func Summarize(series *model.PriceSeries) *model.SummaryMetrics {
	sm := &model.SummaryMetrics{}
	if series.Len() > 0 {
		sm.Start = series.Bars[0].Time
		sm.End = series.Bars[series.Len()-1].Time
	}

	closes := series.Closes()

	tr, trErr := TotalReturn(closes)
	if trErr != nil {
		sm.TotalReturn = model.MetricUnavailable(trErr.Error())
		sm.CAGR = model.MetricUnavailable(trErr.Error())
	} else {
		sm.TotalReturn = model.MetricValue(tr)
		if cagr, err := CAGR(tr, sm.Start, sm.End); err != nil {
			sm.CAGR = model.MetricUnavailable(err.Error())
		} else {
			sm.CAGR = model.MetricValue(cagr)
		}
	}

	if vol, err := AnnualizedVolatility(DailyReturns(closes)); err != nil {
		sm.Volatility = model.MetricUnavailable(err.Error())
	} else {
		sm.Volatility = model.MetricValue(vol)
	}

	if mdd, err := MaxDrawdown(closes); err != nil {
		sm.MaxDrawdown = model.MetricUnavailable(err.Error())
	} else {
		sm.MaxDrawdown = model.MetricValue(mdd)
	}

	return sm
}
