package model

import (
	"fmt"
	"math"
	"time"
)

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the raw daily price history for one symbol.
// Bars are strictly increasing by date with no duplicates (see Validate);
// the series is never mutated after it is loaded.
type PriceSeries struct {
	Symbol    string
	Period    string
	Bars      []OHLCV
	FetchedAt time.Time
}

func (s *PriceSeries) Len() int { return len(s.Bars) }

// Closes returns the close price of every bar, oldest first.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Dates returns every bar date formatted as YYYY-MM-DD, oldest first.
func (s *PriceSeries) Dates() []string {
	dates := make([]string, len(s.Bars))
	for i, b := range s.Bars {
		dates[i] = b.Time.Format("2006-01-02")
	}
	return dates
}

// Validate checks the ordering invariant: bar dates strictly increasing,
// which also rules out duplicates.
func (s *PriceSeries) Validate() error {
	for i := 1; i < len(s.Bars); i++ {
		prev, cur := s.Bars[i-1].Time, s.Bars[i].Time
		if !cur.After(prev) {
			return fmt.Errorf("bars out of order at index %d: %s does not follow %s",
				i, cur.Format("2006-01-02"), prev.Format("2006-01-02"))
		}
	}
	return nil
}

// DerivedSeries holds per-bar indicator sequences aligned 1:1 with the
// bars of the PriceSeries they were computed from. Entries whose trailing
// window is not yet filled are NaN, never zero.
type DerivedSeries struct {
	MA50        []float64
	MA200       []float64
	DailyReturn []float64
	RollingVol  []float64
}

// Defined reports whether a derived value exists at the given index.
func Defined(v float64) bool { return !math.IsNaN(v) }
