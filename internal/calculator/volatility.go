package calculator

import (
	"errors"
	"math"
)

// tradingDaysPerYear annualizes daily volatility.
const tradingDaysPerYear = 252

// stddev computes the sample standard deviation (n-1 divisor).
func stddev(values []float64) (float64, error) {
	n := len(values)
	if n < 2 {
		return 0, errors.New("need at least 2 values")
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n - 1)
	return math.Sqrt(variance), nil
}

// AnnualizedVolatility computes stddev of the daily returns scaled by
// sqrt(252). Requires at least 2 returns.
func AnnualizedVolatility(returns []float64) (float64, error) {
	sd, err := stddev(returns)
	if err != nil {
		return 0, errors.New("need at least 2 daily returns")
	}
	return sd * math.Sqrt(tradingDaysPerYear), nil
}

// RollingVolatility computes the 30-day (or given window) annualized
// volatility at every bar. The result is aligned 1:1 with closes; a value
// exists at index i only once the trailing `window` daily returns are all
// defined, so the first defined index is `window` (returns start at 1).
func RollingVolatility(closes []float64, window int) []float64 {
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = math.NaN()
	}
	returns := DailyReturns(closes)
	if window <= 0 || len(returns) < window {
		return out
	}
	scale := math.Sqrt(tradingDaysPerYear)
	for i := window; i < len(closes); i++ {
		// returns[j] is the return of bar j+1; the window ending at bar i
		// covers returns[i-window .. i-1].
		sd, err := stddev(returns[i-window : i])
		if err != nil {
			continue
		}
		out[i] = sd * scale
	}
	return out
}
