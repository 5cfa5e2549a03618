package calculator

import (
	"errors"
	"math"
	"time"
)

// daysPerYear is the calendar-day base used to annualize the CAGR.
const daysPerYear = 365.25

// DailyReturns computes the simple daily return close_t/close_{t-1} - 1
// for every close after the first. Simple (not log) returns are used
// throughout, consistent with the simple-compounding total return.
// The result has len(closes)-1 entries; it is empty for fewer than 2 closes.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	return returns
}

// TotalReturn computes last/first - 1 over the close series.
func TotalReturn(closes []float64) (float64, error) {
	if len(closes) < 2 {
		return 0, errors.New("need at least 2 closes")
	}
	first := closes[0]
	if first == 0 {
		return 0, errors.New("first close is zero")
	}
	return closes[len(closes)-1]/first - 1, nil
}

// CAGR computes the compound annual growth rate implied by the total
// return over the calendar days between first and last bar.
func CAGR(totalReturn float64, first, last time.Time) (float64, error) {
	elapsedDays := last.Sub(first).Hours() / 24
	if elapsedDays <= 0 {
		return 0, errors.New("non-positive time span")
	}
	if totalReturn <= -1 {
		return -1, nil // total loss; the power form is undefined below -100%
	}
	return math.Pow(1+totalReturn, daysPerYear/elapsedDays) - 1, nil
}
