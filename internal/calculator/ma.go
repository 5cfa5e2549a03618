package calculator

import "math"

// RollingSMA computes the trailing simple moving average at every index.
// The result is aligned 1:1 with prices; indices whose trailing window is
// not yet filled are NaN.
func RollingSMA(prices []float64, period int) []float64 {
	out := make([]float64, len(prices))
	for i := range out {
		out[i] = math.NaN()
	}
	if period <= 0 || len(prices) < period {
		return out
	}
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}
