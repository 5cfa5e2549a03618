package calculator

import "errors"

// MaxDrawdown returns the deepest decline from a running peak of the close
// series, as a non-positive fraction (e.g. -0.35). A single point has no
// possible decline and yields 0; only an empty series is an error.
func MaxDrawdown(closes []float64) (float64, error) {
	if len(closes) == 0 {
		return 0, errors.New("empty close series")
	}
	peak := closes[0]
	worst := 0.0
	for _, c := range closes[1:] {
		if c > peak {
			peak = c
			continue
		}
		if peak > 0 {
			if dd := c/peak - 1; dd < worst {
				worst = dd
			}
		}
	}
	return worst, nil
}
