package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReturns(t *testing.T) {
	returns := DailyReturns([]float64{100, 110, 99})
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.1, returns[0], 1e-12)
	assert.InDelta(t, 99.0/110-1, returns[1], 1e-12)

	assert.Nil(t, DailyReturns(nil))
	assert.Nil(t, DailyReturns([]float64{100}))
}

func TestTotalReturn(t *testing.T) {
	tr, err := TotalReturn([]float64{100, 120, 150})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, tr, 1e-12)

	_, err = TotalReturn([]float64{100})
	assert.Error(t, err)
	_, err = TotalReturn(nil)
	assert.Error(t, err)
}

func TestCAGR_Reference(t *testing.T) {
	// 50% total return over the 1826 calendar days between 2019-01-03 and
	// 2024-01-03: 1.5^(365.25/1826)-1.
	first := time.Date(2019, 1, 3, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	got, err := CAGR(0.5, first, last)
	require.NoError(t, err)

	const want = 0.08448381166607044
	assert.InEpsilon(t, want, got, 1e-9)
}

func TestCAGR_FlatSeries(t *testing.T) {
	first := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)
	got, err := CAGR(0, first, first.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestCAGR_NonPositiveSpan(t *testing.T) {
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	_, err := CAGR(0.5, day, day)
	assert.Error(t, err)
	_, err = CAGR(0.5, day, day.AddDate(0, 0, -1))
	assert.Error(t, err)
}

func TestCAGR_TotalLoss(t *testing.T) {
	first := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)
	got, err := CAGR(-1, first, first.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, -1.0, got)
	assert.False(t, math.IsNaN(got))
}
