package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollingSMA(t *testing.T) {
	out := RollingSMA([]float64{1, 2, 3, 4, 5}, 3)
	require.Len(t, out, 5)

	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.InDelta(t, 2.0, out[2], 1e-12)
	assert.InDelta(t, 3.0, out[3], 1e-12)
	assert.InDelta(t, 4.0, out[4], 1e-12)
}

func TestRollingSMA_WindowLargerThanSeries(t *testing.T) {
	out := RollingSMA([]float64{1, 2, 3}, 5)
	for i, v := range out {
		assert.True(t, math.IsNaN(v), "index %d", i)
	}
}

func TestRollingSMA_WindowOne(t *testing.T) {
	prices := []float64{10, 20, 30}
	assert.Equal(t, prices, RollingSMA(prices, 1))
}
