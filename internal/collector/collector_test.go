package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EquityDash/internal/model"
)

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(&MockFetcher{Price: 100})

	series, err := loader.Load(context.Background(), "RY.TO", "1y")
	require.NoError(t, err)
	assert.Equal(t, "RY.TO", series.Symbol)
	assert.Equal(t, "1y", series.Period)
	assert.Equal(t, 300, series.Len())
	assert.NoError(t, series.Validate())
	assert.False(t, series.FetchedAt.IsZero())
}

func TestLoader_FetchError(t *testing.T) {
	loader := NewLoader(&MockFetcher{Err: ErrDataUnavailable})

	_, err := loader.Load(context.Background(), "NOPE.TO", "1y")
	assert.True(t, errors.Is(err, ErrDataUnavailable))
}

func TestLoader_RejectsDuplicateDates(t *testing.T) {
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	bars := []model.OHLCV{
		{Time: day, Close: 100},
		{Time: day, Close: 101}, // duplicate date
	}
	loader := NewLoader(&MockFetcher{Bars: bars})

	_, err := loader.Load(context.Background(), "RY.TO", "1y")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataUnavailable))
}

func TestLoader_RejectsOutOfOrderBars(t *testing.T) {
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	bars := []model.OHLCV{
		{Time: day, Close: 100},
		{Time: day.AddDate(0, 0, -1), Close: 101},
	}
	loader := NewLoader(&MockFetcher{Bars: bars})

	_, err := loader.Load(context.Background(), "RY.TO", "1y")
	assert.Error(t, err)
}
