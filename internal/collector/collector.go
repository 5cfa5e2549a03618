package collector

import (
	"context"
	"fmt"
	"time"

	"EquityDash/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.OHLCV
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyHistory(_ context.Context, _, _ string) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.Price, 300), nil
}

// GenerateMockBars builds a gently trending daily series ending today.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Loader fetches a symbol's history and wraps it into a validated
// PriceSeries. It is the only component that talks to the provider.
type Loader struct {
	Fetcher Fetcher
}

// NewLoader creates a new Loader.
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{Fetcher: fetcher}
}

// Load fetches daily history for the (already normalized) symbol over the
// given period and returns an ordered, validated PriceSeries.
func (l *Loader) Load(ctx context.Context, symbol, period string) (*model.PriceSeries, error) {
	bars, err := l.Fetcher.FetchDailyHistory(ctx, symbol, period)
	if err != nil {
		return nil, fmt.Errorf("fetch daily history for %s: %w", symbol, err)
	}

	series := &model.PriceSeries{
		Symbol:    symbol,
		Period:    period,
		Bars:      bars,
		FetchedAt: time.Now().UTC(),
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, symbol, err)
	}
	return series, nil
}
