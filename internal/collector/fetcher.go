package collector

import (
	"context"
	"errors"

	"EquityDash/internal/model"
)

// ErrDataUnavailable is returned when the provider has no usable data for
// a symbol/period: unknown symbol, empty result, or a transport failure.
// It is fatal to the run; callers do not retry.
var ErrDataUnavailable = errors.New("no price data available")

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	// FetchDailyHistory returns daily bars for the symbol over the given
	// range token, oldest first.
	FetchDailyHistory(ctx context.Context, symbol, period string) ([]model.OHLCV, error)
	Name() string
}
