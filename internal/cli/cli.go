// Package cli implements the equitydash subcommands.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"EquityDash/internal/collector"
	"EquityDash/internal/config"
	"EquityDash/internal/model"
)

// Register the subcommands.
func Register(c *subcommands.Commander, cfg *config.Config) {
	c.Register(&reportCmd{cfg: cfg}, "")
	c.Register(&fetchCmd{cfg: cfg}, "")
}

func newLoader(cfg *config.Config) *collector.Loader {
	return collector.NewLoader(collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy))
}

// loadSeries validates the ticker and period, then fetches the price
// history. Input errors are reported before any network call.
func loadSeries(ctx context.Context, cfg *config.Config, ticker, period string) (*model.PriceSeries, error) {
	symbol, err := collector.NormalizeTicker(ticker)
	if err != nil {
		return nil, fmt.Errorf("invalid ticker: %w", err)
	}
	if !collector.ValidPeriod(period) {
		return nil, fmt.Errorf("invalid period %q: must be one of %s",
			period, strings.Join(collector.Periods(), ", "))
	}
	return newLoader(cfg).Load(ctx, symbol, period)
}
