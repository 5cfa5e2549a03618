package cli

import (
	"context"
	"encoding/csv"
	"flag"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"EquityDash/internal/config"
)

type fetchCmd struct {
	cfg    *config.Config
	ticker string
	period string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "prints the daily OHLCV history for one ticker as CSV" }
func (*fetchCmd) Usage() string {
	return `equitydash fetch --ticker <symbol> --period <token>

Fetches daily price history through the same normalization and validation
path as 'report' and writes it to stdout as CSV. Useful for checking what
the dashboard is built from.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "equity or index symbol, e.g. RY or ^GSPTSE")
	f.StringVar(&c.period, "period", "", "history range, e.g. 1y, 5y, max")
}

func (c *fetchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := loadSeries(ctx, c.cfg, c.ticker, c.period)
	if err != nil {
		logrus.Error(err)
		return subcommands.ExitFailure
	}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"date", "open", "high", "low", "close", "volume"}); err != nil {
		logrus.Errorf("write csv: %v", err)
		return subcommands.ExitFailure
	}
	for _, bar := range series.Bars {
		record := []string{
			bar.Time.Format("2006-01-02"),
			formatFloat(bar.Open),
			formatFloat(bar.High),
			formatFloat(bar.Low),
			formatFloat(bar.Close),
			formatFloat(bar.Volume),
		}
		if err := w.Write(record); err != nil {
			logrus.Errorf("write csv: %v", err)
			return subcommands.ExitFailure
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logrus.Errorf("flush csv: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
