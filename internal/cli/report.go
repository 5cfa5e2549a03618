package cli

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"EquityDash/internal/calculator"
	"EquityDash/internal/config"
	"EquityDash/internal/report"
)

type reportCmd struct {
	cfg    *config.Config
	ticker string
	period string
	out    string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "builds the interactive HTML dashboard for one ticker" }
func (*reportCmd) Usage() string {
	return `equitydash report --ticker <symbol> --period <token> [--out <path>]

Fetches daily price history for one TSX equity or index, computes the
summary metrics (total return, CAGR, annualized volatility, max drawdown)
and indicator series (50/200-day MA, daily returns, 30-day rolling
volatility), and writes a four-panel interactive HTML dashboard.

Bare symbols are assumed to be TSX listings: "RY" is queried as "RY.TO".
Index symbols ("^GSPTSE") and already-suffixed symbols pass through.

Metrics that cannot be computed from the available history are reported
as N/A with a warning; they never abort the run.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "equity or index symbol, e.g. RY or ^GSPTSE")
	f.StringVar(&c.period, "period", "", "history range, e.g. 1y, 5y, max")
	f.StringVar(&c.out, "out", "", "output HTML path (default: <output dir>/<TICKER>_<period>_<timestamp>.html)")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := loadSeries(ctx, c.cfg, c.ticker, c.period)
	if err != nil {
		logrus.Error(err)
		return subcommands.ExitFailure
	}

	derived := calculator.Derive(series)
	summary := calculator.Summarize(series)
	for _, w := range summary.Warnings() {
		logrus.Warn(w)
	}

	out := c.out
	if out == "" {
		out = filepath.Join(c.cfg.Output.Dir, defaultName(series.Symbol, series.Period))
	}

	page := report.Compose(series, derived, summary)
	if err := report.WriteHTML(page, out); err != nil {
		logrus.Error(err)
		return subcommands.ExitFailure
	}

	for _, line := range report.SummaryLines(series, summary) {
		fmt.Println(line)
	}
	fmt.Printf("Saved dashboard to: %s\n", out)
	return subcommands.ExitSuccess
}

// defaultName derives the output file name from the queried symbol, the
// period, and the invocation time.
func defaultName(symbol, period string) string {
	safe := strings.ReplaceAll(symbol, ".", "_")
	safe = strings.ReplaceAll(safe, "^", "")
	return fmt.Sprintf("%s_%s_%s.html", safe, period, time.Now().Format("20060102-150405"))
}
