package report

import (
	"fmt"
	"strings"

	"EquityDash/internal/model"
)

// SummaryLines builds the summary annotation: ticker, date range, and the
// four summary metrics. Unavailable metrics render as the literal "N/A".
func SummaryLines(series *model.PriceSeries, summary *model.SummaryMetrics) []string {
	start, end := "N/A", "N/A"
	if !summary.Start.IsZero() {
		start = summary.Start.Format("2006-01-02")
	}
	if !summary.End.IsZero() {
		end = summary.End.Format("2006-01-02")
	}
	return []string{
		fmt.Sprintf("Ticker: %s", series.Symbol),
		fmt.Sprintf("Range: %s → %s", start, end),
		fmt.Sprintf("Total Return: %s", summary.TotalReturn.Percent()),
		fmt.Sprintf("CAGR: %s", summary.CAGR.Percent()),
		fmt.Sprintf("Ann. Volatility: %s", summary.Volatility.Percent()),
		fmt.Sprintf("Max Drawdown: %s", summary.MaxDrawdown.Percent()),
	}
}

// SummaryText joins the summary lines for the chart annotation.
func SummaryText(series *model.PriceSeries, summary *model.SummaryMetrics) string {
	return strings.Join(SummaryLines(series, summary), "\n")
}
