// Package report composes the multi-panel dashboard and writes it as one
// self-contained interactive HTML document.
package report

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"EquityDash/internal/model"
)

const (
	panelWidth  = "1180px"
	panelHeight = "340px"
)

// Compose arranges the four dashboard panels (price with moving averages,
// volume, daily returns, rolling volatility) into one page sharing the
// date axis, with the summary annotation on the price panel.
func Compose(series *model.PriceSeries, derived *model.DerivedSeries, summary *model.SummaryMetrics) *components.Page {
	dates := series.Dates()

	price := newLinePanel("Close Price (with 50/200D MA)", "Price (CAD)")
	price.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Close Price (with 50/200D MA)",
			Subtitle: SummaryText(series, summary),
		}),
	)
	price.SetXAxis(dates).
		AddSeries("Close", lineData(series.Closes())).
		AddSeries("MA50", lineData(derived.MA50)).
		AddSeries("MA200", lineData(derived.MA200))

	volume := charts.NewBar()
	volume.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: panelWidth, Height: panelHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Volume"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Volume (Shares)"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	volume.SetXAxis(dates).AddSeries("Volume", barData(volumes(series)))

	returns := newLinePanel("Daily Returns", "Daily Return")
	returns.SetXAxis(dates).AddSeries("Daily Return", lineData(derived.DailyReturn))

	vol := newLinePanel("Rolling Volatility (30D, annualized)", "Volatility (Annualized)")
	vol.SetXAxis(dates).AddSeries("Vol30", lineData(derived.RollingVol))

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.PageTitle = fmt.Sprintf("Canadian Equity Dashboard — %s (%s)", series.Symbol, series.Period)
	page.AddCharts(price, volume, returns, vol)
	return page
}

func newLinePanel(title, yAxisName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: panelWidth, Height: panelHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "0"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	return line
}

// lineData maps a derived sequence to chart points; NaN entries become
// gaps ("-"), never zeros.
func lineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		if !model.Defined(v) {
			data[i] = opts.LineData{Value: "-"}
			continue
		}
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func barData(values []float64) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}
	return data
}

func volumes(series *model.PriceSeries) []float64 {
	out := make([]float64, series.Len())
	for i, b := range series.Bars {
		out[i] = b.Volume
	}
	return out
}
