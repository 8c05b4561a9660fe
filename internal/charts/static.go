// Package charts renders the standard visualization set over the
// enriched dataset: static PNG images and interactive HTML pages.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"smartstock/internal/analysis"
	"smartstock/pkg/contracts/domain"
)

// RevenueByProductPNG renders a bar chart of total sales value per
// product, highest first.
func RevenueByProductPNG(records []domain.EnrichedRecord, path string) error {
	totals := analysis.TopProductsByRevenue(records, 0)
	if len(totals) == 0 {
		return fmt.Errorf("no products to chart")
	}

	bars := make([]chart.Value, 0, len(totals))
	for _, p := range totals {
		bars = append(bars, chart.Value{Label: p.Name, Value: p.Revenue})
	}

	graph := chart.BarChart{
		Title:    "Total Sales Value by Product",
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}
	return renderPNG(path, func(f *os.File) error { return graph.Render(chart.PNG, f) })
}

// MonthlyTrendPNG renders a line chart of revenue over the calendar
// months present in the data.
func MonthlyTrendPNG(records []domain.EnrichedRecord, path string) error {
	monthly, _ := analysis.MonthlyTotals(records)
	if len(monthly) < 2 {
		return fmt.Errorf("need at least 2 months to draw a trend, have %d", len(monthly))
	}

	xs := make([]float64, len(monthly))
	ys := make([]float64, len(monthly))
	for i, m := range monthly {
		xs[i] = float64(m.MonthNum)
		ys[i] = m.Revenue
	}

	graph := chart.Chart{
		Title:  "Monthly Sales Trend",
		Height: 512,
		XAxis:  chart.XAxis{Name: "Month"},
		YAxis:  chart.YAxis{Name: "Total Sales Value"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Revenue", XValues: xs, YValues: ys},
		},
	}
	return renderPNG(path, func(f *os.File) error { return graph.Render(chart.PNG, f) })
}

// PriceVsUnitsPNG renders a scatter plot of unit price against units
// sold.
func PriceVsUnitsPNG(records []domain.EnrichedRecord, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to chart")
	}

	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, r := range records {
		xs[i], _ = r.Price.Float64()
		ys[i] = float64(r.UnitsSold)
	}

	graph := chart.Chart{
		Title:  "Price vs Units Sold",
		Height: 512,
		XAxis:  chart.XAxis{Name: "Price"},
		YAxis:  chart.YAxis{Name: "Units Sold"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Records",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    5,
				},
			},
		},
	}
	return renderPNG(path, func(f *os.File) error { return graph.Render(chart.PNG, f) })
}

func renderPNG(path string, render func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create chart directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return nil
}
