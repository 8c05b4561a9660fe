package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"smartstock/internal/analysis"
	"smartstock/pkg/contracts/domain"
)

// RevenueByProductHTML renders an interactive bar chart of revenue per
// product.
func RevenueByProductHTML(records []domain.EnrichedRecord, path string) error {
	totals := analysis.TopProductsByRevenue(records, 0)
	if len(totals) == 0 {
		return fmt.Errorf("no products to chart")
	}

	names := make([]string, 0, len(totals))
	values := make([]opts.BarData, 0, len(totals))
	for _, p := range totals {
		names = append(names, p.Name)
		values = append(values, opts.BarData{Value: p.Revenue})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Total Sales Value by Product"}),
	)
	bar.SetXAxis(names).AddSeries("Revenue", values)

	return renderHTML(path, bar.Render)
}

// MonthlyTrendHTML renders an interactive line chart of revenue and
// units per month.
func MonthlyTrendHTML(records []domain.EnrichedRecord, path string) error {
	monthly, _ := analysis.MonthlyTotals(records)
	if len(monthly) == 0 {
		return fmt.Errorf("no months to chart")
	}

	labels := make([]string, 0, len(monthly))
	revenue := make([]opts.LineData, 0, len(monthly))
	units := make([]opts.LineData, 0, len(monthly))
	for _, m := range monthly {
		labels = append(labels, m.Month)
		revenue = append(revenue, opts.LineData{Value: m.Revenue})
		units = append(units, opts.LineData{Value: m.Units})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Monthly Sales Trend"}),
	)
	line.SetXAxis(labels).
		AddSeries("Revenue", revenue).
		AddSeries("Units Sold", units)

	return renderHTML(path, line.Render)
}

// TurnoverHeatmapHTML renders a product x month heatmap of stock
// turnover rates. Cells with not-computable turnover are left empty.
func TurnoverHeatmapHTML(records []domain.EnrichedRecord, path string) error {
	productSet := make(map[string]bool)
	for _, r := range records {
		productSet[r.ProductName] = true
	}
	if len(productSet) == 0 {
		return fmt.Errorf("no records to chart")
	}

	products := make([]string, 0, len(productSet))
	for p := range productSet {
		products = append(products, p)
	}
	sort.Strings(products)

	productIdx := make(map[string]int, len(products))
	for i, p := range products {
		productIdx[p] = i
	}

	var maxRate float64
	var cells []opts.HeatMapData
	for _, r := range records {
		if !r.MonthNum.Valid || !r.StockTurnoverRate.Valid {
			continue
		}
		rate := r.StockTurnoverRate.Value
		if rate > maxRate {
			maxRate = rate
		}
		cells = append(cells, opts.HeatMapData{
			Value: [3]interface{}{int(r.MonthNum.Value - 1), productIdx[r.ProductName], rate},
		})
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Stock Turnover Rate by Product and Month"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: domain.MonthOrder}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: products}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        0,
			Max:        float32(maxRate),
		}),
	)
	hm.AddSeries("Turnover %", cells)

	return renderHTML(path, hm.Render)
}

func renderHTML(path string, render func(w io.Writer) error) error {
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
