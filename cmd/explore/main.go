// Command explore runs the tabular exploration of the sales dataset:
// filtering, sorting, grouping and the product-by-month pivot, each
// written as a CSV under the analysis output directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"smartstock/internal/analysis"
	"smartstock/internal/config"
	"smartstock/internal/dataset"
	"smartstock/internal/exporter"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	dataFile := flag.String("data", "", "sales CSV, raw or enriched (overrides config)")
	outputDir := flag.String("out", "", "output directory (overrides config)")
	minUnits := flag.Int("min-units", 100, "threshold for the high-volume filter")
	topN := flag.Int("top", 5, "number of rows in the top-sellers view")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	paths := config.NewPaths(cfg.OutputDir)

	records, err := dataset.Load(cfg.DataFile)
	if err != nil {
		slog.Error("failed to load dataset", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}
	slog.Info("loaded dataset", "path", cfg.DataFile, "records", len(records))

	if err := os.MkdirAll(paths.AnalysisDir(), 0755); err != nil {
		slog.Error("failed to create analysis directory", "error", err)
		os.Exit(1)
	}

	csvWriter := exporter.NewCSVWriter(logger)

	monthly, excluded := analysis.MonthlyTotals(records)
	if excluded > 0 {
		slog.Warn("records excluded from monthly totals", "count", excluded)
	}
	monthlyRows := make([][]string, 0, len(monthly))
	for _, m := range monthly {
		monthlyRows = append(monthlyRows, []string{
			m.Month,
			fmt.Sprintf("%d", m.MonthNum),
			fmt.Sprintf("%.2f", m.Revenue),
			fmt.Sprintf("%.0f", m.Units),
		})
	}
	writeOrDie(csvWriter, paths.AnalysisCSV("monthly_sales.csv"),
		[]string{"Month", "Month_Num", "Revenue", "Units_Sold"}, monthlyRows)

	products := analysis.TopProductsByRevenue(records, 0)
	productRows := make([][]string, 0, len(products))
	for _, p := range products {
		productRows = append(productRows, []string{
			p.Name,
			fmt.Sprintf("%.2f", p.Revenue),
			fmt.Sprintf("%.0f", p.Units),
		})
	}
	writeOrDie(csvWriter, paths.AnalysisCSV("product_totals.csv"),
		[]string{"Product_Name", "Revenue", "Units_Sold"}, productRows)

	writeFrameOrDie(paths.AnalysisCSV("high_volume.csv"), analysis.FilterUnitsAbove(records, *minUnits))
	writeFrameOrDie(paths.AnalysisCSV("top_sellers.csv"), analysis.TopSellers(records, *topN))
	writeFrameOrDie(paths.AnalysisCSV("sorted_by_product.csv"), analysis.SortByProductAndMonth(records))

	pivot := analysis.PivotUnitsByProductMonth(records)
	writeOrDie(csvWriter, paths.AnalysisCSV("units_pivot.csv"), pivot[0], pivot[1:])

	slog.Info("exploration complete", "dir", paths.AnalysisDir())
}

func writeOrDie(w *exporter.CSVWriter, path string, header []string, rows [][]string) {
	if err := w.WriteSimple(path, header, rows); err != nil {
		slog.Error("failed to write analysis CSV", "path", path, "error", err)
		os.Exit(1)
	}
	slog.Info("wrote analysis CSV", "path", path, "rows", len(rows))
}

func writeFrameOrDie(path string, df dataframe.DataFrame) {
	if df.Err != nil {
		slog.Error("dataframe operation failed", "path", path, "error", df.Err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		slog.Error("failed to create analysis directory", "error", err)
		os.Exit(1)
	}
	f, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create analysis CSV", "path", path, "error", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := df.WriteCSV(f); err != nil {
		slog.Error("failed to write analysis CSV", "path", path, "error", err)
		os.Exit(1)
	}
	slog.Info("wrote analysis CSV", "path", path, "rows", df.Nrow())
}
