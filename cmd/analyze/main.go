// Command analyze prints descriptive statistics over the sales dataset:
// per-column summaries, correlations and the missing-value handling
// comparison.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"smartstock/internal/config"
	"smartstock/internal/dataset"
	"smartstock/internal/stats"
)

// Columns reported in the descriptive section, in print order.
var statColumns = []string{
	"Units_Sold",
	"Price",
	"Opening_Stock",
	"Total_Sales_Value",
	"Remaining_Stock",
	"Stock_Turnover_Rate",
}

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	dataFile := flag.String("data", "", "sales CSV, raw or enriched (overrides config)")
	unitsThreshold := flag.Float64("units-threshold", 100, "threshold for the units sold counts")
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

	records, err := dataset.Load(cfg.DataFile)
	if err != nil {
		slog.Error("failed to load dataset", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}
	slog.Info("loaded dataset", "path", cfg.DataFile, "records", len(records))

	cols := stats.Columns(records)

	fmt.Println("=== DESCRIPTIVE STATISTICS ===")
	fmt.Printf("%-20s %8s %12s %12s %12s %12s %12s %14s\n",
		"Column", "Count", "Min", "Max", "Mean", "Median", "StdDev", "Sum")
	for _, name := range statColumns {
		s := stats.Describe(cols[name])
		fmt.Printf("%-20s %8d %12.2f %12.2f %12.2f %12.2f %12.2f %14.2f\n",
			name, s.Count, s.Min, s.Max, s.Mean, s.Median, s.StdDev, s.Sum)
	}

	fmt.Println("\n=== CORRELATIONS ===")
	fmt.Printf("Price vs Units_Sold:          %+.4f\n",
		stats.Correlation(cols["Price"], cols["Units_Sold"]))
	fmt.Printf("Opening_Stock vs Units_Sold:  %+.4f\n",
		stats.Correlation(cols["Opening_Stock"], cols["Units_Sold"]))
	fmt.Printf("Units_Sold vs Total_Sales:    %+.4f\n",
		stats.Correlation(cols["Units_Sold"], cols["Total_Sales_Value"]))

	fmt.Println("\n=== THRESHOLD COUNTS ===")
	fmt.Printf("Records with Units_Sold > %.0f: %d\n",
		*unitsThreshold, stats.CountAbove(cols["Units_Sold"], *unitsThreshold))
	fmt.Printf("Records with Units_Sold < %.0f: %d\n",
		*unitsThreshold, stats.CountBelow(cols["Units_Sold"], *unitsThreshold))

	fmt.Println("\n=== MISSING VALUES ===")
	table := stats.NewTable(statColumns, cols)
	fmt.Printf("Rows: %d, Missing Cells: %d\n", table.Rows(), table.MissingCount())
	for _, name := range statColumns {
		if positions := table.MissingPositions(name); len(positions) > 0 {
			fmt.Printf("  %s: %d missing at rows %v\n", name, len(positions), positions)
		}
	}
	dropped := table.DropRows()
	filled := table.FillMean()
	fmt.Printf("After DropRows: %d rows\n", dropped.Rows())
	fmt.Printf("After FillMean: %d rows, %d missing\n", filled.Rows(), filled.MissingCount())
}
