// Command forecast fits the two regression models over the sales
// dataset: the monthly revenue trend with its forward projection, and
// the units demand model over price and opening stock. Results go to
// stdout and to the forecast report.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"smartstock/internal/config"
	"smartstock/internal/dataset"
	"smartstock/internal/forecast"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	dataFile := flag.String("data", "", "sales CSV, raw or enriched (overrides config)")
	outputDir := flag.String("out", "", "output directory (overrides config)")
	months := flag.Int("months", 0, "months to project (overrides config)")
	whatIfPrice := flag.Float64("price", 0, "what-if unit price for a demand prediction")
	whatIfStock := flag.Float64("stock", 0, "what-if opening stock for a demand prediction")
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
	if *months > 0 {
		cfg.Forecast.Months = *months
	}
	paths := config.NewPaths(cfg.OutputDir)

	records, err := dataset.Load(cfg.DataFile)
	if err != nil {
		slog.Error("failed to load dataset", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}
	slog.Info("loaded dataset", "path", cfg.DataFile, "records", len(records))

	monthly, err := forecast.FitMonthly(records)
	if err != nil {
		slog.Error("failed to fit monthly trend model", "error", err)
		os.Exit(1)
	}
	projection := monthly.Forecast(cfg.Forecast.Months)

	units, err := forecast.FitUnits(records, cfg.Forecast.TestFraction, cfg.Forecast.Seed)
	if err != nil {
		slog.Error("failed to fit units demand model", "error", err)
		os.Exit(1)
	}

	fmt.Println("=== MONTHLY SALES TREND ===")
	fmt.Printf("Revenue = %.2f + %.2f x Month  (R2 %.4f, RMSE %.2f)\n",
		monthly.Intercept, monthly.Slope, monthly.R2, monthly.RMSE)
	fmt.Printf("Projected revenue for the next %d month(s):\n", cfg.Forecast.Months)
	for _, p := range projection {
		fmt.Printf("  %-4s $%.2f\n", p.Label, p.Revenue)
	}

	fmt.Println("\n=== UNITS DEMAND MODEL ===")
	fmt.Printf("Units = %.2f + %.4f x Price + %.4f x Opening_Stock\n",
		units.Intercept, units.PriceCoef, units.StockCoef)
	fmt.Printf("R2 %.4f, RMSE %.2f, MAE %.2f (train %d, test %d)\n",
		units.R2, units.RMSE, units.MAE, units.TrainCount, units.TestCount)

	if *whatIfPrice > 0 {
		fmt.Printf("What-if: at price $%.2f with %.0f units in stock, predicted demand is %.1f units\n",
			*whatIfPrice, *whatIfStock, units.Predict(*whatIfPrice, *whatIfStock))
	}

	if err := forecast.WriteReport(monthly, projection, units, paths.ForecastReport()); err != nil {
		slog.Error("failed to write forecast report", "error", err)
		os.Exit(1)
	}
	slog.Info("forecast complete", "report", paths.ForecastReport())
}
