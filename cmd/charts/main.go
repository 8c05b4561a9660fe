// Command charts renders the chart set for the sales dataset: static
// PNGs and interactive HTML charts under the charts output directory.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"smartstock/internal/charts"
	"smartstock/internal/config"
	"smartstock/internal/dataset"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	dataFile := flag.String("data", "", "sales CSV, raw or enriched (overrides config)")
	outputDir := flag.String("out", "", "output directory (overrides config)")
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

	if err := charts.RenderAll(context.Background(), logger, records, paths.ChartsDir()); err != nil {
		slog.Error("failed to render charts", "error", err)
		os.Exit(1)
	}
	slog.Info("charts rendered", "dir", paths.ChartsDir(), "count", len(charts.Outputs))
}
