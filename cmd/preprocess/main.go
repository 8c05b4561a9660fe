// Command preprocess loads the raw sales dataset, derives the inventory
// metrics, validates the result and writes the enriched CSV, the Excel
// workbook and the preprocessing report.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"smartstock/internal/config"
	"smartstock/internal/dataset"
	"smartstock/internal/enrich"
	"smartstock/internal/exporter"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	dataFile := flag.String("data", "", "raw sales CSV (overrides config)")
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

	slog.Info("loading raw dataset", "path", cfg.DataFile)
	records, err := dataset.LoadRaw(cfg.DataFile)
	if err != nil {
		slog.Error("failed to load dataset", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}
	slog.Info("loaded raw dataset", "records", len(records))

	ctx := context.Background()
	enriched, findings := enrich.NewPass(logger).Run(ctx, records)

	csvWriter := exporter.NewCSVWriter(logger)
	if err := csvWriter.WriteEnriched(paths.EnrichedCSV(), enriched); err != nil {
		slog.Error("failed to write enriched CSV", "error", err)
		os.Exit(1)
	}

	workbook := exporter.NewWorkbookWriter(logger)
	if err := workbook.Write(paths.Workbook(), enriched, findings); err != nil {
		slog.Error("failed to write workbook", "error", err)
		os.Exit(1)
	}

	info := enrich.ReportInfo{
		SourcePath:   cfg.DataFile,
		EnrichedPath: paths.EnrichedCSV(),
		WorkbookPath: paths.Workbook(),
		ReportPath:   paths.PreprocessingReport(),
	}
	if err := enrich.WriteReport(enriched, findings, info); err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	slog.Info("preprocessing complete",
		"records", len(enriched),
		"findings", len(findings),
		"csv", paths.EnrichedCSV(),
		"workbook", paths.Workbook(),
		"report", paths.PreprocessingReport())
}
