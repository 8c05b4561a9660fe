package config

import "path/filepath"

// Paths lays out every file the pipeline writes under the output root.
// This is the single source of truth for output locations; binaries
// never assemble these paths themselves.
type Paths struct {
	OutputDir string
}

// NewPaths creates the path resolver for an output root.
func NewPaths(outputDir string) *Paths {
	return &Paths{OutputDir: outputDir}
}

// EnrichedCSV is the processed dataset consumed by the downstream
// binaries.
func (p *Paths) EnrichedCSV() string {
	return filepath.Join(p.OutputDir, "updated_dataset.csv")
}

// Workbook is the multi-sheet Excel export of the processed dataset.
func (p *Paths) Workbook() string {
	return filepath.Join(p.OutputDir, "sales_summary.xlsx")
}

// PreprocessingReport is the plain-text derivation and validation
// report.
func (p *Paths) PreprocessingReport() string {
	return filepath.Join(p.OutputDir, "preprocessing_report.txt")
}

// AnalysisDir holds the explorer's aggregation CSVs.
func (p *Paths) AnalysisDir() string {
	return filepath.Join(p.OutputDir, "analysis")
}

// AnalysisCSV resolves a file inside AnalysisDir.
func (p *Paths) AnalysisCSV(name string) string {
	return filepath.Join(p.AnalysisDir(), name)
}

// ChartsDir holds the rendered chart files.
func (p *Paths) ChartsDir() string {
	return filepath.Join(p.OutputDir, "charts")
}

// ForecastReport is the regression models' text report.
func (p *Paths) ForecastReport() string {
	return filepath.Join(p.OutputDir, "forecast_report.txt")
}
