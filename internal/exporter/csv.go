// Package exporter writes the enriched dataset and analysis results to
// flat files: CSV for downstream scripts and an Excel workbook for
// human review.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"smartstock/pkg/contracts/domain"
)

// EnrichedHeader is the column order of the processed dataset file.
var EnrichedHeader = []string{
	"Product_ID", "Product_Name", "Month", "Month_Num",
	"Units_Sold", "Price", "Opening_Stock",
	"Total_Sales_Value", "Revenue_Per_Unit",
	"Remaining_Stock", "Stock_Turnover_Rate",
}

// CSVWriter writes CSV files, creating parent directories as needed.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a CSV writer. A nil logger falls back to
// slog.Default().
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteEnriched writes enriched records with header, no index column.
// Not-computable values are written as the NA marker.
func (w *CSVWriter) WriteEnriched(path string, records []domain.EnrichedRecord) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = enrichedRow(r)
	}
	return w.WriteSimple(path, EnrichedHeader, rows)
}

// WriteSimple writes a header row followed by data rows.
func (w *CSVWriter) WriteSimple(path string, header []string, rows [][]string) error {
	w.logger.Info("writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(rows)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	return writer.Error()
}

func enrichedRow(r domain.EnrichedRecord) []string {
	return []string{
		r.ProductID,
		r.ProductName,
		r.Month,
		r.MonthNum.String(),
		fmt.Sprintf("%d", r.UnitsSold),
		r.Price.String(),
		fmt.Sprintf("%d", r.OpeningStock),
		r.TotalSalesValue.String(),
		r.RevenuePerUnit.String(),
		fmt.Sprintf("%d", r.RemainingStock),
		r.StockTurnoverRate.String(),
	}
}
