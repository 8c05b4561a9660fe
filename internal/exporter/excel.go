package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"smartstock/internal/analysis"
	"smartstock/pkg/contracts/domain"
)

// WorkbookWriter writes the enriched dataset and its headline
// aggregations into a multi-sheet Excel workbook.
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer. A nil logger falls back
// to slog.Default().
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// Write saves the workbook with four sheets: the enriched data, monthly
// totals, product totals and the validation findings.
func (w *WorkbookWriter) Write(path string, records []domain.EnrichedRecord, findings []domain.Finding) error {
	w.logger.Info("writing workbook",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const dataSheet = "Enriched Data"
	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return fmt.Errorf("rename data sheet: %w", err)
	}

	if err := writeRows(f, dataSheet, enrichedSheetRows(records)); err != nil {
		return err
	}

	monthly, _ := analysis.MonthlyTotals(records)
	monthlyRows := [][]interface{}{{"Month", "Month_Num", "Total_Sales_Value", "Units_Sold"}}
	for _, m := range monthly {
		monthlyRows = append(monthlyRows, []interface{}{m.Month, m.MonthNum, m.Revenue, m.Units})
	}
	if err := addSheet(f, "Monthly Totals", monthlyRows); err != nil {
		return err
	}

	products := analysis.TopProductsByRevenue(records, 0)
	productRows := [][]interface{}{{"Product_Name", "Total_Sales_Value", "Units_Sold"}}
	for _, p := range products {
		productRows = append(productRows, []interface{}{p.Name, p.Revenue, p.Units})
	}
	if err := addSheet(f, "Product Totals", productRows); err != nil {
		return err
	}

	findingRows := [][]interface{}{{"Tag", "Count", "Message"}}
	for _, fd := range findings {
		findingRows = append(findingRows, []interface{}{string(fd.Tag), fd.Count, fd.Message})
	}
	if err := addSheet(f, "Findings", findingRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func enrichedSheetRows(records []domain.EnrichedRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records)+1)

	header := make([]interface{}, len(EnrichedHeader))
	for i, h := range EnrichedHeader {
		header[i] = h
	}
	rows = append(rows, header)

	for _, r := range records {
		cells := enrichedRow(r)
		row := make([]interface{}, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		rows = append(rows, row)
	}
	return rows
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("resolve cell on %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d on %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
