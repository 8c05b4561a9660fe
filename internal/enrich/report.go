package enrich

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"smartstock/pkg/contracts/domain"
)

// ReportInfo carries the file locations stamped into the report.
type ReportInfo struct {
	SourcePath   string
	EnrichedPath string
	WorkbookPath string
	ReportPath   string
}

// WriteReport writes the plain-text preprocessing report: input
// overview, data quality findings, the derived column descriptions and
// the dataset summary.
func WriteReport(records []domain.EnrichedRecord, findings []domain.Finding, info ReportInfo) error {
	if err := os.MkdirAll(filepath.Dir(info.ReportPath), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	f, err := os.Create(info.ReportPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	rule := strings.Repeat("=", 70)
	sub := strings.Repeat("-", 70)

	b.WriteString(rule + "\n")
	b.WriteString("               DATA PREPROCESSING REPORT\n")
	b.WriteString("          Smart Stock Inventory Optimization\n")
	b.WriteString(rule + "\n\n")
	b.WriteString(fmt.Sprintf("Report Generated: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Run ID: %s\n\n", uuid.NewString()))

	b.WriteString("1. INPUT DATA\n" + sub + "\n")
	b.WriteString(fmt.Sprintf("Source File: %s\n", info.SourcePath))
	b.WriteString(fmt.Sprintf("Records Processed: %d\n\n", len(records)))

	b.WriteString("2. DATA QUALITY\n" + sub + "\n")
	if len(findings) == 0 {
		b.WriteString("No advisory findings. All checks passed.\n")
	} else {
		b.WriteString(fmt.Sprintf("Advisory Findings: %d\n", len(findings)))
		for _, fd := range findings {
			b.WriteString(fmt.Sprintf("  - [%s] %s\n", fd.Tag, fd.Message))
		}
	}
	b.WriteString("\n")

	b.WriteString("3. FEATURE ENGINEERING\n" + sub + "\n")
	b.WriteString("New Columns Added:\n")
	b.WriteString("  - Total_Sales_Value: Product of Units_Sold x Price\n")
	b.WriteString("  - Month_Num: Position of the month label in Jan..Dec (NA if unknown)\n")
	b.WriteString("  - Remaining_Stock: Opening_Stock - Units_Sold\n")
	b.WriteString("  - Stock_Turnover_Rate: (Units_Sold / Opening_Stock) x 100 (NA if stock is 0)\n")
	b.WriteString("  - Revenue_Per_Unit: Total_Sales_Value / Units_Sold (NA if no units sold)\n\n")

	b.WriteString("4. DATASET SUMMARY\n" + sub + "\n")
	s := summarize(records)
	b.WriteString(fmt.Sprintf("Final Records: %d\n", len(records)))
	b.WriteString(fmt.Sprintf("Total Sales Value: $%s\n", s.totalSales.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Total Units Sold: %d\n", s.totalUnits))
	b.WriteString(fmt.Sprintf("Average Price: $%s\n", s.avgPrice.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Average Stock Turnover: %.2f%%\n\n", s.avgTurnover))

	b.WriteString("5. OUTPUT\n" + sub + "\n")
	b.WriteString(fmt.Sprintf("Processed Data Saved: %s\n", info.EnrichedPath))
	if info.WorkbookPath != "" {
		b.WriteString(fmt.Sprintf("Workbook Saved: %s\n", info.WorkbookPath))
	}
	b.WriteString(fmt.Sprintf("Report Saved: %s\n", info.ReportPath))
	b.WriteString("\n" + rule + "\n")

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

type datasetSummary struct {
	totalSales  decimal.Decimal
	totalUnits  int64
	avgPrice    decimal.Decimal
	avgTurnover float64
}

// summarize aggregates the headline figures for the report. The average
// turnover is taken over records where turnover is computable.
func summarize(records []domain.EnrichedRecord) datasetSummary {
	var s datasetSummary
	if len(records) == 0 {
		return s
	}

	var priceSum decimal.Decimal
	var turnoverSum float64
	var turnoverCount int

	for _, r := range records {
		s.totalSales = s.totalSales.Add(r.TotalSalesValue)
		s.totalUnits += r.UnitsSold
		priceSum = priceSum.Add(r.Price)
		if r.StockTurnoverRate.Valid {
			turnoverSum += r.StockTurnoverRate.Value
			turnoverCount++
		}
	}

	s.avgPrice = priceSum.Div(decimal.NewFromInt(int64(len(records))))
	if turnoverCount > 0 {
		s.avgTurnover = turnoverSum / float64(turnoverCount)
	}
	return s
}
