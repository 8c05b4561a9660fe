package forecast

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteReport writes the plain-text regression report: the monthly
// trend model, its forward projection and the units demand model.
func WriteReport(monthly *MonthlyModel, projection []MonthForecast, units *UnitsModel, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	rule := strings.Repeat("=", 70)
	sub := strings.Repeat("-", 70)

	b.WriteString(rule + "\n")
	b.WriteString("                 SALES FORECAST REPORT\n")
	b.WriteString("          Smart Stock Inventory Optimization\n")
	b.WriteString(rule + "\n\n")
	b.WriteString(fmt.Sprintf("Report Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	b.WriteString("1. MONTHLY SALES TREND\n" + sub + "\n")
	b.WriteString(fmt.Sprintf("Model: Revenue = %.2f + %.2f x Month\n", monthly.Intercept, monthly.Slope))
	b.WriteString(fmt.Sprintf("R-squared: %.4f\n", monthly.R2))
	b.WriteString(fmt.Sprintf("RMSE: %.2f\n", monthly.RMSE))
	b.WriteString(fmt.Sprintf("Months Observed: %d\n", len(monthly.Observed)))
	if monthly.ExcludedRecords > 0 {
		b.WriteString(fmt.Sprintf("Records Excluded (unknown month): %d\n", monthly.ExcludedRecords))
	}
	b.WriteString("\n")

	b.WriteString("2. PROJECTED REVENUE\n" + sub + "\n")
	for _, p := range projection {
		b.WriteString(fmt.Sprintf("  %-4s $%.2f\n", p.Label, p.Revenue))
	}
	b.WriteString("\n")

	b.WriteString("3. UNITS DEMAND MODEL\n" + sub + "\n")
	b.WriteString(fmt.Sprintf("Model: Units = %.2f + %.4f x Price + %.4f x Opening_Stock\n",
		units.Intercept, units.PriceCoef, units.StockCoef))
	b.WriteString(fmt.Sprintf("R-squared: %.4f\n", units.R2))
	b.WriteString(fmt.Sprintf("RMSE: %.2f\n", units.RMSE))
	b.WriteString(fmt.Sprintf("MAE: %.2f\n", units.MAE))
	b.WriteString(fmt.Sprintf("Train/Test Split: %d/%d records\n", units.TrainCount, units.TestCount))
	b.WriteString("\n" + rule + "\n")

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
