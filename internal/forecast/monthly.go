// Package forecast fits the two ordinary-least-squares models of the
// analysis suite: monthly revenue against the month index, and units
// sold against price and opening stock.
package forecast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"smartstock/internal/analysis"
	"smartstock/pkg/contracts/domain"
)

// MonthlyModel is a simple linear regression of total sales value per
// month over the month index.
type MonthlyModel struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	R2        float64 `json:"r2"`
	RMSE      float64 `json:"rmse"`

	// Observed is the aggregated training series in calendar order.
	Observed []analysis.MonthlyTotal `json:"observed"`
	// ExcludedRecords counts input records that had no month index and
	// therefore no position on the time axis.
	ExcludedRecords int `json:"excluded_records"`
}

// MonthForecast is one predicted future month.
type MonthForecast struct {
	MonthNum int64   `json:"month_num"`
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
}

// FitMonthly aggregates revenue by month index and fits the trend line.
// At least two distinct months are required.
func FitMonthly(records []domain.EnrichedRecord) (*MonthlyModel, error) {
	monthly, excluded := analysis.MonthlyTotals(records)
	if len(monthly) < 2 {
		return nil, fmt.Errorf("need at least 2 months of data, have %d", len(monthly))
	}

	x := make([]float64, len(monthly))
	y := make([]float64, len(monthly))
	for i, m := range monthly {
		x[i] = float64(m.MonthNum)
		y[i] = m.Revenue
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)

	m := &MonthlyModel{
		Intercept:       alpha,
		Slope:           beta,
		R2:              stat.RSquared(x, y, nil, alpha, beta),
		Observed:        monthly,
		ExcludedRecords: excluded,
	}

	var sqErr float64
	for i := range x {
		diff := y[i] - m.Predict(x[i])
		sqErr += diff * diff
	}
	m.RMSE = math.Sqrt(sqErr / float64(len(x)))

	return m, nil
}

// Predict returns the fitted revenue for a (possibly fractional or
// future) month index.
func (m *MonthlyModel) Predict(monthNum float64) float64 {
	return m.Intercept + m.Slope*monthNum
}

// Forecast projects the n months following the last observed one.
// Months past December wrap into the next year's labels.
func (m *MonthlyModel) Forecast(n int) []MonthForecast {
	last := m.Observed[len(m.Observed)-1].MonthNum

	out := make([]MonthForecast, 0, n)
	for i := int64(1); i <= int64(n); i++ {
		num := last + i
		label := domain.MonthLabel((num-1)%12 + 1)
		out = append(out, MonthForecast{
			MonthNum: num,
			Label:    label,
			Revenue:  m.Predict(float64(num)),
		})
	}
	return out
}
