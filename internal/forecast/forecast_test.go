package forecast

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/internal/enrich"
	"smartstock/pkg/contracts/domain"
)

// monthlySeries builds one record per month with revenue following
// revenue = base + slope*monthNum exactly.
func monthlySeries(months int, base, slope float64) []domain.EnrichedRecord {
	var records []domain.EnrichedRecord
	for m := 1; m <= months; m++ {
		revenue := base + slope*float64(m)
		records = append(records, enrich.Derive(domain.SalesRecord{
			ProductID:    fmt.Sprintf("P%03d", m),
			ProductName:  "Widget",
			Month:        domain.MonthOrder[m-1],
			UnitsSold:    1,
			Price:        decimal.NewFromFloat(revenue),
			OpeningStock: 100,
		}))
	}
	return records
}

func TestFitMonthlyRecoversExactLine(t *testing.T) {
	records := monthlySeries(6, 1000, 250)

	m, err := FitMonthly(records)
	require.NoError(t, err)

	assert.InDelta(t, 1000, m.Intercept, 1e-6)
	assert.InDelta(t, 250, m.Slope, 1e-6)
	assert.InDelta(t, 1, m.R2, 1e-9)
	assert.InDelta(t, 0, m.RMSE, 1e-6)
	assert.Len(t, m.Observed, 6)
	assert.Equal(t, 0, m.ExcludedRecords)
}

func TestFitMonthlyForecastContinuesTrend(t *testing.T) {
	m, err := FitMonthly(monthlySeries(6, 1000, 250))
	require.NoError(t, err)

	future := m.Forecast(3)
	require.Len(t, future, 3)

	assert.Equal(t, int64(7), future[0].MonthNum)
	assert.Equal(t, "Jul", future[0].Label)
	assert.InDelta(t, 1000+250*7, future[0].Revenue, 1e-6)
	assert.InDelta(t, 1000+250*9, future[2].Revenue, 1e-6)
}

func TestFitMonthlyForecastWrapsYear(t *testing.T) {
	m, err := FitMonthly(monthlySeries(12, 500, 10))
	require.NoError(t, err)

	future := m.Forecast(2)
	assert.Equal(t, int64(13), future[0].MonthNum)
	assert.Equal(t, "Jan", future[0].Label)
	assert.Equal(t, "Feb", future[1].Label)
}

func TestFitMonthlyExcludesUnknownMonths(t *testing.T) {
	records := monthlySeries(6, 1000, 250)
	records = append(records, enrich.Derive(domain.SalesRecord{
		ProductID: "P999", Month: "Month13", UnitsSold: 1,
		Price: decimal.NewFromInt(999999), OpeningStock: 10,
	}))

	m, err := FitMonthly(records)
	require.NoError(t, err)

	assert.Len(t, m.Observed, 6, "unknown month must not become an axis point")
	assert.Equal(t, 1, m.ExcludedRecords)
	assert.InDelta(t, 250, m.Slope, 1e-6, "excluded record must not skew the fit")
}

func TestFitMonthlyNeedsTwoMonths(t *testing.T) {
	_, err := FitMonthly(monthlySeries(1, 100, 0))
	require.Error(t, err)
}

// planeRecords builds records with units = 500 - 10*price + 0.5*stock
// exactly, so OLS must recover the coefficients.
func planeRecords(n int) []domain.EnrichedRecord {
	var records []domain.EnrichedRecord
	for i := 0; i < n; i++ {
		price := 5 + float64(i%7)
		stock := 100 + 2*float64((i*13)%100)
		units := 500 - 10*price + 0.5*stock
		records = append(records, enrich.Derive(domain.SalesRecord{
			ProductID:    fmt.Sprintf("P%03d", i),
			ProductName:  "Widget",
			Month:        domain.MonthOrder[i%12],
			UnitsSold:    int64(units),
			Price:        decimal.NewFromFloat(price),
			OpeningStock: int64(stock),
		}))
	}
	return records
}

func TestFitUnitsRecoversExactPlane(t *testing.T) {
	// Integer-valued by construction: 10*price is integral and stock is
	// even, so int64 truncation does not disturb the plane.
	m, err := FitUnits(planeRecords(40), 0.2, DefaultSeed)
	require.NoError(t, err)

	assert.InDelta(t, 500, m.Intercept, 1e-6)
	assert.InDelta(t, -10, m.PriceCoef, 1e-6)
	assert.InDelta(t, 0.5, m.StockCoef, 1e-6)
	assert.InDelta(t, 1, m.R2, 1e-9)
	assert.InDelta(t, 0, m.RMSE, 1e-6)
	assert.InDelta(t, 0, m.MAE, 1e-6)
	assert.Equal(t, 32, m.TrainCount)
	assert.Equal(t, 8, m.TestCount)
}

func TestFitUnitsPredict(t *testing.T) {
	m, err := FitUnits(planeRecords(40), 0.2, DefaultSeed)
	require.NoError(t, err)

	assert.InDelta(t, 500-10*8+0.5*150, m.Predict(8, 150), 1e-6)
}

func TestFitUnitsSplitIsReproducible(t *testing.T) {
	records := planeRecords(40)

	a, err := FitUnits(records, 0.2, DefaultSeed)
	require.NoError(t, err)
	b, err := FitUnits(records, 0.2, DefaultSeed)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestFitUnitsValidation(t *testing.T) {
	t.Run("bad fraction", func(t *testing.T) {
		_, err := FitUnits(planeRecords(10), 1.0, DefaultSeed)
		require.Error(t, err)
	})

	t.Run("too few records", func(t *testing.T) {
		_, err := FitUnits(planeRecords(2), 0, DefaultSeed)
		require.Error(t, err)
	})

	t.Run("no holdout evaluates on training data", func(t *testing.T) {
		m, err := FitUnits(planeRecords(5), 0, DefaultSeed)
		require.NoError(t, err)
		assert.Equal(t, 0, m.TestCount)
		assert.InDelta(t, 1, m.R2, 1e-9)
	})
}
