package stats

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/internal/enrich"
	"smartstock/pkg/contracts/domain"
)

func TestDescribe(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
		assert.Equal(t, 8, s.Count)
		assert.Equal(t, 2.0, s.Min)
		assert.Equal(t, 9.0, s.Max)
		assert.InDelta(t, 5.0, s.Mean, 1e-12)
		assert.InDelta(t, 4.5, s.Median, 1e-12)
		assert.InDelta(t, 40.0, s.Sum, 1e-12)
		// Sample standard deviation, n-1 divisor.
		assert.InDelta(t, 2.138, s.StdDev, 0.001)
	})

	t.Run("odd count median", func(t *testing.T) {
		s := Describe([]float64{3, 1, 2})
		assert.Equal(t, 2.0, s.Median)
	})

	t.Run("NaN entries are skipped", func(t *testing.T) {
		s := Describe([]float64{1, math.NaN(), 3})
		assert.Equal(t, 2, s.Count)
		assert.Equal(t, 2.0, s.Mean)
	})

	t.Run("empty column", func(t *testing.T) {
		assert.Equal(t, Summary{}, Describe(nil))
		assert.Equal(t, Summary{}, Describe([]float64{math.NaN()}))
	})
}

func TestCorrelation(t *testing.T) {
	t.Run("perfect positive", func(t *testing.T) {
		r := Correlation([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
		assert.InDelta(t, 1.0, r, 1e-12)
	})

	t.Run("perfect negative", func(t *testing.T) {
		r := Correlation([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})
		assert.InDelta(t, -1.0, r, 1e-12)
	})

	t.Run("missing pairs are skipped", func(t *testing.T) {
		r := Correlation([]float64{1, math.NaN(), 3, 4}, []float64{2, 100, 6, 8})
		assert.InDelta(t, 1.0, r, 1e-12)
	})

	t.Run("too few pairs", func(t *testing.T) {
		assert.True(t, math.IsNaN(Correlation([]float64{1}, []float64{2})))
	})
}

func TestThresholdCounts(t *testing.T) {
	values := []float64{10, 150, 200, math.NaN(), 90}
	assert.Equal(t, 2, CountAbove(values, 100))
	assert.Equal(t, 2, CountBelow(values, 100))
}

func TestColumns(t *testing.T) {
	records := []domain.EnrichedRecord{
		enrich.Derive(domain.SalesRecord{ProductID: "P001", Month: "Jan", UnitsSold: 50, Price: decimal.NewFromInt(20), OpeningStock: 200}),
		enrich.Derive(domain.SalesRecord{ProductID: "P002", Month: "Feb", UnitsSold: 10, Price: decimal.NewFromInt(5), OpeningStock: 0}),
	}

	cols := Columns(records)
	assert.Equal(t, []float64{50, 10}, cols["Units_Sold"])
	assert.Equal(t, []float64{1000, 50}, cols["Total_Sales_Value"])
	assert.Equal(t, 25.0, cols["Stock_Turnover_Rate"][0])
	assert.True(t, math.IsNaN(cols["Stock_Turnover_Rate"][1]), "not-computable turnover must surface as NaN")
}

func TestTableMissingHandling(t *testing.T) {
	table := NewTable([]string{"a", "b"}, map[string][]float64{
		"a": {1, math.NaN(), 3, 4},
		"b": {10, 20, math.NaN(), 40},
	})

	t.Run("detection", func(t *testing.T) {
		assert.Equal(t, []int{1}, table.MissingPositions("a"))
		assert.Equal(t, []int{2}, table.MissingPositions("b"))
		assert.Equal(t, 2, table.MissingCount())
		assert.Equal(t, 4, table.Rows())
	})

	t.Run("drop rows", func(t *testing.T) {
		dropped := table.DropRows()
		assert.Equal(t, 2, dropped.Rows())
		assert.Equal(t, []float64{1, 4}, dropped.Columns["a"])
		assert.Equal(t, []float64{10, 40}, dropped.Columns["b"])
	})

	t.Run("fill mean", func(t *testing.T) {
		filled := table.FillMean()
		require.Equal(t, 4, filled.Rows())
		// mean of 1,3,4 = 2.67 (rounded to 2dp)
		assert.InDelta(t, 2.67, filled.Columns["a"][1], 1e-12)
		// mean of 10,20,40 = 23.33
		assert.InDelta(t, 23.33, filled.Columns["b"][2], 1e-12)
		// Present values untouched.
		assert.Equal(t, 1.0, filled.Columns["a"][0])
	})

	t.Run("original table unchanged", func(t *testing.T) {
		assert.True(t, math.IsNaN(table.Columns["a"][1]))
	})
}
