// Package stats provides descriptive statistics and missing-value
// handling over the numeric columns of the sales dataset.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"smartstock/pkg/contracts/domain"
)

// Summary holds the descriptive statistics of one numeric column.
// NaN entries (missing values) are ignored; Count is the number of
// usable values.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Sum    float64 `json:"sum"`
}

// Describe computes summary statistics over values, skipping NaN
// entries. An all-missing or empty column yields a zero Summary.
func Describe(values []float64) Summary {
	clean := dropNaN(values)
	if len(clean) == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range clean {
		sum += v
	}

	s := Summary{
		Count:  len(clean),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(clean, nil),
		Median: median(sorted),
		Sum:    sum,
	}
	if len(clean) > 1 {
		s.StdDev = stat.StdDev(clean, nil)
	}
	return s
}

// Correlation computes the Pearson correlation between two columns of
// equal length, pairwise-skipping entries where either side is missing.
// Fewer than two usable pairs yields NaN.
func Correlation(x, y []float64) float64 {
	var xs, ys []float64
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

// CountAbove counts values strictly greater than the threshold,
// ignoring missing entries.
func CountAbove(values []float64, threshold float64) int {
	count := 0
	for _, v := range values {
		if !math.IsNaN(v) && v > threshold {
			count++
		}
	}
	return count
}

// CountBelow counts values strictly less than the threshold, ignoring
// missing entries.
func CountBelow(values []float64, threshold float64) int {
	count := 0
	for _, v := range values {
		if !math.IsNaN(v) && v < threshold {
			count++
		}
	}
	return count
}

// Columns extracts the numeric columns of the enriched dataset keyed by
// their CSV names. Not-computable values become NaN so the missing
// value handling can see them.
func Columns(records []domain.EnrichedRecord) map[string][]float64 {
	cols := map[string][]float64{
		"Units_Sold":          make([]float64, len(records)),
		"Price":               make([]float64, len(records)),
		"Opening_Stock":       make([]float64, len(records)),
		"Total_Sales_Value":   make([]float64, len(records)),
		"Remaining_Stock":     make([]float64, len(records)),
		"Stock_Turnover_Rate": make([]float64, len(records)),
	}

	for i, r := range records {
		cols["Units_Sold"][i] = float64(r.UnitsSold)
		cols["Price"][i], _ = r.Price.Float64()
		cols["Opening_Stock"][i] = float64(r.OpeningStock)
		cols["Total_Sales_Value"][i], _ = r.TotalSalesValue.Float64()
		cols["Remaining_Stock"][i] = float64(r.RemainingStock)
		if r.StockTurnoverRate.Valid {
			cols["Stock_Turnover_Rate"][i] = r.StockTurnoverRate.Value
		} else {
			cols["Stock_Turnover_Rate"][i] = math.NaN()
		}
	}
	return cols
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func dropNaN(values []float64) []float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	return clean
}
