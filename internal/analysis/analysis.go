// Package analysis computes the filtering, grouping, sorting and pivot
// views of the enriched dataset that the explorer CLI, the charts and
// the dashboard all share. Tabular operations go through gota
// dataframes; the conversions in and out keep NA values as NaN so
// unresolved months never masquerade as real numbers.
package analysis

import (
	"math"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"smartstock/pkg/contracts/domain"
)

// ProductTotal is revenue and units aggregated over one product.
type ProductTotal struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Units   float64 `json:"units"`
}

// MonthlyTotal is revenue and units aggregated over one calendar month.
type MonthlyTotal struct {
	Month    string  `json:"month"`
	MonthNum int64   `json:"month_num"`
	Revenue  float64 `json:"revenue"`
	Units    float64 `json:"units"`
}

// RiskEntry is a record whose stock turnover rate exceeds a threshold.
type RiskEntry struct {
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	Month          string  `json:"month"`
	TurnoverRate   float64 `json:"turnover_rate"`
	RemainingStock int64   `json:"remaining_stock"`
}

// Frame builds a gota dataframe over the enriched records. Unresolved
// month numbers and not-computable turnover rates become NaN.
func Frame(records []domain.EnrichedRecord) dataframe.DataFrame {
	n := len(records)
	ids := make([]string, n)
	names := make([]string, n)
	months := make([]string, n)
	monthNums := make([]float64, n)
	units := make([]int, n)
	prices := make([]float64, n)
	stocks := make([]int, n)
	totals := make([]float64, n)
	remaining := make([]int, n)
	turnover := make([]float64, n)

	for i, r := range records {
		ids[i] = r.ProductID
		names[i] = r.ProductName
		months[i] = r.Month
		if r.MonthNum.Valid {
			monthNums[i] = float64(r.MonthNum.Value)
		} else {
			monthNums[i] = math.NaN()
		}
		units[i] = int(r.UnitsSold)
		prices[i], _ = r.Price.Float64()
		stocks[i] = int(r.OpeningStock)
		totals[i], _ = r.TotalSalesValue.Float64()
		remaining[i] = int(r.RemainingStock)
		if r.StockTurnoverRate.Valid {
			turnover[i] = r.StockTurnoverRate.Value
		} else {
			turnover[i] = math.NaN()
		}
	}

	return dataframe.New(
		series.New(ids, series.String, "Product_ID"),
		series.New(names, series.String, "Product_Name"),
		series.New(months, series.String, "Month"),
		series.New(monthNums, series.Float, "Month_Num"),
		series.New(units, series.Int, "Units_Sold"),
		series.New(prices, series.Float, "Price"),
		series.New(stocks, series.Int, "Opening_Stock"),
		series.New(totals, series.Float, "Total_Sales_Value"),
		series.New(remaining, series.Int, "Remaining_Stock"),
		series.New(turnover, series.Float, "Stock_Turnover_Rate"),
	)
}

// TopProductsByRevenue aggregates revenue and units per product and
// returns the top n products by revenue, descending. n <= 0 returns
// all products.
func TopProductsByRevenue(records []domain.EnrichedRecord, n int) []ProductTotal {
	if len(records) == 0 {
		return nil
	}

	grouped := Frame(records).
		GroupBy("Product_Name").
		Aggregation(
			[]dataframe.AggregationType{dataframe.Aggregation_SUM, dataframe.Aggregation_SUM},
			[]string{"Total_Sales_Value", "Units_Sold"},
		).
		Arrange(dataframe.RevSort("Total_Sales_Value_SUM"))

	nameCol := grouped.Col("Product_Name")
	revCol := grouped.Col("Total_Sales_Value_SUM")
	unitsCol := grouped.Col("Units_Sold_SUM")

	count := grouped.Nrow()
	if n > 0 && n < count {
		count = n
	}

	totals := make([]ProductTotal, 0, count)
	for i := 0; i < count; i++ {
		totals = append(totals, ProductTotal{
			Name:    nameCol.Elem(i).String(),
			Revenue: revCol.Elem(i).Float(),
			Units:   unitsCol.Elem(i).Float(),
		})
	}
	return totals
}

// MonthlyTotals aggregates revenue and units per month label and
// returns them in calendar order. Records whose label is outside the
// fixed month set have no axis position and are excluded; the second
// return value reports how many were.
func MonthlyTotals(records []domain.EnrichedRecord) ([]MonthlyTotal, int) {
	if len(records) == 0 {
		return nil, 0
	}

	grouped := Frame(records).
		GroupBy("Month").
		Aggregation(
			[]dataframe.AggregationType{dataframe.Aggregation_SUM, dataframe.Aggregation_SUM},
			[]string{"Total_Sales_Value", "Units_Sold"},
		)

	monthCol := grouped.Col("Month")
	revCol := grouped.Col("Total_Sales_Value_SUM")
	unitsCol := grouped.Col("Units_Sold_SUM")

	var totals []MonthlyTotal
	excluded := 0
	for i := 0; i < grouped.Nrow(); i++ {
		label := monthCol.Elem(i).String()
		idx := domain.MonthIndex(label)
		if !idx.Valid {
			excluded++
			continue
		}
		totals = append(totals, MonthlyTotal{
			Month:    label,
			MonthNum: idx.Value,
			Revenue:  revCol.Elem(i).Float(),
			Units:    unitsCol.Elem(i).Float(),
		})
	}

	sort.Slice(totals, func(i, j int) bool { return totals[i].MonthNum < totals[j].MonthNum })

	// Excluded counts records, not groups.
	if excluded > 0 {
		excluded = 0
		for _, r := range records {
			if !r.MonthNum.Valid {
				excluded++
			}
		}
	}
	return totals, excluded
}

// FilterUnitsAbove returns the rows whose Units_Sold strictly exceeds
// the threshold, in input order.
func FilterUnitsAbove(records []domain.EnrichedRecord, threshold int) dataframe.DataFrame {
	return Frame(records).Filter(dataframe.F{
		Colname:    "Units_Sold",
		Comparator: series.Greater,
		Comparando: threshold,
	})
}

// TopSellers sorts the dataset by Units_Sold descending and returns the
// first n rows.
func TopSellers(records []domain.EnrichedRecord, n int) dataframe.DataFrame {
	sorted := Frame(records).Arrange(dataframe.RevSort("Units_Sold"))
	if n > 0 && n < sorted.Nrow() {
		return sorted.Subset(intRange(n))
	}
	return sorted
}

// SortByProductAndMonth sorts by product name then calendar month, the
// multi-key ordering used by the explorer output.
func SortByProductAndMonth(records []domain.EnrichedRecord) dataframe.DataFrame {
	return Frame(records).Arrange(
		dataframe.Sort("Product_Name"),
		dataframe.Sort("Month_Num"),
	)
}

// PivotUnitsByProductMonth builds a product x month table of units
// sold. The first returned row is the header (Product_Name, Jan..Dec);
// cells are zero-filled. Records with unknown month labels are not
// representable in the pivot and are skipped.
func PivotUnitsByProductMonth(records []domain.EnrichedRecord) [][]string {
	type key struct {
		product string
		month   int64
	}
	sums := make(map[key]int64)
	productSet := make(map[string]bool)

	for _, r := range records {
		if !r.MonthNum.Valid {
			continue
		}
		sums[key{r.ProductName, r.MonthNum.Value}] += r.UnitsSold
		productSet[r.ProductName] = true
	}

	products := make([]string, 0, len(productSet))
	for p := range productSet {
		products = append(products, p)
	}
	sort.Strings(products)

	header := append([]string{"Product_Name"}, domain.MonthOrder...)
	rows := [][]string{header}
	for _, p := range products {
		row := make([]string, 0, len(header))
		row = append(row, p)
		for m := int64(1); m <= 12; m++ {
			row = append(row, strconv.FormatInt(sums[key{p, m}], 10))
		}
		rows = append(rows, row)
	}
	return rows
}

// StockoutRisk returns records whose turnover rate is a numeric value
// strictly above the threshold, sorted by rate descending. Records with
// not-computable turnover are never included.
func StockoutRisk(records []domain.EnrichedRecord, threshold float64) []RiskEntry {
	var entries []RiskEntry
	for _, r := range records {
		if r.StockTurnoverRate.Valid && r.StockTurnoverRate.Value > threshold {
			entries = append(entries, RiskEntry{
				ProductID:      r.ProductID,
				ProductName:    r.ProductName,
				Month:          r.Month,
				TurnoverRate:   r.StockTurnoverRate.Value,
				RemainingStock: r.RemainingStock,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].TurnoverRate > entries[j].TurnoverRate })
	return entries
}

func intRange(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

