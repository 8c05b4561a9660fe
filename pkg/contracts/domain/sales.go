package domain

import (
	"github.com/shopspring/decimal"
)

// SalesRecord represents one product's sales figures for one month.
// This is the raw row shape of the sales dataset CSV.
type SalesRecord struct {
	ProductID    string          `json:"product_id" csv:"Product_ID" validate:"required"`
	ProductName  string          `json:"product_name" csv:"Product_Name" validate:"required"`
	Month        string          `json:"month" csv:"Month" validate:"required"`
	UnitsSold    int64           `json:"units_sold" csv:"Units_Sold"`
	Price        decimal.Decimal `json:"price" csv:"Price"`
	OpeningStock int64           `json:"opening_stock" csv:"Opening_Stock"`
}

// IsClean reports whether the record carries no negative quantities.
// Negative values are advisory findings, not load failures, so this is
// informational only.
func (r SalesRecord) IsClean() bool {
	return r.UnitsSold >= 0 && !r.Price.IsNegative() && r.OpeningStock >= 0
}

// EnrichedRecord is a SalesRecord plus the attributes derived from it.
// Every derived field is a pure function of the record's own raw
// fields; enrichment never looks at other rows.
type EnrichedRecord struct {
	SalesRecord

	// TotalSalesValue is UnitsSold x Price, exact.
	TotalSalesValue decimal.Decimal `json:"total_sales_value" csv:"Total_Sales_Value"`

	// MonthNum is the 1-based position of Month in the Jan..Dec list.
	// Unresolved (Valid=false) when the label is outside that list.
	MonthNum NullInt `json:"month_num" csv:"Month_Num"`

	// RemainingStock is OpeningStock - UnitsSold. A negative value
	// means more was sold than stocked and is kept as-is.
	RemainingStock int64 `json:"remaining_stock" csv:"Remaining_Stock"`

	// StockTurnoverRate is UnitsSold / OpeningStock x 100 rounded to
	// two decimals. Not computable when OpeningStock is zero.
	StockTurnoverRate NullFloat `json:"stock_turnover_rate" csv:"Stock_Turnover_Rate"`

	// RevenuePerUnit is TotalSalesValue / UnitsSold. Not computable
	// when UnitsSold is zero.
	RevenuePerUnit NullDecimal `json:"revenue_per_unit" csv:"Revenue_Per_Unit"`
}

// MonthOrder is the fixed, ordered set of month labels the dataset may
// use. MonthNum derivation is a bijection from this list to 1..12.
var MonthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthIndex resolves a month label to its 1-based position in
// MonthOrder. Labels outside the list yield an unresolved index rather
// than a default; callers must not coerce that to zero.
func MonthIndex(label string) NullInt {
	for i, m := range MonthOrder {
		if m == label {
			return NullInt{Value: int64(i + 1), Valid: true}
		}
	}
	return NullInt{}
}

// MonthLabel returns the label for a 1-based month number, or "" when
// the number is out of range.
func MonthLabel(num int64) string {
	if num < 1 || num > int64(len(MonthOrder)) {
		return ""
	}
	return MonthOrder[num-1]
}
