// Package dataset loads and caches the sales CSV. The loader resolves
// columns by header name, rejects files with missing columns up front,
// and transparently enriches raw files so every consumer works with the
// same record shape whether it was given the raw or the processed CSV.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"smartstock/internal/enrich"
	"smartstock/pkg/contracts/domain"
)

// Raw column names. Field order in the file does not matter; names do.
var rawColumns = []string{"Product_ID", "Product_Name", "Month", "Units_Sold", "Price", "Opening_Stock"}

// Derived column names present in an already-enriched file.
var derivedColumns = []string{"Total_Sales_Value", "Month_Num", "Remaining_Stock", "Stock_Turnover_Rate", "Revenue_Per_Unit"}

// LoadRaw reads a raw sales CSV. A missing file or a missing required
// column is a hard error; no partial result is returned.
func LoadRaw(path string) ([]domain.SalesRecord, error) {
	rows, cols, err := readTable(path, rawColumns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(rows))
	for i, row := range rows {
		r, err := parseRaw(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err) // +2: header is row 1
		}
		records = append(records, r)
	}
	return records, nil
}

// Load reads a sales CSV and returns enriched records. Files that
// already carry the derived columns are parsed as-is, NA markers
// included; raw files are enriched in memory on the way in.
func Load(path string) ([]domain.EnrichedRecord, error) {
	header, err := readHeader(path)
	if err != nil {
		return nil, err
	}

	if hasColumns(header, derivedColumns) {
		return loadEnriched(path)
	}

	raw, err := LoadRaw(path)
	if err != nil {
		return nil, err
	}
	records := make([]domain.EnrichedRecord, len(raw))
	for i, r := range raw {
		records[i] = enrich.Derive(r)
	}
	return records, nil
}

func loadEnriched(path string) ([]domain.EnrichedRecord, error) {
	required := append(append([]string{}, rawColumns...), derivedColumns...)
	rows, cols, err := readTable(path, required)
	if err != nil {
		return nil, err
	}

	records := make([]domain.EnrichedRecord, 0, len(rows))
	for i, row := range rows {
		r, err := parseEnriched(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// readHeader reads just the header row of a CSV file.
func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	return header, nil
}

// readTable reads all data rows and maps the required column names to
// their positions, failing fast when any are absent.
func readTable(path string, required []string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%s: missing required columns: %s", path, strings.Join(missing, ", "))
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, cols, nil
}

func hasColumns(header []string, names []string) bool {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	for _, name := range names {
		if !present[name] {
			return false
		}
	}
	return true
}

func parseRaw(row []string, cols map[string]int) (domain.SalesRecord, error) {
	cell := func(name string) string { return strings.TrimSpace(row[cols[name]]) }

	units, err := strconv.ParseInt(cell("Units_Sold"), 10, 64)
	if err != nil {
		return domain.SalesRecord{}, fmt.Errorf("parse Units_Sold %q: %w", cell("Units_Sold"), err)
	}
	price, err := decimal.NewFromString(cell("Price"))
	if err != nil {
		return domain.SalesRecord{}, fmt.Errorf("parse Price %q: %w", cell("Price"), err)
	}
	stock, err := strconv.ParseInt(cell("Opening_Stock"), 10, 64)
	if err != nil {
		return domain.SalesRecord{}, fmt.Errorf("parse Opening_Stock %q: %w", cell("Opening_Stock"), err)
	}

	return domain.SalesRecord{
		ProductID:    cell("Product_ID"),
		ProductName:  cell("Product_Name"),
		Month:        cell("Month"),
		UnitsSold:    units,
		Price:        price,
		OpeningStock: stock,
	}, nil
}

func parseEnriched(row []string, cols map[string]int) (domain.EnrichedRecord, error) {
	raw, err := parseRaw(row, cols)
	if err != nil {
		return domain.EnrichedRecord{}, err
	}
	e := domain.EnrichedRecord{SalesRecord: raw}
	cell := func(name string) string { return strings.TrimSpace(row[cols[name]]) }

	if e.TotalSalesValue, err = decimal.NewFromString(cell("Total_Sales_Value")); err != nil {
		return domain.EnrichedRecord{}, fmt.Errorf("parse Total_Sales_Value %q: %w", cell("Total_Sales_Value"), err)
	}
	if e.RemainingStock, err = strconv.ParseInt(cell("Remaining_Stock"), 10, 64); err != nil {
		return domain.EnrichedRecord{}, fmt.Errorf("parse Remaining_Stock %q: %w", cell("Remaining_Stock"), err)
	}

	if v := cell("Month_Num"); v != domain.NAString {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return domain.EnrichedRecord{}, fmt.Errorf("parse Month_Num %q: %w", v, err)
		}
		e.MonthNum = domain.NullInt{Value: n, Valid: true}
	}
	if v := cell("Stock_Turnover_Rate"); v != domain.NAString {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.EnrichedRecord{}, fmt.Errorf("parse Stock_Turnover_Rate %q: %w", v, err)
		}
		e.StockTurnoverRate = domain.NullFloat{Value: n, Valid: true}
	}
	if v := cell("Revenue_Per_Unit"); v != domain.NAString {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return domain.EnrichedRecord{}, fmt.Errorf("parse Revenue_Per_Unit %q: %w", v, err)
		}
		e.RevenuePerUnit = domain.NullDecimal{Value: d, Valid: true}
	}

	return e, nil
}
