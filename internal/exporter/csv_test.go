package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/internal/enrich"
	"smartstock/pkg/contracts/domain"
)

func sample() []domain.EnrichedRecord {
	return []domain.EnrichedRecord{
		enrich.Derive(domain.SalesRecord{
			ProductID: "P001", ProductName: "Rice 5kg", Month: "Jan",
			UnitsSold: 50, Price: decimal.NewFromInt(20), OpeningStock: 200,
		}),
		enrich.Derive(domain.SalesRecord{
			ProductID: "P002", ProductName: "Salt 1kg", Month: "Zzz",
			UnitsSold: 0, Price: decimal.NewFromInt(5), OpeningStock: 0,
		}),
	}
}

func TestWriteEnriched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "updated_dataset.csv")

	require.NoError(t, NewCSVWriter(nil).WriteEnriched(path, sample()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per record")

	assert.Equal(t, EnrichedHeader, rows[0])
	assert.Equal(t, []string{"P001", "Rice 5kg", "Jan", "1", "50", "20", "200", "1000", "20.00", "150", "25.00"}, rows[1])
	// Every not-computable value is the explicit NA marker.
	assert.Equal(t, []string{"P002", "Salt 1kg", "Zzz", "NA", "0", "5", "0", "0", "NA", "0", "NA"}, rows[2])
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sales_summary.xlsx")

	records := sample()
	findings := enrich.Validate(records)
	require.NoError(t, NewWorkbookWriter(nil).Write(path, records, findings))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
