package charts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/internal/enrich"
	"smartstock/pkg/contracts/domain"
)

func chartRecords() []domain.EnrichedRecord {
	cases := []struct {
		id, name, month string
		units           int64
		price           string
		stock           int64
	}{
		{"P001", "Rice 5kg", "Jan", 120, "25.00", 150},
		{"P002", "Sugar 1kg", "Jan", 300, "10.00", 320},
		{"P001", "Rice 5kg", "Feb", 90, "25.00", 200},
		{"P003", "Flour 2kg", "Feb", 40, "15.50", 500},
		{"P002", "Sugar 1kg", "Mar", 280, "10.00", 300},
	}

	records := make([]domain.EnrichedRecord, 0, len(cases))
	for _, c := range cases {
		records = append(records, enrich.Derive(domain.SalesRecord{
			ProductID:    c.id,
			ProductName:  c.name,
			Month:        c.month,
			UnitsSold:    c.units,
			Price:        decimal.RequireFromString(c.price),
			OpeningStock: c.stock,
		}))
	}
	return records
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, path)
	assert.Positive(t, info.Size(), path)
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()

	err := RenderAll(context.Background(), nil, chartRecords(), dir)
	require.NoError(t, err)

	for _, name := range Outputs {
		assertNonEmptyFile(t, filepath.Join(dir, filepath.FromSlash(name)))
	}
}

func TestRevenueByProductPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revenue.png")
	require.NoError(t, RevenueByProductPNG(chartRecords(), path))
	assertNonEmptyFile(t, path)
}

func TestMonthlyTrendHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trend.html")
	require.NoError(t, MonthlyTrendHTML(chartRecords(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "echarts")
}

func TestTurnoverHeatmapHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatmap.html")
	require.NoError(t, TurnoverHeatmapHTML(chartRecords(), path))
	assertNonEmptyFile(t, path)
}
