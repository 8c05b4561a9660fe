package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/internal/dataset"
	"smartstock/pkg/contracts/domain"
)

const dashboardCSV = `Product_ID,Product_Name,Month,Units_Sold,Price,Opening_Stock
P001,Rice 5kg,Jan,100,20.00,200
P002,Salt 1kg,Jan,-5,2.50,100
P001,Rice 5kg,Feb,150,20.00,180
`

func newTestDashboard(t *testing.T) *Dashboard {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(dashboardCSV), 0644))
	return NewDashboard(dataset.NewCache(nil), path, 70, nil)
}

func TestSummary(t *testing.T) {
	d := newTestDashboard(t)

	summary, err := d.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Records)
	assert.Equal(t, 2, summary.Products)
	assert.Equal(t, int64(245), summary.TotalUnits)
	// 100*20 + (-5)*2.50 + 150*20 = 4987.50.
	assert.InDelta(t, 4987.5, summary.TotalRevenue, 1e-9)

	tags := make([]domain.FindingTag, 0, len(summary.Findings))
	for _, f := range summary.Findings {
		tags = append(tags, f.Tag)
	}
	assert.Contains(t, tags, domain.FindingNegativeUnits)
}

func TestTopProducts(t *testing.T) {
	d := newTestDashboard(t)

	products, err := d.TopProducts(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Rice 5kg", products[0].Name)
	assert.InDelta(t, 5000.0, products[0].Revenue, 1e-9)
}

func TestMonthlyTrend(t *testing.T) {
	d := newTestDashboard(t)

	monthly, err := d.MonthlyTrend(context.Background())
	require.NoError(t, err)

	require.Len(t, monthly, 2)
	assert.Equal(t, "Jan", monthly[0].Month)
	assert.Equal(t, "Feb", monthly[1].Month)
}

func TestStockoutRiskDefaultThreshold(t *testing.T) {
	d := newTestDashboard(t)

	// Rice Feb turns over 150/180 = 83.33%, above the default 70.
	entries, err := d.StockoutRisk(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Feb", entries[0].Month)
}

func TestRecordsFilter(t *testing.T) {
	d := newTestDashboard(t)
	ctx := context.Background()

	records, err := d.Records(ctx, RecordFilter{Product: "RICE 5KG"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = d.Records(ctx, RecordFilter{Month: "Jan"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = d.Records(ctx, RecordFilter{MinUnits: 120})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Feb", records[0].Month)

	records, err = d.Records(ctx, RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoadErrorPropagates(t *testing.T) {
	d := NewDashboard(dataset.NewCache(nil), filepath.Join(t.TempDir(), "missing.csv"), 70, nil)

	_, err := d.Summary(context.Background())
	require.Error(t, err)
}
