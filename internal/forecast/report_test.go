package forecast

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	records := monthlySeries(6, 1000, 250)
	monthly, err := FitMonthly(records)
	require.NoError(t, err)

	units, err := FitUnits(planeRecords(40), 0.2, DefaultSeed)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "forecast_report.txt")
	require.NoError(t, WriteReport(monthly, monthly.Forecast(3), units, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "SALES FORECAST REPORT")
	assert.Contains(t, text, "MONTHLY SALES TREND")
	assert.Contains(t, text, "PROJECTED REVENUE")
	assert.Contains(t, text, "UNITS DEMAND MODEL")
	assert.Contains(t, text, "Jul")
	assert.Contains(t, text, "R-squared")
}
