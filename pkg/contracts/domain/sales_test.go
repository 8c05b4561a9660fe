package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMonthIndexBijection verifies that every label in the fixed month
// list maps to its 1-based position and that no two labels collide.
func TestMonthIndexBijection(t *testing.T) {
	seen := make(map[int64]string)
	for i, label := range MonthOrder {
		idx := MonthIndex(label)
		require.True(t, idx.Valid, "label %q must resolve", label)
		assert.Equal(t, int64(i+1), idx.Value)

		prev, dup := seen[idx.Value]
		require.False(t, dup, "labels %q and %q map to the same index", prev, label)
		seen[idx.Value] = label
	}
	assert.Len(t, seen, 12)
}

func TestMonthIndexUnknownLabel(t *testing.T) {
	tests := []string{"", "January", "jan", "M13", "Dec "}
	for _, label := range tests {
		t.Run(label, func(t *testing.T) {
			idx := MonthIndex(label)
			assert.False(t, idx.Valid)
			assert.Equal(t, NAString, idx.String())
		})
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan", MonthLabel(1))
	assert.Equal(t, "Dec", MonthLabel(12))
	assert.Equal(t, "", MonthLabel(0))
	assert.Equal(t, "", MonthLabel(13))
}

func TestSalesRecordIsClean(t *testing.T) {
	clean := SalesRecord{UnitsSold: 10, Price: decimal.NewFromInt(5), OpeningStock: 100}
	assert.True(t, clean.IsClean())

	negUnits := clean
	negUnits.UnitsSold = -1
	assert.False(t, negUnits.IsClean())

	negPrice := clean
	negPrice.Price = decimal.NewFromInt(-5)
	assert.False(t, negPrice.IsClean())

	negStock := clean
	negStock.OpeningStock = -100
	assert.False(t, negStock.IsClean())
}

func TestNullTypesJSON(t *testing.T) {
	t.Run("invalid marshals to null", func(t *testing.T) {
		for _, v := range []interface{}{NullInt{}, NullFloat{}, NullDecimal{}} {
			data, err := json.Marshal(v)
			require.NoError(t, err)
			assert.Equal(t, "null", string(data))
		}
	})

	t.Run("valid round trips", func(t *testing.T) {
		data, err := json.Marshal(NullInt{Value: 7, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "7", string(data))

		var back NullInt
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, back.Valid)
		assert.Equal(t, int64(7), back.Value)

		var null NullFloat
		require.NoError(t, json.Unmarshal([]byte("null"), &null))
		assert.False(t, null.Valid)
	})
}

func TestNullTypeStrings(t *testing.T) {
	assert.Equal(t, "25.00", NullFloat{Value: 25, Valid: true}.String())
	assert.Equal(t, "12", NullInt{Value: 12, Valid: true}.String())
	assert.Equal(t, "20.00", NullDecimal{Value: decimal.NewFromInt(20), Valid: true}.String())
	assert.Equal(t, NAString, NullFloat{}.String())
}
