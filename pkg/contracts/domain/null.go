package domain

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// NAString is the marker written to CSV cells whose value could not be
// computed (division by zero, unresolved month label). It is parsed
// back to an invalid null value on load.
const NAString = "NA"

// NullInt is an int64 that may be unresolved. The zero value is
// unresolved, so a missing derivation is never confused with 0.
type NullInt struct {
	Value int64
	Valid bool
}

// String renders the value for CSV output, using the NA marker when
// unresolved.
func (n NullInt) String() string {
	if !n.Valid {
		return NAString
	}
	return strconv.FormatInt(n.Value, 10)
}

// MarshalJSON renders unresolved values as null.
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts null or a number.
func (n *NullInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullInt{}
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// NullFloat is a float64 that may be not-computable.
type NullFloat struct {
	Value float64
	Valid bool
}

// String renders the value with two decimals for CSV output, using the
// NA marker when not computable.
func (n NullFloat) String() string {
	if !n.Valid {
		return NAString
	}
	return strconv.FormatFloat(n.Value, 'f', 2, 64)
}

// MarshalJSON renders not-computable values as null.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts null or a number.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullFloat{}
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// NullDecimal is a decimal value that may be not-computable. It wraps
// shopspring's decimal rather than NullDecimal so the CSV rendering and
// JSON null behavior match the other null types here.
type NullDecimal struct {
	Value decimal.Decimal
	Valid bool
}

// String renders the value with two decimals for CSV output, using the
// NA marker when not computable.
func (n NullDecimal) String() string {
	if !n.Valid {
		return NAString
	}
	return n.Value.StringFixed(2)
}

// MarshalJSON renders not-computable values as null.
func (n NullDecimal) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts null or a decimal number.
func (n *NullDecimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullDecimal{}
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
