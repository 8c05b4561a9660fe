package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Table is a set of equally-long numeric columns, the working shape for
// missing-value handling. Missing entries are NaN.
type Table struct {
	Names   []string
	Columns map[string][]float64
}

// NewTable builds a table from named columns, preserving name order.
func NewTable(names []string, columns map[string][]float64) Table {
	return Table{Names: names, Columns: columns}
}

// Rows returns the number of rows.
func (t Table) Rows() int {
	if len(t.Names) == 0 {
		return 0
	}
	return len(t.Columns[t.Names[0]])
}

// MissingPositions returns the row indices with a missing value in the
// named column.
func (t Table) MissingPositions(name string) []int {
	var positions []int
	for i, v := range t.Columns[name] {
		if math.IsNaN(v) {
			positions = append(positions, i)
		}
	}
	return positions
}

// MissingCount returns the total number of missing cells.
func (t Table) MissingCount() int {
	count := 0
	for _, name := range t.Names {
		count += len(t.MissingPositions(name))
	}
	return count
}

// DropRows returns a copy of the table without any row that has a
// missing value in any column.
func (t Table) DropRows() Table {
	keep := make([]int, 0, t.Rows())
	for i := 0; i < t.Rows(); i++ {
		complete := true
		for _, name := range t.Names {
			if math.IsNaN(t.Columns[name][i]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}

	out := Table{Names: t.Names, Columns: make(map[string][]float64, len(t.Names))}
	for _, name := range t.Names {
		col := make([]float64, 0, len(keep))
		for _, i := range keep {
			col = append(col, t.Columns[name][i])
		}
		out.Columns[name] = col
	}
	return out
}

// FillMean returns a copy of the table with missing values replaced by
// the column mean of the present values, rounded to two decimals. An
// all-missing column is left untouched.
func (t Table) FillMean() Table {
	out := Table{Names: t.Names, Columns: make(map[string][]float64, len(t.Names))}
	for _, name := range t.Names {
		src := t.Columns[name]
		col := append([]float64(nil), src...)

		clean := dropNaN(src)
		if len(clean) > 0 {
			mean := math.Round(stat.Mean(clean, nil)*100) / 100
			for i, v := range col {
				if math.IsNaN(v) {
					col[i] = mean
				}
			}
		}
		out.Columns[name] = col
	}
	return out
}
