package dataset

import (
	"fmt"
	"strconv"
)

// Table is a rectangular block of float64 values with named columns.
// Rows are instances, columns are input attributes. A Table is constructed
// once and read afterwards; no method mutates it.
type Table struct {
	names []string    // one unique name per column
	rows  [][]float64 // rectangular; rows[i][j] is instance i, attribute j
}

// NewTable builds a Table from column names and row data.
//
// Contracts:
//   - names may be nil, in which case columns are named V1..Vm.
//   - every row must have the same length, and that length must be ≥ 1.
//   - if names is non-nil, len(names) must equal the row length.
//
// Returns ErrInvalidInput when the data is not tabular under those rules.
// Row data is copied; the caller keeps ownership of its slices.
//
// Complexity: O(n·m) time and space.
func NewTable(names []string, rows [][]float64) (*Table, error) {
	// Column count comes from the first row, or from names for empty tables.
	cols := len(names)
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	if cols == 0 {
		return nil, ErrInvalidInput
	}
	if names != nil && len(names) != cols {
		return nil, ErrInvalidInput
	}

	// Default names V1..Vm when the caller supplied none.
	if names == nil {
		names = make([]string, cols)
		for j := range names {
			names[j] = "V" + strconv.Itoa(j+1)
		}
	}

	t := &Table{
		names: append([]string(nil), names...),
		rows:  make([][]float64, len(rows)),
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrInvalidInput // ragged input
		}
		t.rows[i] = append([]float64(nil), row...)
	}

	return t, nil
}

// Rows returns the number of instances.
func (t *Table) Rows() int { return len(t.rows) }

// Cols returns the number of attributes.
func (t *Table) Cols() int { return len(t.names) }

// Names returns a copy of the column names in column order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Value returns the cell at row i, column j. Indices must be in range.
func (t *Table) Value(i, j int) float64 { return t.rows[i][j] }

// Row returns a copy of row i.
func (t *Table) Row(i int) []float64 { return append([]float64(nil), t.rows[i]...) }

// index resolves a column name to its position, or -1 when absent.
func (t *Table) index(name string) int {
	for j, n := range t.names {
		if n == name {
			return j
		}
	}

	return -1
}

// Column returns a copy of the named column's values.
// Returns ErrUnknownColumn (wrapped with the name) when the column is absent.
//
// Complexity: O(n + m).
func (t *Table) Column(name string) ([]float64, error) {
	j := t.index(name)
	if j < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	col := make([]float64, len(t.rows))
	for i, row := range t.rows {
		col[i] = row[j]
	}

	return col, nil
}

// Select builds a new Table holding only the named columns, in the given
// order. Returns ErrUnknownColumn when any name is absent and ErrInvalidInput
// when the selection is empty.
//
// Complexity: O(n·k) for k selected columns.
func (t *Table) Select(names []string) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrInvalidInput
	}
	idx := make([]int, len(names))
	for k, name := range names {
		j := t.index(name)
		if j < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		idx[k] = j
	}

	rows := make([][]float64, len(t.rows))
	for i, row := range t.rows {
		sub := make([]float64, len(idx))
		for k, j := range idx {
			sub[k] = row[j]
		}
		rows[i] = sub
	}
	out := &Table{names: append([]string(nil), names...), rows: rows}

	return out, nil
}

// Drop builds a new Table without the named column, preserving the order of
// the remaining columns. Returns ErrUnknownColumn when the column is absent
// and ErrInvalidInput when dropping would leave no columns.
func (t *Table) Drop(name string) (*Table, error) {
	if t.index(name) < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	keep := make([]string, 0, len(t.names)-1)
	for _, n := range t.names {
		if n != name {
			keep = append(keep, n)
		}
	}

	return t.Select(keep)
}
