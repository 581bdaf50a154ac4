// SPDX-License-Identifier: MIT

// Package dataset_test verifies table construction, label coercion and
// the validation stages of dataset normalization.
package dataset_test

import (
	"testing"

	"github.com/katalvlaran/cxlib/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTable_DefaultNames ensures nil names yield V1..Vm.
func TestNewTable_DefaultNames(t *testing.T) {
	tbl, err := dataset.NewTable(nil, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err, "rectangular input must construct")

	assert.Equal(t, []string{"V1", "V2", "V3"}, tbl.Names(), "default names should enumerate columns")
	assert.Equal(t, 2, tbl.Rows(), "row count should match input")
	assert.Equal(t, 3, tbl.Cols(), "column count should match input")
}

// TestNewTable_RaggedRows ensures a ragged matrix is rejected as non-tabular.
func TestNewTable_RaggedRows(t *testing.T) {
	_, err := dataset.NewTable(nil, [][]float64{
		{1, 2},
		{3},
	})
	require.ErrorIs(t, err, dataset.ErrInvalidInput, "ragged rows are not tabular")
}

// TestNewTable_NameCountMismatch ensures names must cover every column.
func TestNewTable_NameCountMismatch(t *testing.T) {
	_, err := dataset.NewTable([]string{"a"}, [][]float64{{1, 2}})
	require.ErrorIs(t, err, dataset.ErrInvalidInput, "one name cannot label two columns")
}

// TestNewTable_NoColumns ensures a zero-width table is rejected.
func TestNewTable_NoColumns(t *testing.T) {
	_, err := dataset.NewTable(nil, [][]float64{{}, {}})
	require.ErrorIs(t, err, dataset.ErrInvalidInput, "tables need at least one column")
}

// TestNewTable_CopiesInput ensures later mutation of the source slice
// does not leak into the table.
func TestNewTable_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	tbl, err := dataset.NewTable(nil, rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1.0, tbl.Value(0, 0), "table must own its data")
}

// TestTable_ColumnAndUnknown exercises column lookup by name.
func TestTable_ColumnAndUnknown(t *testing.T) {
	tbl, err := dataset.NewTable([]string{"a", "b"}, [][]float64{{1, 10}, {2, 20}})
	require.NoError(t, err)

	col, err := tbl.Column("b")
	require.NoError(t, err, "existing column must resolve")
	assert.Equal(t, []float64{10, 20}, col, "column values should follow row order")

	_, err = tbl.Column("missing")
	require.ErrorIs(t, err, dataset.ErrUnknownColumn, "absent names must be reported")
}

// TestTable_SelectAndDrop verifies projection keeps requested order and
// drop removes exactly one name.
func TestTable_SelectAndDrop(t *testing.T) {
	tbl, err := dataset.NewTable([]string{"a", "b", "c"}, [][]float64{
		{1, 10, 100},
		{2, 20, 200},
	})
	require.NoError(t, err)

	sel, err := tbl.Select([]string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sel.Names(), "selection preserves requested order")
	assert.Equal(t, 100.0, sel.Value(0, 0), "first selected column should be c")

	rest, err := tbl.Drop("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, rest.Names(), "drop keeps the remaining columns in place")

	_, err = tbl.Select([]string{"a", "nope"})
	require.ErrorIs(t, err, dataset.ErrUnknownColumn, "selection of an absent column must fail")
}

// TestLabels_Coercion checks that every input representation lands on
// the same categorical form.
func TestLabels_Coercion(t *testing.T) {
	assert.Equal(t, []string{"1", "1.5", "-2"}, dataset.LabelsFromFloats([]float64{1.0, 1.5, -2}).Values(),
		"floats should format compactly")
	assert.Equal(t, []string{"0", "7"}, dataset.LabelsFromInts([]int{0, 7}).Values(),
		"ints should format in base 10")
	assert.Equal(t, []string{"true", "false"}, dataset.LabelsFromBools([]bool{true, false}).Values(),
		"bools should format as true/false")
	assert.Equal(t, []string{"x", "y"}, dataset.LabelsFromStrings([]string{"x", "y"}).Values(),
		"strings pass through unchanged")
}

// TestLabelsFromTable_Squeeze ensures a single column squeezes into a
// label vector while wider tables are rejected.
func TestLabelsFromTable_Squeeze(t *testing.T) {
	one, err := dataset.NewTable([]string{"y"}, [][]float64{{0}, {1}, {0}})
	require.NoError(t, err)

	l, err := dataset.LabelsFromTable(one)
	require.NoError(t, err, "single column must squeeze")
	assert.Equal(t, []string{"0", "1", "0"}, l.Values(), "squeezed labels should coerce like floats")

	two, err := dataset.NewTable([]string{"a", "b"}, [][]float64{{0, 1}})
	require.NoError(t, err)
	_, err = dataset.LabelsFromTable(two)
	require.ErrorIs(t, err, dataset.ErrInvalidInput, "two columns cannot act as one label vector")
}
