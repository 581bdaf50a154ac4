// SPDX-License-Identifier: MIT

package dataset_test

import (
	"testing"

	"github.com/katalvlaran/cxlib/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourByTwo builds a small two-class table used across the tests.
func fourByTwo(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.NewTable([]string{"a", "b"}, [][]float64{
		{0, 0},
		{0, 1},
		{1, 0},
		{1, 1},
	})
	require.NoError(t, err)

	return tbl
}

// TestNew_NilAndEmptyTable ensures non-tabular input fails first.
func TestNew_NilAndEmptyTable(t *testing.T) {
	_, err := dataset.New(nil, dataset.LabelsFromInts([]int{0, 1}))
	require.ErrorIs(t, err, dataset.ErrInvalidInput, "nil table is not tabular")
}

// TestNew_ShapeBeforeClasses ensures the shape check runs before any
// class cardinality check: mismatched single-class labels must report
// the mismatch, not the class count.
func TestNew_ShapeBeforeClasses(t *testing.T) {
	_, err := dataset.New(fourByTwo(t), dataset.LabelsFromInts([]int{0, 0, 0}))
	require.ErrorIs(t, err, dataset.ErrShapeMismatch, "3 labels cannot describe 4 rows")
}

// TestNew_SingleClass ensures one distinct class is rejected.
func TestNew_SingleClass(t *testing.T) {
	_, err := dataset.New(fourByTwo(t), dataset.LabelsFromInts([]int{5, 5, 5, 5}))
	require.ErrorIs(t, err, dataset.ErrInsufficientClasses, "one class has no complexity to measure")
}

// TestNew_TinyClass ensures a class with a single instance is rejected.
func TestNew_TinyClass(t *testing.T) {
	_, err := dataset.New(fourByTwo(t), dataset.LabelsFromInts([]int{0, 0, 0, 1}))
	require.ErrorIs(t, err, dataset.ErrInsufficientClassSize, "a singleton class breaks leave-one-out measures")
}

// TestNew_LexicographicClassOrder verifies classes are indexed by sorted
// categorical value regardless of first appearance.
func TestNew_LexicographicClassOrder(t *testing.T) {
	ds, err := dataset.New(fourByTwo(t), dataset.LabelsFromStrings([]string{"pos", "neg", "pos", "neg"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"neg", "pos"}, ds.Classes(), "classes must sort lexicographically")
	assert.Equal(t, 1, ds.Label(0), "first instance is pos, index 1")
	assert.Equal(t, 0, ds.Label(1), "second instance is neg, index 0")
	assert.Equal(t, []int{1, 3}, ds.ClassRows(0), "neg rows ascend")
	assert.Equal(t, []int{0, 2}, ds.ClassRows(1), "pos rows ascend")
	assert.Equal(t, 2, ds.MinClassSize(), "both classes hold two instances")
}

// TestNew_SanitizesNames checks rename bookkeeping: altered names appear
// in Renames, untouched ones do not.
func TestNew_SanitizesNames(t *testing.T) {
	tbl, err := dataset.NewTable([]string{"sepal length", "2x", "ok", "ok"}, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	require.NoError(t, err)

	ds, err := dataset.New(tbl, dataset.LabelsFromInts([]int{0, 0, 1, 1}))
	require.NoError(t, err)

	assert.Equal(t, []string{"sepal_length", "X2x", "ok", "ok_2"}, ds.Names(),
		"spaces become underscores, digits gain an X, duplicates a suffix")
	assert.Equal(t, map[string]string{
		"sepal_length": "sepal length",
		"X2x":          "2x",
		"ok_2":         "ok",
	}, ds.Renames(), "only altered names are recorded")
}

// TestNew_FloatLabelSqueeze ensures numeric labels coerce to compact
// categorical values.
func TestNew_FloatLabelSqueeze(t *testing.T) {
	ds, err := dataset.New(fourByTwo(t), dataset.LabelsFromFloats([]float64{1.0, 2.0, 1.0, 2.0}))
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, ds.Classes(), "1.0 must squeeze to class \"1\"")
}

// TestDataset_RowAccess verifies value accessors agree with each other.
func TestDataset_RowAccess(t *testing.T) {
	ds, err := dataset.New(fourByTwo(t), dataset.LabelsFromInts([]int{0, 1, 0, 1}))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0}, ds.Row(2), "row view should match source")
	assert.Equal(t, 1.0, ds.Value(3, 1), "cell access should match source")
	assert.Equal(t, []float64{0, 1, 0, 1}, ds.Column(1), "column copy should follow row order")
	assert.Len(t, ds.Features(), 4, "features should expose one view per instance")
}

// TestDataset_Pair extracts a one-vs-one slice and checks indexing,
// ordering and per-class bookkeeping.
func TestDataset_Pair(t *testing.T) {
	tbl, err := dataset.NewTable([]string{"x"}, [][]float64{
		{0}, {1}, {2}, {3}, {4}, {5},
	})
	require.NoError(t, err)
	ds, err := dataset.New(tbl, dataset.LabelsFromStrings([]string{"a", "b", "c", "a", "b", "c"}))
	require.NoError(t, err)

	sub := ds.Pair(2, 0) // classes "c" and "a", given out of order on purpose
	assert.Equal(t, []string{"a", "c"}, sub.Classes(), "pair re-sorts its two classes")
	assert.Equal(t, 4, sub.Rows(), "two instances per selected class")
	assert.Equal(t, []float64{0}, sub.Row(0), "relative instance order survives")
	assert.Equal(t, []float64{2}, sub.Row(1))
	assert.Equal(t, []float64{3}, sub.Row(2))
	assert.Equal(t, []float64{5}, sub.Row(3))
	assert.Equal(t, []int{0, 2}, sub.ClassRows(0), "class a occupies rows 0 and 2")
	assert.Equal(t, []int{1, 3}, sub.ClassRows(1), "class c occupies rows 1 and 3")

	assert.Panics(t, func() { ds.Pair(0, 0) }, "a class paired with itself is a programming error")
	assert.Panics(t, func() { ds.Pair(0, 9) }, "an out-of-range class is a programming error")
}
