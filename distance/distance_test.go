// Package distance_test pins both metrics to hand-computed matrices.
package distance_test

import (
	"testing"

	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeDS wraps rows into a two-class dataset.
func makeDS(t *testing.T, rows [][]float64) *dataset.Dataset {
	t.Helper()
	tbl, err := dataset.NewTable(nil, rows)
	require.NoError(t, err)
	ds, err := dataset.New(tbl, dataset.LabelsFromInts([]int{0, 0, 1, 1}))
	require.NoError(t, err)

	return ds
}

// TestMatrix_Gower checks range normalization: every feature
// contributes its absolute difference divided by its range.
func TestMatrix_Gower(t *testing.T) {
	ds := makeDS(t, [][]float64{
		{0, 0},
		{1, 10},
		{0.5, 5},
		{0.25, 2.5},
	})

	m := distance.Matrix(ds)
	require.Equal(t, 4, m.Rows(), "matrix covers every instance")

	assert.InDelta(t, 1.0, m.At(0, 1), 1e-12, "opposite corners are maximally apart")
	assert.InDelta(t, 0.5, m.At(0, 2), 1e-12, "midpoint sits at half the range")
	assert.InDelta(t, 0.25, m.At(0, 3), 1e-12, "quarter point sits at a quarter")
	assert.InDelta(t, 0.25, m.At(2, 3), 1e-12, "distances compose along the diagonal")
}

// TestMatrix_GowerSkipsFlatFeatures ensures zero-range features do not
// dilute the mean.
func TestMatrix_GowerSkipsFlatFeatures(t *testing.T) {
	ds := makeDS(t, [][]float64{
		{0, 7},
		{1, 7},
		{2, 7},
		{0.5, 7},
	})

	m := distance.Matrix(ds)
	assert.InDelta(t, 0.5, m.At(0, 1), 1e-12, "only the informative feature counts")
	assert.InDelta(t, 1.0, m.At(0, 2), 1e-12, "full range maps to one")
}

// TestMatrix_GowerAllFlat ensures a dataset with no informative
// features collapses to the zero matrix instead of dividing by zero.
func TestMatrix_GowerAllFlat(t *testing.T) {
	ds := makeDS(t, [][]float64{
		{3, 3},
		{3, 3},
		{3, 3},
		{3, 3},
	})

	m := distance.Matrix(ds)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Zero(t, m.At(i, j), "indistinguishable instances have zero distance")
		}
	}
}

// TestMatrix_Euclidean checks the L2 metric on classic triangles.
func TestMatrix_Euclidean(t *testing.T) {
	ds := makeDS(t, [][]float64{
		{0, 0},
		{3, 4},
		{6, 8},
		{0, 1},
	})

	m := distance.Matrix(ds, distance.WithMetric(distance.Euclidean))
	assert.InDelta(t, 5.0, m.At(0, 1), 1e-12, "3-4-5 triangle")
	assert.InDelta(t, 10.0, m.At(0, 2), 1e-12, "doubled 3-4-5 triangle")
	assert.InDelta(t, 1.0, m.At(0, 3), 1e-12, "unit offset")
}

// TestMatrix_SymmetryAndDiagonal verifies structural invariants and the
// read-only row view.
func TestMatrix_SymmetryAndDiagonal(t *testing.T) {
	ds := makeDS(t, [][]float64{
		{0, 0},
		{1, 10},
		{0.5, 5},
		{0.25, 2.5},
	})

	m := distance.Matrix(ds)
	for i := 0; i < m.Rows(); i++ {
		assert.Zero(t, m.At(i, i), "diagonal must be zero")
		row := m.Row(i)
		for j := 0; j < m.Rows(); j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i), "matrix must be symmetric")
			assert.Equal(t, m.At(i, j), row[j], "row view must agree with At")
		}
	}
}

// TestFunc_OffDatasetPoint checks that the Gower closure keeps the
// dataset's normalization when measuring points that are not rows.
func TestFunc_OffDatasetPoint(t *testing.T) {
	ds := makeDS(t, [][]float64{
		{0, 0},
		{1, 10},
		{0.5, 5},
		{0.25, 2.5},
	})

	fn := distance.Func(ds)
	assert.InDelta(t, 0.75, fn([]float64{0, 0}, []float64{0.75, 7.5}), 1e-12,
		"interpolated points measure on the original ranges")
	assert.InDelta(t, 2.0, fn([]float64{0, 0}, []float64{2, 20}), 1e-12,
		"points beyond the range extrapolate linearly")
}

// TestWithMetric_Unknown ensures option misuse fails fast.
func TestWithMetric_Unknown(t *testing.T) {
	assert.Panics(t, func() { distance.WithMetric(distance.Metric(42)) }, "unknown metrics are a programming error")
}
