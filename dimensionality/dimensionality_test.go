// Package dimensionality_test pins T2, T3 and T4 on datasets with a
// known covariance spectrum.
package dimensionality_test

import (
	"testing"

	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/dimensionality"
	"github.com/katalvlaran/cxlib/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoClass wraps four rows into a two-class dataset.
func twoClass(t *testing.T, rows [][]float64) *dataset.Dataset {
	t.Helper()
	tbl, err := dataset.NewTable(nil, rows)
	require.NoError(t, err)
	ds, err := dataset.New(tbl, dataset.LabelsFromInts([]int{0, 0, 1, 1}))
	require.NoError(t, err)

	return ds
}

// TestCompute_DominantDirection: one direction carries 99.8% of the
// variance, so a single component suffices.
func TestCompute_DominantDirection(t *testing.T) {
	ds := twoClass(t, [][]float64{
		{-3, 0.1},
		{-1, -0.1},
		{1, -0.1},
		{3, 0.1},
	})

	vals, err := dimensionality.Compute(ds, measure.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"T2", "T3", "T4"}, vals.Names(), "canonical submeasure order")

	t2, _ := vals.Get("T2")
	assert.InDelta(t, 0.5, t2, 1e-12, "two features over four instances")
	t3, _ := vals.Get("T3")
	assert.InDelta(t, 0.25, t3, 1e-12, "one retained component over four instances")
	t4, _ := vals.Get("T4")
	assert.InDelta(t, 0.5, t4, 1e-12, "one retained component over two features")
}

// TestCompute_IsotropicNeedsAll: two equal-variance directions force
// both components in.
func TestCompute_IsotropicNeedsAll(t *testing.T) {
	ds := twoClass(t, [][]float64{
		{-1, -1},
		{1, -1},
		{-1, 1},
		{1, 1},
	})

	vals, err := dimensionality.Compute(ds, measure.DefaultOptions())
	require.NoError(t, err)

	t3, _ := vals.Get("T3")
	assert.InDelta(t, 0.5, t3, 1e-12, "both components retained over four instances")
	t4, _ := vals.Get("T4")
	assert.InDelta(t, 1.0, t4, 1e-12, "no direction can be dropped")
}

// TestCompute_NoVariance: constant data retains zero components.
func TestCompute_NoVariance(t *testing.T) {
	ds := twoClass(t, [][]float64{
		{5, 5},
		{5, 5},
		{5, 5},
		{5, 5},
	})

	vals, err := dimensionality.Compute(ds, measure.DefaultOptions())
	require.NoError(t, err)

	t3, _ := vals.Get("T3")
	assert.Zero(t, t3, "nothing to retain without variance")
	t4, _ := vals.Get("T4")
	assert.Zero(t, t4, "nothing to retain without variance")
}
