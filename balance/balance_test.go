// Package balance_test pins C1 and C2 to hand-computed distributions.
package balance_test

import (
	"testing"

	"github.com/katalvlaran/cxlib/balance"
	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withSizes builds a one-feature dataset whose classes have the given sizes.
func withSizes(t *testing.T, sizes ...int) *dataset.Dataset {
	t.Helper()
	var rows [][]float64
	var labels []int
	for c, size := range sizes {
		for i := 0; i < size; i++ {
			rows = append(rows, []float64{float64(len(rows))})
			labels = append(labels, c)
		}
	}
	tbl, err := dataset.NewTable(nil, rows)
	require.NoError(t, err)
	ds, err := dataset.New(tbl, dataset.LabelsFromInts(labels))
	require.NoError(t, err)

	return ds
}

// TestCompute_Balanced checks that uniform class sizes score zero on
// both submeasures.
func TestCompute_Balanced(t *testing.T) {
	vals, err := balance.Compute(withSizes(t, 3, 3, 3), measure.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"C1", "C2"}, vals.Names(), "canonical submeasure order")

	c1, _ := vals.Get("C1")
	assert.InDelta(t, 0, c1, 1e-12, "uniform classes carry maximal entropy")
	c2, _ := vals.Get("C2")
	assert.InDelta(t, 0, c2, 1e-12, "uniform classes have imbalance ratio one")
}

// TestCompute_Imbalanced pins a 4-vs-2 split to its closed-form values.
func TestCompute_Imbalanced(t *testing.T) {
	vals, err := balance.Compute(withSizes(t, 4, 2), measure.DefaultOptions())
	require.NoError(t, err)

	// H(2/3, 1/3) = 0.6365141683, ln 2 = 0.6931471806.
	c1, _ := vals.Get("C1")
	assert.InDelta(t, 0.0817041659, c1, 1e-9, "entropy complement of the 2:1 split")

	// IR = (1/2)(4/2 + 2/4) = 1.25, so C2 = 1 − 0.8.
	c2, _ := vals.Get("C2")
	assert.InDelta(t, 0.2, c2, 1e-12, "imbalance complement of the 2:1 split")
}

// TestCompute_WorseImbalanceScoresHigher checks the orientation: more
// skew, higher values.
func TestCompute_WorseImbalanceScoresHigher(t *testing.T) {
	mild, err := balance.Compute(withSizes(t, 4, 2), measure.DefaultOptions())
	require.NoError(t, err)
	harsh, err := balance.Compute(withSizes(t, 10, 2), measure.DefaultOptions())
	require.NoError(t, err)

	mildC1, _ := mild.Get("C1")
	harshC1, _ := harsh.Get("C1")
	assert.Greater(t, harshC1, mildC1, "C1 grows with skew")

	mildC2, _ := mild.Get("C2")
	harshC2, _ := harsh.Get("C2")
	assert.Greater(t, harshC2, mildC2, "C2 grows with skew")
}
