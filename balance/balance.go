package balance

import (
	"math"

	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/measure"
)

// Compute returns the class-balance submeasures C1 and C2.
// It never fails on a validated dataset; the error return satisfies
// the measure.Func contract.
func Compute(ds *dataset.Dataset, _ measure.Options) (*measure.Values, error) {
	out := measure.NewValues()
	out.Add("C1", c1(ds))
	out.Add("C2", c2(ds))

	return out, nil
}

// c1 is one minus the normalized entropy of the class proportions:
// 1 − H(p)/ln k. A uniform distribution scores 0.
func c1(ds *dataset.Dataset) float64 {
	n := float64(ds.Rows())
	k := ds.ClassCount()

	var h float64
	for c := 0; c < k; c++ {
		p := float64(ds.ClassSize(c)) / n
		h -= p * math.Log(p)
	}

	return 1 - h/math.Log(float64(k))
}

// c2 is one minus the reciprocal of the multi-class imbalance ratio
// IR = ((k−1)/k)·Σ n_c/(n−n_c). A uniform distribution has IR 1 and
// scores 0.
func c2(ds *dataset.Dataset) float64 {
	n := float64(ds.Rows())
	k := ds.ClassCount()

	var sum float64
	for c := 0; c < k; c++ {
		nc := float64(ds.ClassSize(c))
		sum += nc / (n - nc)
	}
	ir := sum * float64(k-1) / float64(k)

	return 1 - 1/ir
}
