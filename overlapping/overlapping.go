package overlapping

import (
	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/measure"
)

// Compute returns the class-overlap submeasures F1, F1v, F2, F3 and F4.
//
// F1 is defined on the full dataset; the remaining four decompose into
// one-vs-one pairs (ascending class-index order) and publish the mean.
func Compute(ds *dataset.Dataset, _ measure.Options) (*measure.Values, error) {
	k := ds.ClassCount()
	var sumF1v, sumF2, sumF3, sumF4 float64
	pairs := 0
	for a := 0; a < k-1; a++ {
		for b := a + 1; b < k; b++ {
			sub := ds.Pair(a, b)

			v, err := f1v(sub)
			if err != nil {
				return nil, err
			}
			sumF1v += v
			sumF2 += f2(sub)
			sumF3 += f3(sub)
			sumF4 += f4(sub)
			pairs++
		}
	}

	p := float64(pairs)
	out := measure.NewValues()
	out.Add("F1", f1(ds))
	out.Add("F1v", sumF1v/p)
	out.Add("F2", sumF2/p)
	out.Add("F3", sumF3/p)
	out.Add("F4", sumF4/p)

	return out, nil
}
