package distance

import "github.com/katalvlaran/cxlib/dataset"

// gowerFunc builds the Gower dissimilarity for ds: the mean over
// usable features of |aj−bj| / range(j). A feature whose range is zero
// carries no information and is skipped; when every feature is skipped
// all distances collapse to zero.
func gowerFunc(ds *dataset.Dataset) func(a, b []float64) float64 {
	n, m := ds.Rows(), ds.Cols()

	// Per-feature ranges over the whole dataset, computed once.
	invRange := make([]float64, m)
	usable := 0
	for j := 0; j < m; j++ {
		lo, hi := ds.Value(0, j), ds.Value(0, j)
		for i := 1; i < n; i++ {
			v := ds.Value(i, j)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if hi > lo {
			invRange[j] = 1 / (hi - lo)
			usable++
		}
	}
	if usable == 0 {
		return func(a, b []float64) float64 { return 0 }
	}
	scale := 1 / float64(usable)

	return func(a, b []float64) float64 {
		var sum float64
		for j, inv := range invRange {
			if inv == 0 {
				continue
			}
			d := a[j] - b[j]
			if d < 0 {
				d = -d
			}
			sum += d * inv
		}

		return sum * scale
	}
}
