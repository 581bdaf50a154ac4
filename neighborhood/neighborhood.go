package neighborhood

import (
	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/distance"
	"github.com/katalvlaran/cxlib/measure"
)

// Compute returns the neighborhood submeasures N1, N2, N3, N4, T1 and
// LSC. It never fails on a validated dataset; the error return
// satisfies the measure.Func contract.
func Compute(ds *dataset.Dataset, opts measure.Options) (*measure.Values, error) {
	opts = opts.Normalize()
	dm := distance.Matrix(ds, distance.WithMetric(opts.Metric))
	enemy := nearestEnemyDist(ds, dm)

	out := measure.NewValues()
	out.Add("N1", n1(ds, dm))
	out.Add("N2", n2(ds, dm))
	out.Add("N3", n3(ds, dm))
	out.Add("N4", n4(ds, opts))
	out.Add("T1", t1(ds, dm, enemy))
	out.Add("LSC", lsc(ds, dm, enemy))

	return out, nil
}

// nearestEnemyDist returns, per instance, the distance to its closest
// instance of another class. Ties resolve to the first (lowest index)
// candidate, which cannot change the distance itself.
func nearestEnemyDist(ds *dataset.Dataset, dm *distance.Dense) []float64 {
	n := ds.Rows()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		row := dm.Row(i)
		found := false
		for j := 0; j < n; j++ {
			if ds.Label(j) == ds.Label(i) {
				continue
			}
			if !found || row[j] < out[i] {
				out[i] = row[j]
				found = true
			}
		}
	}

	return out
}

// nearestNeighbor returns the index of i's closest other instance,
// optionally restricted to a class predicate. Ties go to the lower
// index. Returns -1 when no candidate matches.
func nearestNeighbor(dm *distance.Dense, i int, match func(j int) bool) int {
	row := dm.Row(i)
	best := -1
	for j := 0; j < dm.Rows(); j++ {
		if j == i || !match(j) {
			continue
		}
		if best < 0 || row[j] < row[best] {
			best = j
		}
	}

	return best
}
