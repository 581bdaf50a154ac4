package neighborhood

import (
	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/distance"
	"github.com/katalvlaran/cxlib/measure"
)

// rngStreamN4 tags N4's draws so other seeded measures never share its
// sequence.
const rngStreamN4 = 0x4E34

// n2 compares same-class to other-class nearest-neighbor distances:
// r = Σ intra / Σ extra, published as r/(1+r). Tight clusters far from
// their enemies score near 0; interleaved classes push toward 1.
// A dataset where both sums vanish (all instances coincide) scores 0.
func n2(ds *dataset.Dataset, dm *distance.Dense) float64 {
	n := ds.Rows()
	var intra, extra float64
	for i := 0; i < n; i++ {
		row := dm.Row(i)
		same := nearestNeighbor(dm, i, func(j int) bool { return ds.Label(j) == ds.Label(i) })
		other := nearestNeighbor(dm, i, func(j int) bool { return ds.Label(j) != ds.Label(i) })
		intra += row[same]
		extra += row[other]
	}

	if extra == 0 {
		if intra == 0 {
			return 0
		}

		return 1 // enemies coincide while friends spread: maximal confusion
	}
	r := intra / extra

	return r / (1 + r)
}

// n3 is the leave-one-out 1-NN error rate.
func n3(ds *dataset.Dataset, dm *distance.Dense) float64 {
	n := ds.Rows()
	errs := 0
	for i := 0; i < n; i++ {
		j := nearestNeighbor(dm, i, func(int) bool { return true })
		if ds.Label(j) != ds.Label(i) {
			errs++
		}
	}

	return float64(errs) / float64(n)
}

// n4 generates one synthetic point per instance by interpolating
// between two random members of that instance's class, classifies it
// by 1-NN against the originals, and reports the error rate. Draws
// come from the seeded generator; distances to synthetic points reuse
// the dataset's own normalization.
func n4(ds *dataset.Dataset, opts measure.Options) float64 {
	n, m := ds.Rows(), ds.Cols()
	rng := measure.NewRNG(opts.Seed, rngStreamN4)
	dist := distance.Func(ds, distance.WithMetric(opts.Metric))

	point := make([]float64, m)
	errs := 0
	for i := 0; i < n; i++ {
		c := ds.Label(i)
		rows := ds.ClassRows(c)
		a := ds.Row(rows[rng.Intn(len(rows))])
		b := ds.Row(rows[rng.Intn(len(rows))])
		t := rng.Float64()
		for j := 0; j < m; j++ {
			point[j] = a[j] + t*(b[j]-a[j])
		}

		// 1-NN over the originals, lowest index on ties.
		best, bestD := -1, 0.0
		for j := 0; j < n; j++ {
			if d := dist(point, ds.Row(j)); best < 0 || d < bestD {
				best, bestD = j, d
			}
		}
		if ds.Label(best) != c {
			errs++
		}
	}

	return float64(errs) / float64(n)
}
