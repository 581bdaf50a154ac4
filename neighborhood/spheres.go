package neighborhood

import (
	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/distance"
)

// t1 grows a hypersphere on every instance out to its nearest enemy,
// then absorbs spheres fully contained in a larger same-class sphere
// (equal radii keep the lower index). The published value is the
// surviving fraction: few large spheres cover simple shapes.
func t1(ds *dataset.Dataset, dm *distance.Dense, enemy []float64) float64 {
	n := ds.Rows()
	surviving := 0
	for i := 0; i < n; i++ {
		row := dm.Row(i)
		ri := enemy[i]
		absorbed := false
		for j := 0; j < n && !absorbed; j++ {
			if j == i || ds.Label(j) != ds.Label(i) {
				continue
			}
			rj := enemy[j]
			if row[j]+ri <= rj && (rj > ri || j < i) {
				absorbed = true
			}
		}
		if !absorbed {
			surviving++
		}
	}

	return float64(surviving) / float64(n)
}

// lsc complements the mean local-set size. Instance i's local set is
// every instance strictly closer than i's nearest enemy, i itself
// included; large sets mean roomy same-class neighborhoods.
func lsc(ds *dataset.Dataset, dm *distance.Dense, enemy []float64) float64 {
	n := ds.Rows()
	total := 0
	for i := 0; i < n; i++ {
		row := dm.Row(i)
		for j := 0; j < n; j++ {
			if row[j] < enemy[i] {
				total++
			}
		}
	}

	return 1 - float64(total)/float64(n*n)
}
