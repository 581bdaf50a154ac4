package linearity

import (
	"math/rand"

	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/linalg"
	"github.com/katalvlaran/cxlib/measure"
)

// rngStreamL3 tags L3's draws so other seeded measures never share its
// sequence.
const rngStreamL3 = 0x4C33

// Compute returns the linear separability submeasures L1, L2 and L3 as
// means over all one-vs-one class pairs.
func Compute(ds *dataset.Dataset, opts measure.Options) (*measure.Values, error) {
	opts = opts.Normalize()
	rng := measure.NewRNG(opts.Seed, rngStreamL3)

	k := ds.ClassCount()
	var sumL1, sumL2, sumL3 float64
	pairs := 0
	for a := 0; a < k-1; a++ {
		for b := a + 1; b < k; b++ {
			l1, l2, l3 := pairMeasures(ds.Pair(a, b), opts, rng)
			sumL1 += l1
			sumL2 += l2
			sumL3 += l3
			pairs++
		}
	}

	p := float64(pairs)
	out := measure.NewValues()
	out.Add("L1", sumL1/p)
	out.Add("L2", sumL2/p)
	out.Add("L3", sumL3/p)

	return out, nil
}

// pairMeasures fits the linear model of one binary pair and evaluates
// the three submeasures against it.
func pairMeasures(sub *dataset.Dataset, opts measure.Options, rng *rand.Rand) (l1, l2, l3 float64) {
	n := sub.Rows()
	x := linalg.Standardize(sub.Features())
	y := make([]float64, n)
	for i := range y {
		if sub.Label(i) == 0 {
			y[i] = 1
		} else {
			y[i] = -1
		}
	}

	m := fit(x, y, opts.LinearIters, opts.LinearRate, opts.LinearLambda)

	// L1 and L2 read the training set.
	var hinge float64
	errs := 0
	for i := 0; i < n; i++ {
		if m.predict(x[i]) == y[i] {
			continue
		}
		errs++
		if h := 1 - y[i]*m.decide(x[i]); h > 0 {
			hinge += h
		}
	}
	raw := hinge / float64(n)
	l1 = raw / (1 + raw)
	l2 = float64(errs) / float64(n)

	// L3 judges interpolants between same-class instances.
	// Standardization is affine, so interpolating standardized rows
	// equals standardizing interpolated rows.
	point := make([]float64, sub.Cols())
	synthErrs := 0
	for i := 0; i < n; i++ {
		c := sub.Label(i)
		rows := sub.ClassRows(c)
		a := x[rows[rng.Intn(len(rows))]]
		b := x[rows[rng.Intn(len(rows))]]
		t := rng.Float64()
		for j := range point {
			point[j] = a[j] + t*(b[j]-a[j])
		}
		if m.predict(point) != y[i] {
			synthErrs++
		}
	}
	l3 = float64(synthErrs) / float64(n)

	return l1, l2, l3
}
