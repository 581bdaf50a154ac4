package dimensionality

import (
	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/linalg"
	"github.com/katalvlaran/cxlib/measure"
)

// Compute returns the dimensionality submeasures T2, T3 and T4.
func Compute(ds *dataset.Dataset, opts measure.Options) (*measure.Values, error) {
	opts = opts.Normalize()

	kept, err := components(ds, opts.PCAVariance)
	if err != nil {
		return nil, err
	}

	n := float64(ds.Rows())
	m := float64(ds.Cols())
	out := measure.NewValues()
	out.Add("T2", m/n)
	out.Add("T3", float64(kept)/n)
	out.Add("T4", float64(kept)/m)

	return out, nil
}

// components returns the number of leading principal components whose
// cumulative variance reaches the target fraction. Data with no
// variance at all keeps zero components.
func components(ds *dataset.Dataset, target float64) (int, error) {
	cov := linalg.Covariance(ds.Features())
	vals, _, err := linalg.EigenSym(cov)
	if err != nil {
		return 0, err
	}

	// Covariance spectra are non-negative up to round-off.
	var total float64
	for i, v := range vals {
		if v < 0 {
			vals[i] = 0
			continue
		}
		total += v
	}
	if total <= 0 {
		return 0, nil
	}

	var cum float64
	for i, v := range vals {
		cum += v
		if cum/total >= target {
			return i + 1, nil
		}
	}

	return len(vals), nil
}
