package overlapping

import (
	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/linalg"
)

// f1 is the complement of the maximum Fisher discriminant ratio over
// individual features:
//
//	rF(j) = Σ_c n_c(μ_cj − μ_j)² / Σ_c Σ_{i∈c}(x_ij − μ_cj)²
//	F1    = 1 / (1 + max_j rF(j))
//
// A feature that is constant inside every class but separates the
// class means has infinite ratio, hence F1 = 0. A globally constant
// feature contributes ratio 0.
func f1(ds *dataset.Dataset) float64 {
	n, m, k := ds.Rows(), ds.Cols(), ds.ClassCount()

	var best float64
	for j := 0; j < m; j++ {
		var global float64
		for i := 0; i < n; i++ {
			global += ds.Value(i, j)
		}
		global /= float64(n)

		var between, within float64
		for c := 0; c < k; c++ {
			rows := ds.ClassRows(c)
			var mean float64
			for _, i := range rows {
				mean += ds.Value(i, j)
			}
			mean /= float64(len(rows))

			d := mean - global
			between += float64(len(rows)) * d * d
			for _, i := range rows {
				dv := ds.Value(i, j) - mean
				within += dv * dv
			}
		}

		switch {
		case within > 0:
			if r := between / within; r > best {
				best = r
			}
		case between > 0:
			return 0 // perfectly discriminating feature
		}
	}

	return 1 / (1 + best)
}

// f1v is the complement of the directional Fisher ratio of a binary
// pair: project onto d = W⁺(μ₀ − μ₁), where W is the proportion-pooled
// within-class covariance, and compare between-class to within-class
// spread along d.
func f1v(sub *dataset.Dataset) (float64, error) {
	rows0 := classMatrix(sub, 0)
	rows1 := classMatrix(sub, 1)

	mu0 := linalg.Mean(rows0)
	mu1 := linalg.Mean(rows1)
	delta := make([]float64, len(mu0))
	for j := range delta {
		delta[j] = mu0[j] - mu1[j]
	}

	p0 := float64(len(rows0)) / float64(sub.Rows())
	p1 := 1 - p0
	cov0 := linalg.Covariance(rows0)
	cov1 := linalg.Covariance(rows1)
	w := make([][]float64, len(cov0))
	for r := range w {
		w[r] = make([]float64, len(cov0))
		for c := range w[r] {
			w[r][c] = p0*cov0[r][c] + p1*cov1[r][c]
		}
	}

	winv, err := linalg.PseudoInverseSPD(w)
	if err != nil {
		return 0, err
	}
	d := linalg.MatVec(winv, delta)

	num := linalg.Dot(d, delta)
	num *= num
	den := linalg.Dot(d, linalg.MatVec(w, d))

	var df float64
	switch {
	case den > 0:
		df = num / den
	case linalg.Norm2(delta) > 0:
		return 0, nil // point-mass classes apart: no within spread at all
	default:
		df = 0
	}

	return 1 / (1 + df), nil
}

// classMatrix gathers the feature rows of class c as views.
func classMatrix(ds *dataset.Dataset, c int) [][]float64 {
	rows := ds.ClassRows(c)
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = ds.Row(r)
	}

	return out
}
