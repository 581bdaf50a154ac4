// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"math"
	"sort"
)

// ErrNoConvergence is returned by EigenSym when the off-diagonal mass
// has not dropped below tolerance within the sweep budget.
var ErrNoConvergence = errors.New("linalg: jacobi did not converge")

const (
	// jacobiTol is the off-diagonal Frobenius norm below which the
	// iteration is considered converged.
	jacobiTol = 1e-10
	// jacobiMaxSweeps bounds the number of full rotation sweeps.
	jacobiMaxSweeps = 100
	// pinvRelTol drops spectral components whose eigenvalue is this
	// small relative to the largest one.
	pinvRelTol = 1e-8
)

// EigenSym computes the eigendecomposition of a symmetric matrix via
// cyclic Jacobi rotations.
//
// Returns eigenvalues in descending order and, aligned with them,
// eigenvectors of unit length (vecs[i] pairs vals[i]). Equal
// eigenvalues keep their pre-sort position order, so the decomposition
// of a given matrix is always the same.
//
// The input must be square and symmetric; it is not modified.
// Returns ErrNoConvergence when jacobiMaxSweeps sweeps do not reach
// jacobiTol.
//
// Complexity: O(sweeps·n³) time, O(n²) memory.
func EigenSym(a [][]float64) ([]float64, [][]float64, error) {
	n := len(a)
	if n == 0 {
		panic("linalg: EigenSym: empty matrix")
	}
	for _, row := range a {
		if len(row) != n {
			panic("linalg: EigenSym: matrix is not square")
		}
	}

	// Stage 1 - working copies: w receives the rotations, v accumulates them.
	w := make([][]float64, n)
	v := make([][]float64, n)
	for i := range w {
		w[i] = append([]float64(nil), a[i]...)
		v[i] = make([]float64, n)
		v[i][i] = 1
	}

	// Stage 2 - sweep until the off-diagonal mass is negligible.
	for sweep := 0; sweep < jacobiMaxSweeps; sweep++ {
		if offDiagonal(w) <= jacobiTol {
			return sortedEigen(w, v)
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				rotate(w, v, p, q)
			}
		}
	}
	if offDiagonal(w) <= jacobiTol {
		return sortedEigen(w, v)
	}

	return nil, nil, ErrNoConvergence
}

// offDiagonal returns the Frobenius norm of w's off-diagonal part.
func offDiagonal(w [][]float64) float64 {
	var sum float64
	for i := range w {
		for j := range w[i] {
			if i != j {
				sum += w[i][j] * w[i][j]
			}
		}
	}

	return math.Sqrt(sum)
}

// rotate annihilates w[p][q] with a Givens rotation and accumulates the
// same rotation into v.
func rotate(w, v [][]float64, p, q int) {
	apq := w[p][q]
	if apq == 0 {
		return
	}

	// Stable rotation parameters per the classic Jacobi recipe.
	theta := (w[q][q] - w[p][p]) / (2 * apq)
	t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	c := 1 / math.Sqrt(t*t+1)
	s := t * c
	tau := s / (1 + c)

	w[p][p] -= t * apq
	w[q][q] += t * apq
	w[p][q], w[q][p] = 0, 0

	for r := range w {
		if r != p && r != q {
			wrp, wrq := w[r][p], w[r][q]
			w[r][p] = wrp - s*(wrq+tau*wrp)
			w[p][r] = w[r][p]
			w[r][q] = wrq + s*(wrp-tau*wrq)
			w[q][r] = w[r][q]
		}
		vrp, vrq := v[r][p], v[r][q]
		v[r][p] = vrp - s*(vrq+tau*vrp)
		v[r][q] = vrq + s*(vrp-tau*vrq)
	}
}

// sortedEigen extracts eigenpairs from the converged state, descending
// by value with ties kept in column order.
func sortedEigen(w, v [][]float64) ([]float64, [][]float64, error) {
	n := len(w)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return w[order[a]][order[a]] > w[order[b]][order[b]]
	})

	vals := make([]float64, n)
	vecs := make([][]float64, n)
	for i, k := range order {
		vals[i] = w[k][k]
		vec := make([]float64, n)
		for r := 0; r < n; r++ {
			vec[r] = v[r][k]
		}
		vecs[i] = vec
	}

	return vals, vecs, nil
}

// PseudoInverseSPD computes the Moore-Penrose inverse of a symmetric
// positive semi-definite matrix by spectral decomposition, dropping
// components whose eigenvalue falls below pinvRelTol times the largest
// eigenvalue. A matrix with no positive spectrum inverts to all zeros.
//
// Propagates ErrNoConvergence from the eigensolver.
func PseudoInverseSPD(a [][]float64) ([][]float64, error) {
	vals, vecs, err := EigenSym(a)
	if err != nil {
		return nil, err
	}

	n := len(vals)
	inv := make([][]float64, n)
	for i := range inv {
		inv[i] = make([]float64, n)
	}
	if vals[0] <= 0 {
		return inv, nil
	}

	cutoff := pinvRelTol * vals[0]
	for k, lambda := range vals {
		if lambda <= cutoff {
			break // descending order: everything after is smaller
		}
		w := 1 / lambda
		for i := 0; i < n; i++ {
			vi := vecs[k][i] * w
			for j := 0; j < n; j++ {
				inv[i][j] += vi * vecs[k][j]
			}
		}
	}

	return inv, nil
}
