// SPDX-License-Identifier: MIT

package linalg

import "math"

// Mean returns the per-column means of a row-major matrix.
// Panics when rows is empty.
func Mean(rows [][]float64) []float64 {
	if len(rows) == 0 {
		panic("linalg: Mean: need at least one row")
	}
	m := len(rows[0])
	out := make([]float64, m)
	for _, row := range rows {
		for j, v := range row {
			out[j] += v
		}
	}
	inv := 1.0 / float64(len(rows))
	for j := range out {
		out[j] *= inv
	}

	return out
}

// StdDev returns the per-column sample standard deviations (n−1 in the
// denominator) around the supplied means. Panics when rows has fewer
// than two rows or mean does not match the column count.
func StdDev(rows [][]float64, mean []float64) []float64 {
	if len(rows) < 2 {
		panic("linalg: StdDev: need at least two rows")
	}
	if len(mean) != len(rows[0]) {
		panic("linalg: StdDev: mean length does not match columns")
	}
	out := make([]float64, len(mean))
	for _, row := range rows {
		for j, v := range row {
			d := v - mean[j]
			out[j] += d * d
		}
	}
	inv := 1.0 / float64(len(rows)-1)
	for j := range out {
		out[j] = math.Sqrt(out[j] * inv)
	}

	return out
}

// Standardize returns a fresh matrix with every column centered on its
// mean and scaled by its sample standard deviation. Columns with zero
// spread standardize to all zeros. The input is left untouched.
//
// Complexity: O(n·m) time, O(n·m) memory.
func Standardize(rows [][]float64) [][]float64 {
	mean := Mean(rows)
	std := StdDev(rows, mean)

	out := make([][]float64, len(rows))
	for i, row := range rows {
		z := make([]float64, len(row))
		for j, v := range row {
			if std[j] > 0 {
				z[j] = (v - mean[j]) / std[j]
			}
		}
		out[i] = z
	}

	return out
}

// Covariance returns the m×m sample covariance matrix (n−1 in the
// denominator) of a row-major matrix. Panics when rows has fewer than
// two rows.
//
// Complexity: O(n·m²) time, O(m²) memory.
func Covariance(rows [][]float64) [][]float64 {
	if len(rows) < 2 {
		panic("linalg: Covariance: need at least two rows")
	}
	mean := Mean(rows)
	m := len(mean)

	cov := make([][]float64, m)
	for j := range cov {
		cov[j] = make([]float64, m)
	}
	for _, row := range rows {
		for j := 0; j < m; j++ {
			dj := row[j] - mean[j]
			for k := j; k < m; k++ {
				cov[j][k] += dj * (row[k] - mean[k])
			}
		}
	}
	inv := 1.0 / float64(len(rows)-1)
	for j := 0; j < m; j++ {
		for k := j; k < m; k++ {
			cov[j][k] *= inv
			cov[k][j] = cov[j][k]
		}
	}

	return cov
}
