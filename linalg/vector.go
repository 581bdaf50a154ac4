// SPDX-License-Identifier: MIT

package linalg

import "math"

// Dot returns the inner product of a and b.
// Panics when the lengths differ.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("linalg: Dot: length mismatch")
	}
	var sum float64
	for i, v := range a {
		sum += v * b[i]
	}

	return sum
}

// Norm2 returns the Euclidean norm of v.
func Norm2(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// MatVec returns a·x for a row-major matrix a.
// Panics when x does not match a's column count.
func MatVec(a [][]float64, x []float64) []float64 {
	out := make([]float64, len(a))
	for i, row := range a {
		if len(row) != len(x) {
			panic("linalg: MatVec: length mismatch")
		}
		out[i] = Dot(row, x)
	}

	return out
}
