// SPDX-License-Identifier: MIT

// Package linalg provides the small dense linear-algebra kernel the
// complexity measures rely on: column statistics, standardization,
// sample covariance, a cyclic Jacobi eigensolver for symmetric
// matrices, and an SPD pseudo-inverse built on top of it.
//
// What:
//   - Mean, StdDev, Standardize, Covariance over row-major [][]float64;
//   - Dot, Norm2, MatVec vector helpers;
//   - EigenSym (Jacobi sweeps, deterministic ordering);
//   - PseudoInverseSPD (spectral cutoff relative to the largest eigenvalue).
//
// Why:
// Measures such as the directional Fisher ratio and the variance-based
// dimensionality ratios need eigenvalues and (pseudo-)inverses of
// covariance matrices that may be singular. The kernel favors fixed
// iteration order over speed so repeated runs agree to the last bit.
//
// Determinism:
// All loops run in index order; eigenpairs sort by descending value
// with ties broken by original position.
//
// Errors:
//   - ErrNoConvergence: the Jacobi sweep limit was exhausted.
//
// Shape violations (ragged input, mismatched lengths, too few rows)
// are programming errors and panic.
package linalg
