// Package dimensionality relates feature count to instance count,
// before and after discarding directions that carry little variance.
//
// What:
//   - T2: raw attribute-to-instance ratio m/n;
//   - T3: like T2 but with m replaced by the number of principal
//     components needed to retain the target cumulative variance;
//   - T4: the retained fraction of directions, components over m.
//
// Why:
// Sparse coverage of the feature space (large ratios) makes class
// boundaries easy to overfit, and the spectral variants distinguish
// genuinely high-dimensional data from data padded with redundant
// attributes.
//
// Options: PCAVariance sets the cumulative variance target.
//
// Errors: linalg.ErrNoConvergence when the covariance eigensolve fails.
package dimensionality
