// Package distance builds dense pairwise distance matrices over a
// dataset's feature rows.
//
// What:
//   - Metric: Gower (range-normalized, the default) or Euclidean;
//   - Matrix(ds, ...Option): the full symmetric n×n matrix as *Dense.
//
// Why:
// The neighborhood and network measure groups are defined on pairwise
// dissimilarities, and on mixed-scale data the range-normalized Gower
// coefficient keeps every feature's contribution inside [0, 1].
//
// Determinism:
// Rows and features are visited in index order, so the same dataset
// always produces the same matrix.
package distance
