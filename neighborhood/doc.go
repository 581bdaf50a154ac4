// Package neighborhood measures class separability through nearest
// neighbors on the pairwise distance matrix.
//
// What:
//   - N1:  fraction of instances touching a class-crossing edge of the
//     minimum spanning tree over all instances;
//   - N2:  ratio of same-class to other-class nearest-neighbor
//     distances, squashed to [0, 1);
//   - N3:  leave-one-out 1-NN error rate;
//   - N4:  1-NN error on points interpolated between same-class pairs,
//     classified against the originals;
//   - T1:  fraction of nearest-enemy hyperspheres surviving absorption
//     by larger same-class spheres;
//   - LSC: complement of the mean local-set size, where an instance's
//     local set is everything closer than its nearest enemy.
//
// All six read the same matrix, built with Options.Metric (Gower by
// default). Neighbor scans visit candidates in index order and break
// distance ties toward the lower index; N4's interpolation draws from
// the seeded generator, so every value is reproducible.
//
// Why:
// Boundary shape is invisible to feature-wise statistics. Neighbor
// relations capture it directly: interleaved classes cross MST edges,
// flip 1-NN votes and shrink local sets long before any linear model
// notices.
package neighborhood
