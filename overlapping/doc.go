// Package overlapping measures how much the classes' feature-value
// regions intersect. All five submeasures grow toward 1 as the classes
// blend and shrink toward 0 when some feature (or direction) tells
// them apart.
//
// What:
//   - F1:  complement of the best single-feature Fisher discriminant
//     ratio, computed over all classes at once;
//   - F1v: complement of the directional Fisher ratio along the vector
//     that best separates each class pair;
//   - F2:  volume of the per-pair feature-space region claimed by both
//     classes, as a fraction of the joint range;
//   - F3:  fraction of each pair left inside the least ambiguous
//     single feature's overlap interval;
//   - F4:  fraction of each pair no feature can claim even when
//     features discriminate greedily one after another.
//
// Multi-class datasets decompose one-vs-one; pair values average into
// the published scalar. Pairs iterate in class-index order and greedy
// choices break ties toward the lower feature index, so results never
// depend on map order or scheduling.
//
// Errors: linalg.ErrNoConvergence via F1v's covariance pseudo-inverse.
package overlapping
