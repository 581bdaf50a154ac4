// Package balance measures how unevenly instances spread over classes.
//
// What:
//   - C1: entropy of the class proportions, rescaled so 0 is perfectly
//     balanced and values approach 1 as one class dominates;
//   - C2: imbalance-ratio complement with the same orientation.
//
// Both read only class sizes, so they cost O(k) after normalization.
package balance
