// Package linearity asks how far the data sits from linear
// separability: a linear classifier is fit to every class pair and its
// failures become the submeasures.
//
// What:
//   - L1: mean hinge loss of the misclassified instances, squashed to
//     [0, 1) by x/(1+x);
//   - L2: misclassification rate of the fitted model;
//   - L3: misclassification rate on points interpolated between
//     same-class pairs, judged by the same model.
//
// The fit is a full-batch subgradient descent on the L2-regularized
// hinge loss over standardized features, with a fixed iteration count
// and step size (see measure.Options). No shuffling, no early exit:
// the same pair always trains the same model. Multi-class datasets
// decompose one-vs-one in ascending class-index order and publish the
// pair means; L3's interpolation draws from the seeded generator.
package linearity
