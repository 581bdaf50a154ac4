// Package complexity is the front door of cxlib: it validates a
// labeled dataset, resolves a selector against the canonical group
// registry, dispatches the chosen groups and merges their submeasures
// into one flat ordered result.
//
// Call shapes:
//   - Compute(features, labels, ...Option): direct table + labels;
//   - ComputeFormula("species ~ .", table, ...Option): the response
//     column named symbolically, predictors resolved from the table;
//   - ComputeDataset(ds, ...Option): for callers already holding a
//     validated *dataset.Dataset.
//
// All three reduce to the same pipeline. Result keys read
// "<group>.<submeasure>" (say, "linearity.L2") and always follow
// canonical group order, whatever order the selector spelled:
//
//	overlapping, neighborhood, linearity, dimensionality, balance, network
//
// Groups are selected with WithSelection ("all", full identifiers, or
// unambiguous prefixes such as "over" and "net") or with typed
// WithGroups. Knobs for the groups travel in one measure.Options bag
// via WithMeasureOptions; the dispatcher forwards it verbatim and
// reads none of it. WithParallel fans the groups out on goroutines
// without changing the observable result.
//
// The whole call is synchronous and all-or-nothing: one failing group
// aborts everything, and its error comes back unmodified. Every value
// is deterministic for a given dataset, options and seed.
//
// Errors:
//   - ErrUnknownGroup:   a selector token matches no canonical identifier;
//   - ErrAmbiguousGroup: a token prefixes more than one identifier;
//   - dataset sentinels  (ErrInvalidInput, ErrShapeMismatch, ...) from
//     validation, measure.ErrInvalidOptions from knob validation.
package complexity
