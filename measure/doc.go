// Package measure defines the contract between the complexity
// dispatcher and the measure groups: the Func signature every group
// implements, the Options bag tuning the computations, and the ordered
// Values container results travel in.
//
// What:
//   - Func: (*dataset.Dataset, Options) → (*Values, error);
//   - Options: shared tunables with DefaultOptions, Normalize, Validate;
//   - Values: insertion-ordered submeasure name → float64 pairs.
//
// Why:
// Groups must not know about each other or about the dispatcher, and
// the dispatcher must not care which group produced a value beyond its
// name and position. A tiny shared vocabulary package keeps the
// dependency graph a clean fan-in.
//
// Errors:
//   - ErrInvalidOptions: an option field is outside its documented range.
package measure
