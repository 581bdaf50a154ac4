// Package dataset provides the normalized input model shared by every
// complexity measure group: a feature table with named numeric columns and a
// categorical label vector, validated and frozen into an immutable Dataset.
//
// What:
//
//   - Table wraps rectangular float64 rows with unique column names.
//   - Labels is a categorical vector coerced from strings, numbers, bools,
//     or squeezed out of a single-column table.
//   - New validates a (Table, Labels) pair in a fixed order and produces a
//     Dataset: sanitized column identifiers, class index, per-class row lists.
//   - FromFormula binds a symbolic "response ~ predictors" specification to a
//     combined table and reduces it to the direct New entry point.
//   - ReadCSV ingests a CSV stream into a Table.
//
// Why:
//
//   - Measure groups reason about same-class pairs and neighbors; they are
//     undefined for singleton classes, so validation happens once, up front.
//   - Downstream code builds lookups keyed by column names, so names are
//     rewritten into safe, unique identifiers before any group runs; the
//     rename map is kept for diagnostics.
//
// Validation order (part of the contract):
//
//  1. feature argument is tabular            → ErrInvalidInput otherwise
//  2. feature rows match label length        → ErrShapeMismatch otherwise
//  3. at least two distinct classes          → ErrInsufficientClasses otherwise
//  4. every class has at least two instances → ErrInsufficientClassSize otherwise
//
// Determinism:
//
//	Class indices follow lexicographic order of the class names, row lists are
//	ascending, and sanitization is a pure left-to-right rewrite — the same
//	inputs always produce the identical Dataset.
//
// Errors:
//
//   - ErrInvalidInput          — features (or combined data) are not tabular.
//   - ErrShapeMismatch         — feature row count differs from label length.
//   - ErrInsufficientClasses   — fewer than two distinct classes.
//   - ErrInsufficientClassSize — a class has fewer than two instances.
//   - ErrInvalidFormula        — specification is not a recognized symbolic form.
//   - ErrUnknownColumn         — a formula names a column the table lacks.
//
// All entities are created fresh per call and never mutated afterwards;
// nothing in this package persists across invocations.
package dataset
