// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"sort"
)

// Dataset is the normalized form every complexity measure consumes:
// a dense numeric feature matrix plus a categorical label vector,
// validated once at construction so downstream code never re-checks.
//
// Instances keep their input order. Classes are indexed 0..k-1 in
// lexicographic order of their categorical value, so the same data
// always yields the same class indexing.
type Dataset struct {
	names   []string          // sanitized column names, length m
	renames map[string]string // sanitized → original, only for altered names

	data []float64 // row-major feature matrix, length n*m
	n, m int

	labels  []int    // class index per instance, length n
	classes []string // distinct class values, lexicographically sorted
	sizes   []int    // instance count per class, length k
	byClass [][]int  // instance indices per class, ascending, length k
}

// New validates a feature table against a label vector and builds the
// normalized Dataset.
//
// Validation stages, in order:
//  1. input must be tabular: non-nil table with at least one row and
//     one column (ErrInvalidInput);
//  2. row count must equal label count (ErrShapeMismatch);
//  3. labels must contain at least two distinct classes
//     (ErrInsufficientClasses);
//  4. every class must contain at least two instances
//     (ErrInsufficientClassSize).
//
// Column names are sanitized (see Renames) and feature values copied,
// so the caller's table stays untouched.
//
// Complexity: O(n·m) time, O(n·m) memory.
func New(t *Table, l Labels) (*Dataset, error) {
	// Stage 1 - structural validation of the feature table.
	if t == nil || t.Rows() == 0 || t.Cols() == 0 {
		return nil, ErrInvalidInput
	}

	// Stage 2 - feature rows and labels must describe the same instances.
	if t.Rows() != l.Len() {
		return nil, fmt.Errorf("%w: %d rows vs %d labels", ErrShapeMismatch, t.Rows(), l.Len())
	}

	// Stage 3 - discover classes; a single class has nothing to measure.
	classes := distinct(l.values)
	if len(classes) < 2 {
		return nil, ErrInsufficientClasses
	}

	// Stage 4 - index instances by class and enforce the per-class minimum.
	index := make(map[string]int, len(classes))
	for c, name := range classes {
		index[name] = c
	}
	n, m := t.Rows(), t.Cols()
	labels := make([]int, n)
	sizes := make([]int, len(classes))
	for i, v := range l.values {
		c := index[v]
		labels[i] = c
		sizes[c]++
	}
	for c, size := range sizes {
		if size < 2 {
			return nil, fmt.Errorf("%w: class %q has %d", ErrInsufficientClassSize, classes[c], size)
		}
	}
	byClass := make([][]int, len(classes))
	for c := range byClass {
		byClass[c] = make([]int, 0, sizes[c])
	}
	for i, c := range labels {
		byClass[c] = append(byClass[c], i)
	}

	// Stage 5 - flatten features and sanitize column names.
	data := make([]float64, 0, n*m)
	for i := 0; i < n; i++ {
		data = append(data, t.Row(i)...)
	}
	names, renames := sanitizeNames(t.Names())

	return &Dataset{
		names:   names,
		renames: renames,
		data:    data,
		n:       n,
		m:       m,
		labels:  labels,
		classes: classes,
		sizes:   sizes,
		byClass: byClass,
	}, nil
}

// distinct returns the sorted set of values present in vals.
func distinct(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, 4)
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Rows returns the number of instances n.
func (d *Dataset) Rows() int { return d.n }

// Cols returns the number of features m.
func (d *Dataset) Cols() int { return d.m }

// Names returns a copy of the sanitized column names.
func (d *Dataset) Names() []string { return append([]string(nil), d.names...) }

// Renames returns a copy of the sanitized→original map for every column
// name that sanitization altered. An empty map means all names survived.
func (d *Dataset) Renames() map[string]string {
	out := make(map[string]string, len(d.renames))
	for k, v := range d.renames {
		out[k] = v
	}

	return out
}

// Value returns the feature value at instance i, column j.
func (d *Dataset) Value(i, j int) float64 { return d.data[i*d.m+j] }

// Row returns instance i's feature vector as a view into the backing
// array. Callers must treat it as read-only.
func (d *Dataset) Row(i int) []float64 {
	lo := i * d.m

	return d.data[lo : lo+d.m : lo+d.m]
}

// Features returns all instance rows as views into the backing array,
// in instance order. Callers must treat them as read-only.
func (d *Dataset) Features() [][]float64 {
	out := make([][]float64, d.n)
	for i := range out {
		out[i] = d.Row(i)
	}

	return out
}

// Column returns a copy of feature column j across all instances.
func (d *Dataset) Column(j int) []float64 {
	out := make([]float64, d.n)
	for i := range out {
		out[i] = d.data[i*d.m+j]
	}

	return out
}

// ClassCount returns the number of distinct classes k.
func (d *Dataset) ClassCount() int { return len(d.classes) }

// Classes returns a copy of the class values in index order.
func (d *Dataset) Classes() []string { return append([]string(nil), d.classes...) }

// Label returns the class index of instance i.
func (d *Dataset) Label(i int) int { return d.labels[i] }

// ClassName returns the categorical value of class c.
func (d *Dataset) ClassName(c int) string { return d.classes[c] }

// ClassSize returns the number of instances in class c.
func (d *Dataset) ClassSize(c int) int { return d.sizes[c] }

// ClassRows returns the ascending instance indices of class c as a view.
// Callers must treat it as read-only.
func (d *Dataset) ClassRows(c int) []int { return d.byClass[c] }

// MinClassSize returns the size of the smallest class.
func (d *Dataset) MinClassSize() int {
	min := d.sizes[0]
	for _, s := range d.sizes[1:] {
		if s < min {
			min = s
		}
	}

	return min
}

// Pair extracts the binary sub-dataset of classes a and b for
// one-vs-one decompositions. Instances keep their relative order, and
// the two classes are re-indexed lexicographically, matching New.
//
// Pair panics when a or b is out of range or a == b: pair selection is
// driven by ClassCount, so a bad index is a programming error.
func (d *Dataset) Pair(a, b int) *Dataset {
	if a < 0 || a >= len(d.classes) || b < 0 || b >= len(d.classes) || a == b {
		panic(fmt.Sprintf("dataset: Pair(%d, %d): invalid class pair for %d classes", a, b, len(d.classes)))
	}
	if d.classes[a] > d.classes[b] {
		a, b = b, a
	}

	rows := len(d.byClass[a]) + len(d.byClass[b])
	sub := &Dataset{
		names:   d.names,
		renames: d.renames,
		data:    make([]float64, 0, rows*d.m),
		n:       rows,
		m:       d.m,
		labels:  make([]int, 0, rows),
		classes: []string{d.classes[a], d.classes[b]},
		sizes:   []int{len(d.byClass[a]), len(d.byClass[b])},
		byClass: make([][]int, 2),
	}
	sub.byClass[0] = make([]int, 0, sub.sizes[0])
	sub.byClass[1] = make([]int, 0, sub.sizes[1])

	for i := 0; i < d.n; i++ {
		var c int
		switch d.labels[i] {
		case a:
			c = 0
		case b:
			c = 1
		default:
			continue
		}
		sub.byClass[c] = append(sub.byClass[c], len(sub.labels))
		sub.labels = append(sub.labels, c)
		sub.data = append(sub.data, d.Row(i)...)
	}

	return sub
}
