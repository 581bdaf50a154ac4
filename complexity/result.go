package complexity

import (
	"fmt"

	"github.com/katalvlaran/cxlib/measure"
)

// Result is the flat ordered outcome of one computation: every
// submeasure of every resolved group, keyed "<group>.<submeasure>".
// Keys follow canonical group order, then each group's own order.
type Result struct {
	names []string
	vals  []float64
	index map[string]int
}

// mergeResults concatenates per-group values in the given group order,
// prefixing each name with its group identifier. Groups arrive deduped,
// so a key collision means two registry entries share an identifier.
func mergeResults(groups []Group, per []*measure.Values) *Result {
	r := &Result{index: make(map[string]int)}
	for gi, g := range groups {
		vals := per[gi]
		for i := 0; i < vals.Len(); i++ {
			name, v := vals.At(i)
			key := g.String() + "." + name
			if _, dup := r.index[key]; dup {
				panic(fmt.Sprintf("complexity: duplicate result key %q", key))
			}
			r.index[key] = len(r.names)
			r.names = append(r.names, key)
			r.vals = append(r.vals, v)
		}
	}

	return r
}

// Len returns the number of submeasures in the result.
func (r *Result) Len() int { return len(r.names) }

// Names returns all keys in merge order.
func (r *Result) Names() []string { return append([]string(nil), r.names...) }

// Get returns the value stored under key and whether the key exists.
func (r *Result) Get(key string) (float64, bool) {
	i, ok := r.index[key]
	if !ok {
		return 0, false
	}

	return r.vals[i], true
}

// At returns the key and value at position i in merge order.
func (r *Result) At(i int) (string, float64) { return r.names[i], r.vals[i] }
