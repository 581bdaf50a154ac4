package measure

import "fmt"

// Values is an insertion-ordered collection of named scalar results.
// Iteration and merge order is exactly Add order, which is how the
// canonical result ordering propagates from groups to the final report.
type Values struct {
	names []string
	vals  []float64
	index map[string]int
}

// NewValues returns an empty collection.
func NewValues() *Values {
	return &Values{index: make(map[string]int)}
}

// Add appends a named value. Submeasure names are unique within a
// group, so a duplicate name is a programming error and panics.
func (v *Values) Add(name string, val float64) {
	if _, dup := v.index[name]; dup {
		panic(fmt.Sprintf("measure: duplicate value %q", name))
	}
	v.index[name] = len(v.names)
	v.names = append(v.names, name)
	v.vals = append(v.vals, val)
}

// Len returns the number of values.
func (v *Values) Len() int { return len(v.names) }

// Names returns a copy of the names in insertion order.
func (v *Values) Names() []string { return append([]string(nil), v.names...) }

// Get returns the value stored under name.
func (v *Values) Get(name string) (float64, bool) {
	i, ok := v.index[name]
	if !ok {
		return 0, false
	}

	return v.vals[i], true
}

// At returns the i-th name/value pair in insertion order.
func (v *Values) At(i int) (string, float64) { return v.names[i], v.vals[i] }
