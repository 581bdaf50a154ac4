package dataset

import "strconv"

// Labels is a categorical label vector: one class value per instance.
// Whatever the original representation (string, numeric, boolean, or a
// single-column table), construction coerces it to categorical form.
type Labels struct {
	values []string
}

// LabelsFromStrings builds Labels from string class values.
func LabelsFromStrings(vals []string) Labels {
	return Labels{values: append([]string(nil), vals...)}
}

// LabelsFromFloats coerces numeric labels to categorical values.
// Values are formatted compactly, so 1.0 becomes class "1" and 1.5 "1.5".
func LabelsFromFloats(vals []float64) Labels {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return Labels{values: out}
}

// LabelsFromInts coerces integer labels to categorical values.
func LabelsFromInts(vals []int) Labels {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.Itoa(v)
	}

	return Labels{values: out}
}

// LabelsFromBools coerces boolean labels to the classes "true" and "false".
func LabelsFromBools(vals []bool) Labels {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.FormatBool(v)
	}

	return Labels{values: out}
}

// LabelsFromTable squeezes a single-column table into a categorical vector.
// Returns ErrInvalidInput when t is nil or has more than one column.
func LabelsFromTable(t *Table) (Labels, error) {
	if t == nil || t.Cols() != 1 {
		return Labels{}, ErrInvalidInput
	}
	vals := make([]float64, t.Rows())
	for i := range vals {
		vals[i] = t.Value(i, 0)
	}

	return LabelsFromFloats(vals), nil
}

// Len returns the number of label values.
func (l Labels) Len() int { return len(l.values) }

// Values returns a copy of the categorical values in instance order.
func (l Labels) Values() []string { return append([]string(nil), l.values...) }
