package dataset

import (
	"fmt"
	"strings"
)

// formulaSpec is the parsed form of a model formula: which column is
// the response, and how the predictor set is assembled.
type formulaSpec struct {
	response   string
	includeAll bool     // RHS contains the "." wildcard
	include    []string // explicitly listed predictors, in order
	exclude    []string // predictors removed with "-"
}

// parseFormula parses the symbolic description of a classification task.
//
// Grammar:
//
//	formula = response "~" rhs
//	rhs     = "." { "-" column }
//	        | column { ("+" | "-") column }
//
// "." expands to every column except the response and stands alone on
// its side; "-" removes a column from the selection. Whitespace around
// tokens is ignored, so column names containing '~', '+' or '-' cannot
// be addressed by formula. Any malformed shape yields ErrInvalidFormula.
func parseFormula(formula string) (formulaSpec, error) {
	parts := strings.Split(formula, "~")
	if len(parts) != 2 {
		return formulaSpec{}, fmt.Errorf("%w: %q needs exactly one '~'", ErrInvalidFormula, formula)
	}

	spec := formulaSpec{response: strings.TrimSpace(parts[0])}
	if spec.response == "" || spec.response == "." {
		return formulaSpec{}, fmt.Errorf("%w: %q has no response", ErrInvalidFormula, formula)
	}

	rhs := strings.TrimSpace(parts[1])
	if rhs == "" {
		return formulaSpec{}, fmt.Errorf("%w: %q has no predictors", ErrInvalidFormula, formula)
	}

	// Each '+' chunk contributes one include term, optionally followed
	// by '-' exclusions. The "." wildcard stands alone: it may not be
	// combined with named include terms.
	for i, chunk := range strings.Split(rhs, "+") {
		pieces := strings.Split(chunk, "-")
		term := strings.TrimSpace(pieces[0])
		switch term {
		case "":
			return formulaSpec{}, fmt.Errorf("%w: %q has an empty term", ErrInvalidFormula, formula)
		case ".":
			if i != 0 {
				return formulaSpec{}, fmt.Errorf("%w: %q mixes '.' with named predictors", ErrInvalidFormula, formula)
			}
			spec.includeAll = true
		default:
			if spec.includeAll {
				return formulaSpec{}, fmt.Errorf("%w: %q mixes '.' with named predictors", ErrInvalidFormula, formula)
			}
			spec.include = append(spec.include, term)
		}
		for _, ex := range pieces[1:] {
			ex = strings.TrimSpace(ex)
			if ex == "" || ex == "." {
				return formulaSpec{}, fmt.Errorf("%w: %q removes an invalid term", ErrInvalidFormula, formula)
			}
			spec.exclude = append(spec.exclude, ex)
		}
	}

	return spec, nil
}

// FromFormula builds a Dataset from a table and a model formula such as
// "label ~ ." or "label ~ x1 + x2" or "label ~ . - id".
//
// The response column is squeezed into categorical labels, the selected
// predictor columns become the feature matrix, and the result passes
// through the same validation as New. Formula names are matched against
// the table's raw (pre-sanitization) column names.
//
// Errors: ErrInvalidFormula for grammar violations or a selection that
// leaves no predictors, ErrUnknownColumn for names absent from the
// table, plus everything New can return.
func FromFormula(formula string, t *Table) (*Dataset, error) {
	if t == nil {
		return nil, ErrInvalidInput
	}
	spec, err := parseFormula(formula)
	if err != nil {
		return nil, err
	}

	// Resolve the response before touching predictors, so a typo in the
	// response reports ErrUnknownColumn rather than a selection error.
	response, err := t.Column(spec.response)
	if err != nil {
		return nil, err
	}

	// Every explicitly named predictor and exclusion must exist.
	for _, name := range append(append([]string(nil), spec.include...), spec.exclude...) {
		if t.index(name) < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
	}

	excluded := make(map[string]struct{}, len(spec.exclude)+1)
	excluded[spec.response] = struct{}{}
	for _, name := range spec.exclude {
		excluded[name] = struct{}{}
	}

	var predictors []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if _, drop := excluded[name]; drop {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		predictors = append(predictors, name)
	}
	if spec.includeAll {
		for _, name := range t.Names() {
			add(name)
		}
	}
	for _, name := range spec.include {
		if name == spec.response {
			return nil, fmt.Errorf("%w: response %q used as predictor", ErrInvalidFormula, spec.response)
		}
		add(name)
	}
	if len(predictors) == 0 {
		return nil, fmt.Errorf("%w: %q selects no predictors", ErrInvalidFormula, formula)
	}

	features, err := t.Select(predictors)
	if err != nil {
		return nil, err
	}

	return New(features, LabelsFromFloats(response))
}
