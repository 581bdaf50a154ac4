package complexity

import (
	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/measure"
	"golang.org/x/sync/errgroup"
)

// Compute runs the selected measure groups over a feature table and its
// labels. The pair goes through full dataset validation first; see
// dataset.New for the sentinel taxonomy.
//
// Contracts:
//   - features non-nil, rectangular, all-numeric; rows == labels length.
//   - at least two classes, each with at least two instances.
//   - selector defaults to every canonical group.
//
// Errors: dataset sentinels from validation, ErrUnknownGroup and
// ErrAmbiguousGroup from selector resolution, measure.ErrInvalidOptions
// from knob validation, and any group failure verbatim. One failing
// group discards the whole call.
//
// Complexity: validation O(n·m); then each resolved group's own cost,
// dominated by the O(n²·m) distance matrix of the neighborhood and
// network groups.
func Compute(features *dataset.Table, labels dataset.Labels, opts ...Option) (*Result, error) {
	ds, err := dataset.New(features, labels)
	if err != nil {
		return nil, err
	}

	return ComputeDataset(ds, opts...)
}

// ComputeFormula runs the selected groups over a combined table whose
// response column a "response ~ predictors" formula names. The formula
// resolves against the table via dataset.FromFormula, then the call
// reduces to the direct shape.
func ComputeFormula(formula string, data *dataset.Table, opts ...Option) (*Result, error) {
	ds, err := dataset.FromFormula(formula, data)
	if err != nil {
		return nil, err
	}

	return ComputeDataset(ds, opts...)
}

// ComputeDataset is Compute for callers already holding a validated
// dataset.
func ComputeDataset(ds *dataset.Dataset, opts ...Option) (*Result, error) {
	if ds == nil {
		return nil, dataset.ErrInvalidInput
	}

	o := gatherOptions(opts...)

	// Stage 1 - resolve the selection against the registry.
	groups, err := o.resolve()
	if err != nil {
		return nil, err
	}

	// Stage 2 - fill zero knobs with defaults and validate once, up front.
	o.measure = o.measure.Normalize()
	if err = o.measure.Validate(); err != nil {
		return nil, err
	}

	// Stage 3 - dispatch in canonical order.
	per, err := dispatch(ds, groups, o)
	if err != nil {
		return nil, err
	}

	// Stage 4 - merge into one flat keyed result.
	return mergeResults(groups, per), nil
}

// dispatch invokes each group and collects its values in group order.
func dispatch(ds *dataset.Dataset, groups []Group, o options) ([]*measure.Values, error) {
	per := make([]*measure.Values, len(groups))
	if !o.parallel {
		for i, g := range groups {
			vals, err := groupFuncs[g](ds, o.measure)
			if err != nil {
				return nil, err
			}
			per[i] = vals
		}

		return per, nil
	}

	// Concurrent fan-out, one goroutine per group; groups are pure
	// functions of the same inputs. Wait's own error pick is
	// timing-dependent, so the canonical scan below chooses the
	// failure the sequential loop would have hit.
	var (
		eg   errgroup.Group
		errs = make([]error, len(groups))
	)
	for i, g := range groups {
		i, g := i, g
		eg.Go(func() error {
			per[i], errs[i] = groupFuncs[g](ds, o.measure)

			return errs[i]
		})
	}
	_ = eg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return per, nil
}
