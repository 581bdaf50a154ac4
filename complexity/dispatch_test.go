// Package complexity (white-box) pins the all-or-nothing error
// contract of dispatch: the real registry's groups cannot be made to
// fail, so these tests swap registry entries for failing stubs.
package complexity

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallDS builds a two-class single-feature dataset the real groups
// can digest quickly.
func smallDS(t *testing.T) *dataset.Dataset {
	t.Helper()
	tbl, err := dataset.NewTable(nil, [][]float64{{0}, {1}, {10}, {11}})
	require.NoError(t, err)
	ds, err := dataset.New(tbl, dataset.LabelsFromInts([]int{0, 0, 1, 1}))
	require.NoError(t, err)

	return ds
}

// swapGroup replaces g's registry entry for the duration of the test.
// Tests using it must not run in parallel with each other.
func swapGroup(t *testing.T, g Group, fn measure.Func) {
	t.Helper()
	prev := groupFuncs[g]
	groupFuncs[g] = fn
	t.Cleanup(func() { groupFuncs[g] = prev })
}

// failWith returns a stub group that fails with err and flips *called.
func failWith(err error, called *bool) measure.Func {
	return func(*dataset.Dataset, measure.Options) (*measure.Values, error) {
		*called = true

		return nil, err
	}
}

// TestDispatch_SequentialAbortsUnmodified: a failing group aborts the
// whole call, its error surfaces untouched, and later groups never run.
func TestDispatch_SequentialAbortsUnmodified(t *testing.T) {
	ds := smallDS(t)
	errBoom := errors.New("neighborhood: boom")
	var neighborhoodRan, networkRan bool
	swapGroup(t, Neighborhood, failWith(errBoom, &neighborhoodRan))
	swapGroup(t, Network, failWith(errors.New("network: unreachable"), &networkRan))

	res, err := ComputeDataset(ds)

	assert.Nil(t, res, "no partial result survives a group failure")
	require.Error(t, err, "one failing group discards the call")
	assert.Same(t, errBoom, err, "the group error propagates unmodified")
	assert.True(t, neighborhoodRan, "the failing group was invoked")
	assert.False(t, networkRan, "groups after the failure never run")
}

// TestDispatch_ParallelPicksCanonicalError: when several groups fail
// concurrently, the surfaced error is the one the sequential loop
// would have hit, not whichever goroutine lost the race.
func TestDispatch_ParallelPicksCanonicalError(t *testing.T) {
	ds := smallDS(t)
	errFirst := errors.New("neighborhood: boom")
	errSecond := errors.New("network: boom")
	var firstRan, secondRan bool
	swapGroup(t, Neighborhood, failWith(errFirst, &firstRan))
	swapGroup(t, Network, failWith(errSecond, &secondRan))

	res, err := ComputeDataset(ds, WithParallel())

	assert.Nil(t, res, "no partial result survives a group failure")
	require.Error(t, err, "one failing group discards the call")
	assert.ErrorIs(t, err, errFirst, "the canonically first failure wins")
	assert.NotErrorIs(t, err, errSecond, "later failures are discarded")
	assert.True(t, firstRan && secondRan, "the fan-out ran both stubs to completion")
}

// TestDispatch_SequentialMatchesParallelError: both dispatch modes
// surface the identical error value for the same failing registry.
func TestDispatch_SequentialMatchesParallelError(t *testing.T) {
	ds := smallDS(t)
	errBoom := errors.New("linearity: boom")
	var ran bool
	swapGroup(t, Linearity, failWith(errBoom, &ran))

	_, seqErr := ComputeDataset(ds)
	_, parErr := ComputeDataset(ds, WithParallel())

	assert.Same(t, errBoom, seqErr, "sequential surfaces the stub error")
	assert.Same(t, errBoom, parErr, "parallel surfaces the same error value")
}
