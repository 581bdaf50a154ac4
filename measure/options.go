package measure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cxlib/dataset"
	"github.com/katalvlaran/cxlib/distance"
)

// ErrInvalidOptions is returned by Validate when an option lies outside
// its documented range.
var ErrInvalidOptions = errors.New("measure: invalid options")

// Default values for every tunable. A zero Options field selects the
// matching default via Normalize.
const (
	// DefaultNetworkEps is the same-class neighborhood radius on
	// range-normalized distances.
	DefaultNetworkEps = 0.15
	// DefaultPCAVariance is the cumulative variance a principal
	// component prefix must explain.
	DefaultPCAVariance = 0.95
	// DefaultLinearIters bounds the hinge-loss subgradient descent.
	DefaultLinearIters = 600
	// DefaultLinearRate is the descent step size.
	DefaultLinearRate = 0.1
	// DefaultLinearLambda is the L2 regularization weight.
	DefaultLinearLambda = 0.01
)

// Options carries the tunables shared by all measure groups. The zero
// value is valid: Normalize maps every zero field to its default, so
// callers set only what they want to change.
type Options struct {
	// Metric selects the distance used by the neighborhood and network
	// groups. The zero value is distance.Gower.
	Metric distance.Metric

	// NetworkEps is the radius of the same-class neighborhood graph,
	// in (0, 1]. Zero selects DefaultNetworkEps.
	NetworkEps float64

	// PCAVariance is the target cumulative variance for the
	// dimensionality ratios, in (0, 1]. Zero selects DefaultPCAVariance.
	PCAVariance float64

	// Seed drives every randomized step. Zero selects a fixed internal
	// seed, so results are reproducible unless a caller opts out.
	Seed uint64

	// LinearIters, LinearRate and LinearLambda tune the linear
	// separability fits. Zeros select the defaults.
	LinearIters  int
	LinearRate   float64
	LinearLambda float64
}

// DefaultOptions returns the fully populated default configuration.
func DefaultOptions() Options {
	return Options{
		Metric:       distance.Gower,
		NetworkEps:   DefaultNetworkEps,
		PCAVariance:  DefaultPCAVariance,
		Seed:         0,
		LinearIters:  DefaultLinearIters,
		LinearRate:   DefaultLinearRate,
		LinearLambda: DefaultLinearLambda,
	}
}

// Normalize returns a copy with every zero field replaced by its
// default. Seed stays as given; zero is meaningful there.
func (o Options) Normalize() Options {
	if o.NetworkEps == 0 {
		o.NetworkEps = DefaultNetworkEps
	}
	if o.PCAVariance == 0 {
		o.PCAVariance = DefaultPCAVariance
	}
	if o.LinearIters == 0 {
		o.LinearIters = DefaultLinearIters
	}
	if o.LinearRate == 0 {
		o.LinearRate = DefaultLinearRate
	}
	if o.LinearLambda == 0 {
		o.LinearLambda = DefaultLinearLambda
	}

	return o
}

// Validate checks every field against its documented range and reports
// the first violation wrapped in ErrInvalidOptions. Call it after
// Normalize; a normalized default configuration always validates.
func (o Options) Validate() error {
	if !o.Metric.Valid() {
		return fmt.Errorf("%w: unknown metric %d", ErrInvalidOptions, o.Metric)
	}
	if o.NetworkEps <= 0 || o.NetworkEps > 1 {
		return fmt.Errorf("%w: NetworkEps %v outside (0,1]", ErrInvalidOptions, o.NetworkEps)
	}
	if o.PCAVariance <= 0 || o.PCAVariance > 1 {
		return fmt.Errorf("%w: PCAVariance %v outside (0,1]", ErrInvalidOptions, o.PCAVariance)
	}
	if o.LinearIters < 1 {
		return fmt.Errorf("%w: LinearIters %d below 1", ErrInvalidOptions, o.LinearIters)
	}
	if o.LinearRate <= 0 {
		return fmt.Errorf("%w: LinearRate %v not positive", ErrInvalidOptions, o.LinearRate)
	}
	if o.LinearLambda <= 0 {
		return fmt.Errorf("%w: LinearLambda %v not positive", ErrInvalidOptions, o.LinearLambda)
	}

	return nil
}

// Func is the contract every measure group implements: consume a
// validated dataset and normalized options, produce named submeasure
// values in the group's canonical order.
//
// Implementations must be deterministic for a given (dataset, options)
// pair and must not retain or mutate the dataset.
type Func func(ds *dataset.Dataset, opts Options) (*Values, error)
