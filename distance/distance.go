package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cxlib/dataset"
)

// Metric selects the pairwise dissimilarity formula.
type Metric int

const (
	// Gower is the range-normalized mean absolute difference. Every
	// feature contributes in [0, 1]; features with zero spread are
	// skipped entirely.
	Gower Metric = iota
	// Euclidean is the plain L2 distance on raw feature values.
	Euclidean
)

// Valid reports whether m names a known metric.
func (m Metric) Valid() bool { return m == Gower || m == Euclidean }

// String returns the metric name for logs and errors.
func (m Metric) String() string {
	switch m {
	case Gower:
		return "gower"
	case Euclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// options collects the tunables of Matrix.
type options struct {
	metric Metric
}

// Option adjusts how Matrix computes distances.
type Option func(*options)

// WithMetric selects the dissimilarity formula (default Gower).
// Panics on an unknown metric.
func WithMetric(m Metric) Option {
	if !m.Valid() {
		panic(fmt.Sprintf("distance: WithMetric: unknown metric %d", m))
	}

	return func(o *options) { o.metric = m }
}

// Dense is a symmetric n×n distance matrix with a zero diagonal.
type Dense struct {
	n    int
	data []float64 // row-major, full square
}

// Rows returns the matrix dimension n.
func (d *Dense) Rows() int { return d.n }

// At returns the distance between instances i and j.
func (d *Dense) At(i, j int) float64 { return d.data[i*d.n+j] }

// Row returns instance i's distances to every instance as a view.
// Callers must treat it as read-only.
func (d *Dense) Row(i int) []float64 {
	lo := i * d.n

	return d.data[lo : lo+d.n : lo+d.n]
}

// Func returns the configured metric as a closure. Gower normalization
// is frozen on ds's feature ranges, so the closure can also measure
// points that are not rows of ds (interpolated instances, say) on the
// same scale. Panics when ds is nil.
func Func(ds *dataset.Dataset, opts ...Option) func(a, b []float64) float64 {
	if ds == nil {
		panic("distance: Func: nil dataset")
	}
	cfg := options{metric: Gower}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.metric == Euclidean {
		return euclidean
	}

	return gowerFunc(ds)
}

// Matrix computes the full pairwise distance matrix of ds.
// Panics when ds is nil; datasets are validated at construction, so a
// nil here is a programming error.
//
// Complexity: O(n²·m) time, O(n²) memory.
func Matrix(ds *dataset.Dataset, opts ...Option) *Dense {
	dist := Func(ds, opts...)

	n := ds.Rows()
	out := &Dense{n: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		ri := ds.Row(i)
		for j := i + 1; j < n; j++ {
			d := dist(ri, ds.Row(j))
			out.data[i*n+j] = d
			out.data[j*n+i] = d
		}
	}

	return out
}

// euclidean returns the L2 distance between two rows.
func euclidean(a, b []float64) float64 {
	var sum float64
	for k, v := range a {
		d := v - b[k]
		sum += d * d
	}

	return math.Sqrt(sum)
}
