package complexity

import (
	"fmt"

	"github.com/katalvlaran/cxlib/measure"
)

// options collects the dispatch configuration gathered from Option
// setters.
type options struct {
	selector []string        // tokens for Resolve; nil leaves groups in charge
	groups   []Group         // typed selection; nil leaves selector in charge
	measure  measure.Options // forwarded verbatim to every group
	parallel bool
}

// defaultOptions runs every group sequentially with measure defaults.
func defaultOptions() options {
	return options{measure: measure.DefaultOptions()}
}

// Option adjusts one dispatch knob. Later options win over earlier
// ones.
type Option func(*options)

// WithSelection picks groups by selector token: "all", a canonical
// identifier, or an unambiguous prefix of one. Tokens are resolved when
// the computation runs; a bad token surfaces there as ErrUnknownGroup
// or ErrAmbiguousGroup. Overrides any earlier WithGroups. Panics when
// called with no tokens.
func WithSelection(tokens ...string) Option {
	if len(tokens) == 0 {
		panic("complexity: WithSelection: no tokens")
	}

	return func(o *options) {
		o.selector = append([]string(nil), tokens...)
		o.groups = nil
	}
}

// WithGroups picks groups by typed identifier, skipping string
// resolution. Overrides any earlier WithSelection. Panics on an
// unknown group or an empty list.
func WithGroups(groups ...Group) Option {
	if len(groups) == 0 {
		panic("complexity: WithGroups: no groups")
	}
	for _, g := range groups {
		if !g.Valid() {
			panic(fmt.Sprintf("complexity: WithGroups: unknown group %d", int(g)))
		}
	}

	return func(o *options) {
		o.groups = append([]Group(nil), groups...)
		o.selector = nil
	}
}

// WithMeasureOptions forwards opts verbatim to every group; the
// dispatcher reads none of it. The zero value means defaults, see
// measure.Options. Validated when the computation runs.
func WithMeasureOptions(opts measure.Options) Option {
	return func(o *options) { o.measure = opts }
}

// WithParallel runs the resolved groups concurrently, one goroutine
// per group. The observable outcome, including which error surfaces
// when several groups fail, matches the sequential run.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}

// gatherOptions folds setters over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// resolve turns the gathered selection into canonical-order groups.
// Typed groups collapse duplicates the same way selector tokens do.
func (o options) resolve() ([]Group, error) {
	if o.groups != nil {
		var seen [numGroups]bool
		for _, g := range o.groups {
			seen[g] = true
		}
		out := make([]Group, 0, numGroups)
		for g := Group(0); g < numGroups; g++ {
			if seen[g] {
				out = append(out, g)
			}
		}

		return out, nil
	}

	return Resolve(o.selector...)
}
