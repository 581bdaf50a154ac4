package complexity

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cxlib/balance"
	"github.com/katalvlaran/cxlib/dimensionality"
	"github.com/katalvlaran/cxlib/linearity"
	"github.com/katalvlaran/cxlib/measure"
	"github.com/katalvlaran/cxlib/neighborhood"
	"github.com/katalvlaran/cxlib/network"
	"github.com/katalvlaran/cxlib/overlapping"
)

// Group identifies one measure family in the canonical registry.
type Group int

// Canonical groups, in merge order. Result keys always follow this
// order no matter how the selector spelled them.
const (
	Overlapping Group = iota
	Neighborhood
	Linearity
	Dimensionality
	Balance
	Network

	numGroups
)

// groupNames holds the canonical identifier of each group.
var groupNames = [numGroups]string{
	Overlapping:    "overlapping",
	Neighborhood:   "neighborhood",
	Linearity:      "linearity",
	Dimensionality: "dimensionality",
	Balance:        "balance",
	Network:        "network",
}

// groupFuncs binds each group to its computation entry point. A new
// family registers here and in the constant block; dispatch and merge
// code stays untouched.
var groupFuncs = [numGroups]measure.Func{
	Overlapping:    overlapping.Compute,
	Neighborhood:   neighborhood.Compute,
	Linearity:      linearity.Compute,
	Dimensionality: dimensionality.Compute,
	Balance:        balance.Compute,
	Network:        network.Compute,
}

// SelectorAll is the selector token expanding to every canonical group.
const SelectorAll = "all"

// Valid reports whether g names a canonical group.
func (g Group) Valid() bool { return g >= 0 && g < numGroups }

// String returns the canonical identifier, also used as the result key
// prefix.
func (g Group) String() string {
	if !g.Valid() {
		return fmt.Sprintf("group(%d)", int(g))
	}

	return groupNames[g]
}

// Groups returns the full canonical list in merge order.
func Groups() []Group {
	all := make([]Group, numGroups)
	for i := range all {
		all[i] = Group(i)
	}

	return all
}

// Resolve maps selector tokens onto canonical groups. A token is the
// literal "all", an exact canonical identifier, or an unambiguous
// prefix of one. Every token is validated even when "all" short-cuts
// the outcome; duplicates collapse; the resolved list comes back in
// canonical order regardless of token order. No tokens resolves to
// every group.
//
// Errors: ErrUnknownGroup when a token matches nothing,
// ErrAmbiguousGroup when it prefixes more than one identifier. Both
// name the offending token.
func Resolve(tokens ...string) ([]Group, error) {
	if len(tokens) == 0 {
		return Groups(), nil
	}

	var (
		all  bool
		seen [numGroups]bool
	)
	for _, tok := range tokens {
		if tok == SelectorAll {
			all = true
			continue
		}
		g, err := resolveToken(tok)
		if err != nil {
			return nil, err
		}
		seen[g] = true
	}
	if all {
		return Groups(), nil
	}

	out := make([]Group, 0, numGroups)
	for g := Group(0); g < numGroups; g++ {
		if seen[g] {
			out = append(out, g)
		}
	}

	return out, nil
}

// resolveToken matches one token: exact identifier first, then unique
// prefix.
func resolveToken(tok string) (Group, error) {
	if tok == "" {
		return -1, fmt.Errorf("%w: %q", ErrUnknownGroup, tok)
	}

	match := Group(-1)
	for g := Group(0); g < numGroups; g++ {
		name := groupNames[g]
		if tok == name {
			return g, nil
		}
		if strings.HasPrefix(name, tok) {
			if match >= 0 {
				return -1, fmt.Errorf("%w: %q matches %s and %s", ErrAmbiguousGroup, tok, match, g)
			}
			match = g
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("%w: %q", ErrUnknownGroup, tok)
	}

	return match, nil
}
