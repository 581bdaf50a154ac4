package complexity

import "errors"

var (
	// ErrUnknownGroup indicates a selector token that matches no canonical
	// group identifier, not even as a prefix.
	ErrUnknownGroup = errors.New("complexity: unknown measure group")

	// ErrAmbiguousGroup indicates a selector token that is a prefix of more
	// than one canonical group identifier.
	ErrAmbiguousGroup = errors.New("complexity: ambiguous measure group")
)
