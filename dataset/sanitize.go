package dataset

import (
	"strconv"
	"strings"
)

// isNameRune reports whether r may appear in a sanitized column name.
func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}

// sanitizeNames normalizes raw column names into unique identifiers.
//
// Rules, applied in order:
//  1. every rune outside [A-Za-z0-9_] becomes '_';
//  2. an empty name, or one starting with a digit, receives an "X" prefix;
//  3. duplicates keep the first occurrence and suffix later ones with
//     "_2", "_3", ... until unique.
//
// The returned map records sanitized→original for every name rule 1-3
// actually changed, so callers can surface the rename to the user.
func sanitizeNames(raw []string) ([]string, map[string]string) {
	clean := make([]string, len(raw))
	renames := make(map[string]string)
	seen := make(map[string]int, len(raw))

	for i, name := range raw {
		// Step 1: character cleanup.
		var b strings.Builder
		b.Grow(len(name))
		for _, r := range name {
			if isNameRune(r) {
				b.WriteRune(r)
			} else {
				b.WriteByte('_')
			}
		}
		s := b.String()

		// Step 2: identifiers must not be empty or start with a digit.
		if s == "" || (s[0] >= '0' && s[0] <= '9') {
			s = "X" + s
		}

		// Step 3: disambiguate duplicates deterministically.
		if _, dup := seen[s]; dup {
			base := s
			for n := 2; ; n++ {
				s = base + "_" + strconv.Itoa(n)
				if _, taken := seen[s]; !taken {
					break
				}
			}
		}
		seen[s] = i

		clean[i] = s
		if s != name {
			renames[s] = name
		}
	}

	return clean, renames
}
