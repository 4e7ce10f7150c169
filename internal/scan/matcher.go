package scan

import (
	"fmt"
	"strings"
)

// Matcher enumerates occurrences of a pattern in a haystack, left to right.
// Implementations must return matches in ascending order; callers resume the
// scan at or after the end of the previous match, which guarantees the
// non-overlap invariant regardless of the underlying engine.
type Matcher interface {
	// FindNext returns the next occurrence starting at or after from.
	// ok is false when no further occurrence exists.
	FindNext(data []byte, from int) (start, end int, ok bool)
}

// horspoolMinLen is the needle length at which the skip-table search starts
// paying for its table build. Shorter needles use the plain forward scan.
const horspoolMinLen = 3

// NewMatcher selects the matcher for a single invocation.
// Selection logic:
//   - PCRE flag -> PCREMatcher (PCRE2 via pure Go port)
//   - Fixed pattern -> HorspoolMatcher for needles long enough to profit,
//     LiteralMatcher otherwise
//   - Pattern with no regex metacharacters -> treated as fixed (bypasses the
//     regex engine, same optimization ripgrep does)
//   - Otherwise -> PatternMatcher (RE2)
func NewMatcher(pattern string, fixed, usePCRE, ignoreCase bool) (Matcher, error) {
	if fixed && usePCRE {
		return nil, fmt.Errorf("fixed and pcre modes are mutually exclusive")
	}

	if usePCRE {
		return NewPCREMatcher(pattern, ignoreCase)
	}

	if fixed || isLiteral(pattern) {
		if len(pattern) >= horspoolMinLen {
			return NewHorspoolMatcher(pattern, ignoreCase), nil
		}
		return NewLiteralMatcher(pattern, ignoreCase), nil
	}

	return NewPatternMatcher(pattern, ignoreCase)
}

// isLiteral reports whether the pattern contains no regex metacharacters
// and can be treated as a fixed string.
func isLiteral(pattern string) bool {
	return !strings.ContainsAny(pattern, `\.+*?()|[]{}^$`)
}
