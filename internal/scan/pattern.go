package scan

import "regexp"

// PatternMatcher enumerates matches of an RE2 regular expression.
//
// The engine runs over the whole buffer once on the first FindNext call and
// serves later calls from the cached location list. Re-running FindIndex on
// subslices would be both quadratic and wrong for anchored patterns, since a
// subslice start looks like text start to ^.
type PatternMatcher struct {
	re *regexp.Regexp

	data []byte  // buffer the cached locations belong to
	locs [][]int // FindAllIndex result for data
	next int
}

// NewPatternMatcher compiles pattern with Go's RE2 engine.
// A compile error is fatal to the invocation: it surfaces before any
// scanning starts, so an invalid pattern never produces partial output.
func NewPatternMatcher(pattern string, ignoreCase bool) (*PatternMatcher, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &PatternMatcher{re: re}, nil
}

func (m *PatternMatcher) FindNext(data []byte, from int) (int, int, bool) {
	if !sameBuffer(m.data, data) {
		m.data = data
		m.locs = m.re.FindAllIndex(data, -1)
		m.next = 0
	}
	return nextLoc(m.locs, &m.next, from)
}

// nextLoc advances *cursor past locations starting before from and returns
// the first non-empty one. Zero-width matches are skipped: the match table
// cannot represent them and skipping ahead by their length would not
// terminate the scan.
func nextLoc(locs [][]int, cursor *int, from int) (int, int, bool) {
	for *cursor < len(locs) {
		loc := locs[*cursor]
		if loc[0] < from || loc[1] <= loc[0] {
			*cursor++
			continue
		}
		*cursor++
		return loc[0], loc[1], true
	}
	return 0, 0, false
}

// sameBuffer reports whether a and b are the same backing slice.
func sameBuffer(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
