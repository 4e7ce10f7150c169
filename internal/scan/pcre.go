package scan

import "go.elara.ws/pcre"

// PCREMatcher enumerates matches using PCRE2-compatible regexes via the pure
// Go pcre package. Supports lookahead, lookbehind, backreferences, and atomic
// groups that RE2 rejects. Same whole-buffer-then-cursor strategy as
// PatternMatcher.
type PCREMatcher struct {
	re *pcre.Regexp

	data []byte
	locs [][]int
	next int
}

// NewPCREMatcher compiles a PCRE2 pattern string.
func NewPCREMatcher(pattern string, ignoreCase bool) (*PCREMatcher, error) {
	var opts pcre.CompileOption
	if ignoreCase {
		opts |= pcre.Caseless
	}

	re, err := pcre.CompileOpts(pattern, opts)
	if err != nil {
		return nil, err
	}
	return &PCREMatcher{re: re}, nil
}

func (m *PCREMatcher) FindNext(data []byte, from int) (int, int, bool) {
	if !sameBuffer(m.data, data) {
		m.data = data
		m.locs = m.re.FindAllIndex(data, -1)
		m.next = 0
	}
	return nextLoc(m.locs, &m.next, from)
}

// Close releases the compiled PCRE regex resources.
func (m *PCREMatcher) Close() {
	if m.re != nil {
		m.re.Close()
	}
}
