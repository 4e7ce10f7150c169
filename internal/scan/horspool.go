package scan

import "bytes"

// HorspoolMatcher finds a fixed needle using the Boyer-Moore-Horspool
// algorithm: a 256-entry bad-character table lets the scan skip up to
// len(needle) bytes per mismatch. Same contract as LiteralMatcher; the
// indexer does not know which of the two it is driving.
type HorspoolMatcher struct {
	needle     []byte // lowercased when ignoreCase is set
	skip       [256]int
	ignoreCase bool
}

// NewHorspoolMatcher creates a HorspoolMatcher for a single fixed needle.
func NewHorspoolMatcher(needle string, ignoreCase bool) *HorspoolMatcher {
	n := []byte(needle)
	if ignoreCase {
		n = bytes.ToLower(n)
	}

	m := &HorspoolMatcher{needle: n, ignoreCase: ignoreCase}
	nlen := len(n)
	for i := range m.skip {
		m.skip[i] = nlen
	}
	// Last needle byte is excluded from the table: a mismatch there shifts
	// by the distance to the rightmost earlier occurrence.
	for i := 0; i < nlen-1; i++ {
		m.skip[n[i]] = nlen - 1 - i
		if ignoreCase {
			m.skip[toUpperASCII(n[i])] = nlen - 1 - i
		}
	}
	return m
}

func (m *HorspoolMatcher) FindNext(data []byte, from int) (int, int, bool) {
	nlen := len(m.needle)
	if nlen == 0 || from < 0 {
		return 0, 0, false
	}

	i := from
	for i+nlen <= len(data) {
		if m.equalAt(data, i) {
			return i, i + nlen, true
		}
		i += m.skip[data[i+nlen-1]]
	}
	return 0, 0, false
}

func (m *HorspoolMatcher) equalAt(data []byte, i int) bool {
	if !m.ignoreCase {
		return bytes.Equal(data[i:i+len(m.needle)], m.needle)
	}
	for j, b := range m.needle {
		if toLowerASCII(data[i+j]) != b {
			return false
		}
	}
	return true
}
