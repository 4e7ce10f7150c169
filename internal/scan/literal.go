package scan

import "bytes"

// LiteralMatcher finds a fixed needle with a plain forward scan: at each
// position, a length check followed by a byte comparison. Worst case is
// O(n*m), but mismatches fail on the first differing byte in practice.
type LiteralMatcher struct {
	needle     []byte
	needleLow  []byte // lowercased needle for case-insensitive
	ignoreCase bool
}

// NewLiteralMatcher creates a LiteralMatcher for a single fixed needle.
func NewLiteralMatcher(needle string, ignoreCase bool) *LiteralMatcher {
	n := []byte(needle)
	nLow := n
	if ignoreCase {
		nLow = bytes.ToLower(n)
	}
	return &LiteralMatcher{
		needle:     n,
		needleLow:  nLow,
		ignoreCase: ignoreCase,
	}
}

func (m *LiteralMatcher) FindNext(data []byte, from int) (int, int, bool) {
	nlen := len(m.needle)
	// An empty needle would match at every position; define it to match nowhere.
	if nlen == 0 || from < 0 {
		return 0, 0, false
	}

	// Length check before any byte comparison: a needle longer than the
	// remaining buffer cannot match.
	for i := from; i+nlen <= len(data); i++ {
		if m.equalAt(data, i) {
			return i, i + nlen, true
		}
	}
	return 0, 0, false
}

func (m *LiteralMatcher) equalAt(data []byte, i int) bool {
	if !m.ignoreCase {
		return bytes.Equal(data[i:i+len(m.needle)], m.needle)
	}
	for j, b := range m.needleLow {
		if toLowerASCII(data[i+j]) != b {
			return false
		}
	}
	return true
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
