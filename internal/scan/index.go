package scan

import "bytes"

// Index holds the tables produced by one forward pass over a buffer: line
// start offsets, match offsets, and the line each match belongs to. All
// tables are read-only after NewIndex returns and share the lifetime of the
// underlying buffer.
type Index struct {
	// Data is the scanned buffer. The Index borrows it; releasing the
	// buffer invalidates the whole Index.
	Data []byte

	// LineStarts has one ascending entry per line. The first entry is
	// always 0; each later entry is the offset just after a newline byte.
	// A trailing newline at end-of-buffer does not open an extra line.
	LineStarts []int

	// Matches and MatchEnds are the ascending, non-overlapping [start,end)
	// offsets of each occurrence. MatchLines is co-indexed and
	// non-decreasing: the 0-based line index containing each match.
	Matches    []int
	MatchEnds  []int
	MatchLines []int
}

// Table presizing heuristics, growable if exceeded: one line per ~80 bytes,
// one match per ~1000 bytes of input.
const (
	lineTableDivisor  = 80
	matchTableDivisor = 1000
)

// NewIndex scans data once, recording line boundaries and every match the
// matcher yields. Line detection and match enumeration advance in the same
// left-to-right pass; on a hit the cursor skips the full match length, so
// occurrences never overlap.
//
// A match that would span a newline is discarded: line-based rendering has
// no way to represent it, and a literal needle without embedded newlines can
// never produce one.
func NewIndex(data []byte, m Matcher) *Index {
	idx := &Index{
		Data:       data,
		LineStarts: make([]int, 1, len(data)/lineTableDivisor+1),
		Matches:    make([]int, 0, len(data)/matchTableDivisor+1),
		MatchEnds:  make([]int, 0, len(data)/matchTableDivisor+1),
		MatchLines: make([]int, 0, len(data)/matchTableDivisor+1),
	}
	idx.LineStarts[0] = 0

	line := 0
	ms, me, ok := m.FindNext(data, 0)

	for i := 0; i < len(data); {
		if ok && ms < i {
			// Matcher fell behind the cursor (e.g. its previous hit was
			// discarded); re-query from the current position.
			ms, me, ok = m.FindNext(data, i)
			continue
		}

		if ok && ms == i {
			if me <= ms {
				ok = false
				continue
			}
			if j := bytes.IndexByte(data[ms:me], '\n'); j >= 0 {
				// Cross-line match: drop it and resume just past its start.
				ms, me, ok = m.FindNext(data, ms+1)
				continue
			}
			idx.Matches = append(idx.Matches, ms)
			idx.MatchEnds = append(idx.MatchEnds, me)
			idx.MatchLines = append(idx.MatchLines, line)
			i = me
			ms, me, ok = m.FindNext(data, i)
			continue
		}

		if data[i] == '\n' && i+1 < len(data) {
			idx.LineStarts = append(idx.LineStarts, i+1)
			line++
		}
		i++
	}

	return idx
}

// LineCount returns the number of lines in the buffer. An empty buffer has
// one empty line.
func (x *Index) LineCount() int { return len(x.LineStarts) }

// MatchCount returns the number of recorded matches.
func (x *Index) MatchCount() int { return len(x.Matches) }

// HasMatch reports whether any match was recorded.
func (x *Index) HasMatch() bool { return len(x.Matches) > 0 }

// LineSpan returns the [start,end) byte range of line li, excluding the
// terminating newline if one is present.
func (x *Index) LineSpan(li int) (start, end int) {
	start = x.LineStarts[li]
	if li+1 < len(x.LineStarts) {
		end = x.LineStarts[li+1] - 1
		return start, end
	}
	end = len(x.Data)
	if end > start && x.Data[end-1] == '\n' {
		end--
	}
	return start, end
}

// LineBytes returns the content of line li without its trailing newline.
func (x *Index) LineBytes(li int) []byte {
	start, end := x.LineSpan(li)
	return x.Data[start:end]
}

// MatchingLineCount returns the number of distinct lines containing at least
// one match. MatchLines is non-decreasing, so counting transitions suffices.
func (x *Index) MatchingLineCount() int {
	count := 0
	prev := -1
	for _, li := range x.MatchLines {
		if li != prev {
			count++
			prev = li
		}
	}
	return count
}
