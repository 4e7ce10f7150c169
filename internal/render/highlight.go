package render

// appendHighlighted appends line to buf with each [starts[k], ends[k]) span
// wrapped in colorStart/colorReset. Offsets are absolute within the scanned
// buffer; base is the line's start offset. Spans arrive ascending and
// non-overlapping from the indexer.
//
// A span starting at or past the line content length is skipped rather than
// read out of bounds. The upstream invariants rule it out; hitting it here
// means an indexing bug, not bad input.
func appendHighlighted(buf, line []byte, starts, ends []int, base int, colorStart, colorReset string) []byte {
	// Fast path: a single match needs exactly three appends.
	if len(starts) == 1 {
		s, e := starts[0]-base, ends[0]-base
		if s >= len(line) || s < 0 {
			return append(buf, line...)
		}
		if e > len(line) {
			e = len(line)
		}
		buf = append(buf, line[:s]...)
		buf = append(buf, colorStart...)
		buf = append(buf, line[s:e]...)
		buf = append(buf, colorReset...)
		return append(buf, line[e:]...)
	}

	prev := 0
	for k := range starts {
		s, e := starts[k]-base, ends[k]-base
		if s >= len(line) || s < 0 {
			continue
		}
		if e > len(line) {
			e = len(line)
		}
		if s > prev {
			buf = append(buf, line[prev:s]...)
		}
		buf = append(buf, colorStart...)
		buf = append(buf, line[s:e]...)
		buf = append(buf, colorReset...)
		prev = e
	}
	if prev < len(line) {
		buf = append(buf, line[prev:]...)
	}
	return buf
}
