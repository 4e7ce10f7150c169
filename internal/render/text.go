package render

import "strconv"

// Renderer turns a Result into output bytes.
// buf is a reusable buffer — implementations append to it and return the
// result; callers can pass buf[:0] to reuse the underlying array.
type Renderer interface {
	Render(buf []byte, result Result, multiFile bool) []byte
}

// TextRenderer renders matching lines as human-readable text with optional
// highlighting. A result with an empty match table renders to zero bytes.
type TextRenderer struct {
	styles      Styles
	lineNumbers bool
	countOnly   bool
	filesOnly   bool
	useColor    bool
	matchStart  string
	matchReset  string
}

// NewTextRenderer creates a TextRenderer. matchColor is the pre-resolved
// escape sequence wrapped around matched spans; it is treated as opaque here.
func NewTextRenderer(styles Styles, matchColor string, lineNumbers, countOnly, filesOnly, useColor bool) *TextRenderer {
	tr := &TextRenderer{
		styles:      styles,
		lineNumbers: lineNumbers,
		countOnly:   countOnly,
		filesOnly:   filesOnly,
		useColor:    useColor,
	}
	if useColor {
		tr.matchStart = matchColor
		tr.matchReset = ansiReset
	}
	return tr
}

func (f *TextRenderer) Render(buf []byte, result Result, multiFile bool) []byte {
	idx := result.Index
	if idx == nil {
		return buf
	}

	if f.filesOnly {
		if idx.HasMatch() {
			buf = append(buf, f.styles.Filename.Render(result.FilePath)...)
			buf = append(buf, '\n')
		}
		return buf
	}

	if f.countOnly {
		if multiFile {
			buf = append(buf, f.styles.Filename.Render(result.FilePath)...)
			buf = append(buf, f.styles.Separator.Render(":")...)
		}
		buf = strconv.AppendInt(buf, int64(idx.MatchingLineCount()), 10)
		buf = append(buf, '\n')
		return buf
	}

	if !idx.HasMatch() {
		return buf
	}

	// Filename and separator decorations are per-file; resolve them once.
	var filePrefix string
	if multiFile {
		filePrefix = f.styles.Filename.Render(result.FilePath) + f.styles.Separator.Render(":")
	}

	// Join lines with their matches through one monotonic cursor over the
	// match table. MatchLines is non-decreasing, so each line's matches are
	// a contiguous run; lines without matches are never visited at all.
	for c := 0; c < len(idx.Matches); {
		li := idx.MatchLines[c]
		lo := c
		for c < len(idx.MatchLines) && idx.MatchLines[c] == li {
			c++
		}

		start, end := idx.LineSpan(li)
		line := idx.Data[start:end]

		if multiFile {
			buf = append(buf, filePrefix...)
		}
		if f.lineNumbers {
			if f.useColor {
				buf = append(buf, ansiGreen...)
				buf = strconv.AppendInt(buf, int64(li+1), 10)
				buf = append(buf, ansiReset...)
				buf = append(buf, ansiCyan...)
				buf = append(buf, ':')
				buf = append(buf, ansiReset...)
			} else {
				buf = strconv.AppendInt(buf, int64(li+1), 10)
				buf = append(buf, ':')
			}
		}

		if f.useColor {
			buf = appendHighlighted(buf, line, idx.Matches[lo:c], idx.MatchEnds[lo:c], start, f.matchStart, f.matchReset)
		} else {
			buf = append(buf, line...)
		}

		// Exactly one terminating newline per rendered line, regardless of
		// whether the source line had one.
		buf = append(buf, '\n')
	}

	return buf
}

// Ensure TextRenderer implements Renderer.
var _ Renderer = (*TextRenderer)(nil)
