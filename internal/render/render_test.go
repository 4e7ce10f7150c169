package render

import (
	"strings"
	"testing"

	"github.com/dl/litgrep/internal/scan"
)

func indexOf(t *testing.T, input, needle string) *scan.Index {
	t.Helper()
	return scan.NewIndex([]byte(input), scan.NewLiteralMatcher(needle, false))
}

func TestTextRenderer_NoMatchWritesNothing(t *testing.T) {
	idx := indexOf(t, "nothing to see here\nmove along\n", "cat")
	tr := NewTextRenderer(NoStyles(), MatchColor("red"), false, false, false, true)

	buf := tr.Render(nil, Result{FilePath: "f.txt", Index: idx}, false)
	if len(buf) != 0 {
		t.Errorf("rendered %d bytes for a matchless result, want 0", len(buf))
	}
}

func TestTextRenderer_HighlightsBothLines(t *testing.T) {
	idx := indexOf(t, "the cat sat on the mat\ncats are cool\n", "cat")
	tr := NewTextRenderer(NoStyles(), MatchColor("bold-red"), false, false, false, true)

	out := string(tr.Render(nil, Result{Index: idx}, false))
	want := "the \x1b[1;31mcat\x1b[0m sat on the mat\n" +
		"\x1b[1;31mcat\x1b[0ms are cool\n"
	if out != want {
		t.Errorf("rendered %q, want %q", out, want)
	}
}

func TestTextRenderer_ThreeSegmentsOneLine(t *testing.T) {
	idx := indexOf(t, "ababab\n", "ab")
	tr := NewTextRenderer(NoStyles(), MatchColor("red"), false, false, false, true)

	out := string(tr.Render(nil, Result{Index: idx}, false))
	want := "\x1b[31mab\x1b[0m\x1b[31mab\x1b[0m\x1b[31mab\x1b[0m\n"
	if out != want {
		t.Errorf("rendered %q, want %q", out, want)
	}
}

func TestTextRenderer_NoColor(t *testing.T) {
	idx := indexOf(t, "the cat sat\n", "cat")
	tr := NewTextRenderer(NoStyles(), MatchColor("red"), false, false, false, false)

	out := string(tr.Render(nil, Result{Index: idx}, false))
	if out != "the cat sat\n" {
		t.Errorf("rendered %q, want plain line", out)
	}
}

func TestTextRenderer_LineNumbers(t *testing.T) {
	idx := indexOf(t, "miss\nhit here\nmiss\nhit again", "hit")
	tr := NewTextRenderer(NoStyles(), MatchColor("red"), true, false, false, false)

	out := string(tr.Render(nil, Result{Index: idx}, false))
	want := "2:hit here\n4:hit again\n"
	if out != want {
		t.Errorf("rendered %q, want %q", out, want)
	}
}

func TestTextRenderer_LastLineWithoutNewlineGetsOne(t *testing.T) {
	idx := indexOf(t, "cat", "cat")
	tr := NewTextRenderer(NoStyles(), MatchColor("red"), false, false, false, false)

	out := string(tr.Render(nil, Result{Index: idx}, false))
	if out != "cat\n" {
		t.Errorf("rendered %q, want %q", out, "cat\n")
	}
}

func TestTextRenderer_CountOnly(t *testing.T) {
	idx := indexOf(t, "ab ab\nxx\nab\n", "ab")
	tr := NewTextRenderer(NoStyles(), MatchColor("red"), false, true, false, false)

	// Count is matching lines, not total occurrences.
	out := string(tr.Render(nil, Result{FilePath: "f.txt", Index: idx}, false))
	if out != "2\n" {
		t.Errorf("rendered %q, want %q", out, "2\n")
	}

	out = string(tr.Render(nil, Result{FilePath: "f.txt", Index: idx}, true))
	if out != "f.txt:2\n" {
		t.Errorf("multiFile rendered %q, want %q", out, "f.txt:2\n")
	}
}

func TestTextRenderer_FilesOnly(t *testing.T) {
	tr := NewTextRenderer(NoStyles(), MatchColor("red"), false, false, true, false)

	hit := indexOf(t, "a cat\n", "cat")
	out := string(tr.Render(nil, Result{FilePath: "hit.txt", Index: hit}, true))
	if out != "hit.txt\n" {
		t.Errorf("rendered %q, want %q", out, "hit.txt\n")
	}

	miss := indexOf(t, "a dog\n", "cat")
	out = string(tr.Render(nil, Result{FilePath: "miss.txt", Index: miss}, true))
	if out != "" {
		t.Errorf("rendered %q for matchless file, want empty", out)
	}
}

func TestTextRenderer_MultiFilePrefix(t *testing.T) {
	idx := indexOf(t, "a cat\n", "cat")
	tr := NewTextRenderer(NoStyles(), MatchColor("red"), false, false, false, false)

	out := string(tr.Render(nil, Result{FilePath: "dir/f.txt", Index: idx}, true))
	if out != "dir/f.txt:a cat\n" {
		t.Errorf("rendered %q, want %q", out, "dir/f.txt:a cat\n")
	}
}

func TestAppendHighlighted_SingleMatchFastPath(t *testing.T) {
	line := []byte("the cat sat")
	out := appendHighlighted(nil, line, []int{4}, []int{7}, 0, "<", ">")
	if string(out) != "the <cat> sat" {
		t.Errorf("got %q", out)
	}
}

func TestAppendHighlighted_OutOfRangeSpanSkipped(t *testing.T) {
	line := []byte("short")
	// Span beyond the line content must be skipped, not read.
	out := appendHighlighted(nil, line, []int{99}, []int{102}, 0, "<", ">")
	if string(out) != "short" {
		t.Errorf("got %q, want line untouched", out)
	}

	// Same through the multi-span path.
	out = appendHighlighted(nil, line, []int{0, 99}, []int{2, 102}, 0, "<", ">")
	if string(out) != "<sh>ort" {
		t.Errorf("got %q, want only in-range span wrapped", out)
	}
}

func TestAppendHighlighted_ClampsSpanEnd(t *testing.T) {
	line := []byte("abc")
	out := appendHighlighted(nil, line, []int{1}, []int{10}, 0, "<", ">")
	if string(out) != "a<bc>" {
		t.Errorf("got %q", out)
	}
}

func TestJSONRenderer(t *testing.T) {
	idx := indexOf(t, "the cat sat\ncats\n", "cat")
	jr := NewJSONRenderer()

	out := string(jr.Render(nil, Result{FilePath: "f.txt", Index: idx}, true))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d JSON lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"line_number":1`) || !strings.Contains(lines[0], `"text":"the cat sat"`) {
		t.Errorf("first line = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"byte_offset":12`) {
		t.Errorf("second line = %s", lines[1])
	}
}

func TestJSONRenderer_NoMatch(t *testing.T) {
	idx := indexOf(t, "nothing\n", "cat")
	jr := NewJSONRenderer()
	if out := jr.Render(nil, Result{Index: idx}, false); len(out) != 0 {
		t.Errorf("rendered %q for matchless result", out)
	}
}

func TestMatchColor_Fallback(t *testing.T) {
	if got := MatchColor("chartreuse"); got != "\x1b[1;31m" {
		t.Errorf("unknown color resolved to %q, want bold red fallback", got)
	}
	if got := MatchColor("green"); got != "\x1b[32m" {
		t.Errorf("green resolved to %q", got)
	}
}

func TestOrderedSinkOrdering(t *testing.T) {
	// WriteOrdered must release every result even when they arrive out of
	// order; we track release order as a proxy for write order.
	var order []int
	results := make(chan Result, 3)
	for _, seq := range []int{3, 1, 2} {
		seq := seq
		results <- Result{
			SeqNum: seq,
			Index:  indexOf(t, "no hits here\n", "cat"),
			Closer: func() error {
				order = append(order, seq)
				return nil
			},
		}
	}
	close(results)

	ow := NewOrderedSink(NewSink(), NewJSONRenderer(), true)
	ow.WriteOrdered(results, nil)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("results processed in order %v, want [1 2 3]", order)
	}
}
