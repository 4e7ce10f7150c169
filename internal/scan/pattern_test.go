package scan

import "testing"

func collectMatches(m Matcher, data []byte) [][2]int {
	var out [][2]int
	from := 0
	for {
		s, e, ok := m.FindNext(data, from)
		if !ok {
			return out
		}
		out = append(out, [2]int{s, e})
		from = e
	}
}

func TestPatternMatcher_FindNext(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		input      string
		want       [][2]int
	}{
		{"digits", `\d+`, false, "ab12cd345", [][2]int{{2, 4}, {6, 9}}},
		{"no match", `\d`, false, "abcdef", nil},
		{"case insensitive", `hello`, true, "Hello HELLO", [][2]int{{0, 5}, {6, 11}}},
		{"anchored start", `^ab`, false, "abab", [][2]int{{0, 2}}},
		{"zero width never yielded", `x*`, false, "ab", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewPatternMatcher(tt.pattern, tt.ignoreCase)
			if err != nil {
				t.Fatalf("NewPatternMatcher() error: %v", err)
			}
			got := collectMatches(m, []byte(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("match[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPatternMatcher_CompileError(t *testing.T) {
	if _, err := NewPatternMatcher("[unclosed", false); err == nil {
		t.Error("expected compile error")
	}
}

func TestPCREMatcher_FindNext(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    [][2]int
	}{
		{"plain", `cat`, "a cat sat", [][2]int{{2, 5}}},
		{"lookbehind", `(?<=\$)\d+`, "costs $42 now", [][2]int{{7, 9}}},
		{"backreference", `(\w)\1`, "aabbc", [][2]int{{0, 2}, {2, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewPCREMatcher(tt.pattern, false)
			if err != nil {
				t.Fatalf("NewPCREMatcher() error: %v", err)
			}
			defer m.Close()

			got := collectMatches(m, []byte(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("match[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPCREMatcher_CompileError(t *testing.T) {
	if _, err := NewPCREMatcher("(?<=*)", false); err == nil {
		t.Error("expected compile error")
	}
}
