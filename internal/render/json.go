package render

import "encoding/json"

// JSONRenderer renders results as JSON Lines (one object per matching line).
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// jsonMatch is the serialization format for one matching line.
type jsonMatch struct {
	Type       string    `json:"type"`
	File       string    `json:"file,omitempty"`
	LineNum    int       `json:"line_number"`
	ByteOffset int       `json:"byte_offset"`
	Text       string    `json:"text"`
	Matches    []jsonPos `json:"matches,omitempty"`
}

type jsonPos struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (f *JSONRenderer) Render(buf []byte, result Result, multiFile bool) []byte {
	idx := result.Index
	if idx == nil || !idx.HasMatch() {
		return buf
	}

	for c := 0; c < len(idx.Matches); {
		li := idx.MatchLines[c]
		lo := c
		for c < len(idx.MatchLines) && idx.MatchLines[c] == li {
			c++
		}

		start, end := idx.LineSpan(li)
		jm := jsonMatch{
			Type:       "match",
			File:       result.FilePath,
			LineNum:    li + 1,
			ByteOffset: start,
			Text:       string(idx.Data[start:end]),
			Matches:    make([]jsonPos, 0, c-lo),
		}
		for k := lo; k < c; k++ {
			s, e := idx.Matches[k]-start, idx.MatchEnds[k]-start
			if e > end-start {
				e = end - start
			}
			jm.Matches = append(jm.Matches, jsonPos{Start: s, End: e})
		}

		data, _ := json.Marshal(jm)
		buf = append(buf, data...)
		buf = append(buf, '\n')
	}
	return buf
}

// Ensure JSONRenderer implements Renderer.
var _ Renderer = (*JSONRenderer)(nil)
