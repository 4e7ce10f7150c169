package source

// MemoryReader serves an in-memory text as the input buffer. The buffer is
// borrowed, not owned: the closer is a no-op and the caller keeps the bytes
// alive for the duration of the search.
type MemoryReader struct {
	data []byte
}

// NewMemoryReader creates a MemoryReader over text.
func NewMemoryReader(text []byte) *MemoryReader {
	return &MemoryReader{data: text}
}

func (r *MemoryReader) Read(_ string) (ReadResult, error) {
	return ReadResult{Data: r.data, Closer: noopCloser}, nil
}
