package render

import "github.com/dl/litgrep/internal/scan"

// Result aggregates the scan of a single input.
type Result struct {
	FilePath string
	SeqNum   int
	Index    *scan.Index
	Err      error
	// Closer releases the buffer that Index borrows. Must be called after
	// the result has been fully rendered.
	Closer func() error
}

// HasMatch returns true if this result has at least one match.
func (r *Result) HasMatch() bool {
	return r.Index != nil && r.Index.HasMatch()
}

// Release invokes the closer, if any.
func (r *Result) Release() {
	if r.Closer != nil {
		r.Closer()
	}
}
