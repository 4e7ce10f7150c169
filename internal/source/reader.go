package source

// ReadResult holds a loaded buffer and a cleanup function. The buffer is
// owned by the current invocation; Closer releases it (pool return, munmap)
// and must be called on every exit path once the buffer is no longer read.
type ReadResult struct {
	Data   []byte
	Closer func() error
}

// noopCloser is a package-level no-op closer to avoid allocating a func literal per file.
func noopCloser() error { return nil }

// Reader loads a whole input into a contiguous buffer.
type Reader interface {
	Read(path string) (ReadResult, error)
}
