package source

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// readChunk is the step size for the pread loop. The destination buffer is
// pre-sized from fstat, so chunking costs nothing extra while keeping each
// syscall bounded.
const readChunk = 64 * 1024

// bufPool pools read buffers to reduce per-file heap allocations.
// Buffers are stored as *[]byte so the pool can reuse the backing array
// even when the slice grows beyond its original capacity.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, readChunk)
		return &b
	},
}

// BufferedReader reads files with unix.Open + unix.Pread into pooled buffers.
type BufferedReader struct{}

// NewBufferedReader creates a new BufferedReader.
func NewBufferedReader() *BufferedReader {
	return &BufferedReader{}
}

func (r *BufferedReader) Read(path string) (ReadResult, error) {
	fd, err := openFile(path)
	if err != nil {
		return ReadResult{}, fmt.Errorf("open %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return ReadResult{}, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.Size == 0 {
		unix.Close(fd)
		return ReadResult{Data: nil, Closer: noopCloser}, nil
	}

	return readBuffered(fd, stat.Size)
}

// readBuffered reads a file from an already-open fd into a pooled buffer,
// pre-sized from the fstat size hint and read in fixed 64KiB steps until the
// kernel reports end-of-stream. Zero bytes read is EOF, not an error. The
// buffer is trimmed (or grown, if the file changed size underneath us) to
// the actual byte count.
// Takes ownership of fd — caller must not close it.
func readBuffered(fd int, size int64) (ReadResult, error) {
	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < int(size) {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}

	var total int
	for {
		if total == len(buf) {
			// File larger than the size hint; grow and keep reading.
			buf = append(buf, make([]byte, readChunk)...)
		}
		limit := total + readChunk
		if limit > len(buf) {
			limit = len(buf)
		}
		n, err := unix.Pread(fd, buf[total:limit], int64(total))
		if err != nil {
			unix.Close(fd)
			*bp = buf
			bufPool.Put(bp)
			return ReadResult{}, err
		}
		if n == 0 {
			break // end of stream
		}
		total += n
	}

	unix.Close(fd)

	return ReadResult{
		Data: buf[:total],
		Closer: func() error {
			*bp = buf
			bufPool.Put(bp)
			return nil
		},
	}, nil
}

// openFile opens a file with O_NOATIME, falling back without it.
func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY, 0)
	}
	return fd, err
}
