package render

import (
	"os"

	"golang.org/x/sys/unix"
)

// Sink writes fully rendered output to stdout using writev. Each Result is
// rendered into one contiguous buffer and handed over in a single call, so
// the kernel sees one write per input rather than one per line.
type Sink struct {
	fd int
}

// NewSink creates a Sink that writes to stdout.
func NewSink() *Sink {
	return &Sink{fd: int(os.Stdout.Fd())}
}

// Write writes data to the sink, retrying on short writes.
func (s *Sink) Write(data []byte) error {
	for len(data) > 0 {
		iovs := [][]byte{data}
		n, err := unix.Writev(s.fd, iovs)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// OrderedSink consumes results from a channel and writes them in sequence
// order, buffering results that arrive early. This keeps output
// deterministic under parallel workers.
type OrderedSink struct {
	sink      *Sink
	renderer  Renderer
	multiFile bool
}

// NewOrderedSink creates an OrderedSink.
func NewOrderedSink(s *Sink, r Renderer, multiFile bool) *OrderedSink {
	return &OrderedSink{
		sink:      s,
		renderer:  r,
		multiFile: multiFile,
	}
}

// WriteOrdered drains the channel, rendering and writing each result in
// sequence-number order. onMatch is invoked for every result that matched.
func (w *OrderedSink) WriteOrdered(results <-chan Result, onMatch func()) {
	nextSeq := 1
	pending := make(map[int]Result)
	var buf []byte

	write := func(r Result) {
		if r.Err == nil {
			buf = w.renderer.Render(buf[:0], r, w.multiFile)
			if len(buf) > 0 {
				w.sink.Write(buf)
			}
		}
		r.Release()
	}

	for r := range results {
		if r.Err == nil && r.HasMatch() && onMatch != nil {
			onMatch()
		}

		if r.SeqNum != nextSeq {
			pending[r.SeqNum] = r
			continue
		}
		write(r)
		nextSeq++
		for {
			p, ok := pending[nextSeq]
			if !ok {
				break
			}
			write(p)
			delete(pending, nextSeq)
			nextSeq++
		}
	}
}
