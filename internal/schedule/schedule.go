// Package schedule fans file entries out to a pool of workers. Each worker
// runs the full scan pipeline on one file at a time; parallelism exists only
// across files, never inside one scan.
package schedule

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dl/litgrep/internal/render"
	"github.com/dl/litgrep/internal/scan"
	"github.com/dl/litgrep/internal/source"
	"github.com/dl/litgrep/internal/walker"
)

// MatcherFactory builds a fresh matcher. Pattern matchers carry per-buffer
// scan state, so every worker gets its own instance instead of sharing one.
type MatcherFactory func() (scan.Matcher, error)

// Scheduler manages a pool of workers that scan files concurrently.
type Scheduler struct {
	workers    int
	newMatcher MatcherFactory
	reader     source.Reader
}

// New creates a Scheduler with the given number of workers.
// If workers is 0, defaults to NumCPU * 2.
func New(workers int, newMatcher MatcherFactory, r source.Reader) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	return &Scheduler{
		workers:    workers,
		newMatcher: newMatcher,
		reader:     r,
	}
}

// Run processes files from the channel and returns sequence-numbered results
// for ordered output. The result channel is closed when all workers finish.
func (s *Scheduler) Run(files <-chan walker.FileEntry) <-chan render.Result {
	resultCh := make(chan render.Result, s.workers*2)
	var seq atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			m, err := s.newMatcher()
			if err != nil {
				// The factory was validated before scheduling; drain rather
				// than deadlock if it fails anyway.
				for range files {
				}
				return
			}

			for entry := range files {
				seqNum := int(seq.Add(1))
				result := s.scanFile(entry, m)
				result.SeqNum = seqNum
				resultCh <- result
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	return resultCh
}

// scanFile loads one file and runs the indexer over it. The returned
// result's Closer owns the buffer; the consumer releases it after rendering.
func (s *Scheduler) scanFile(entry walker.FileEntry, m scan.Matcher) render.Result {
	result := render.Result{FilePath: entry.Path}

	readResult, err := s.reader.Read(entry.Path)
	if err != nil {
		result.Err = err
		return result
	}

	if readResult.Data == nil || walker.IsBinary(readResult.Data) {
		readResult.Closer()
		return result
	}

	result.Index = scan.NewIndex(readResult.Data, m)
	result.Closer = readResult.Closer
	return result
}
