package cli

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/dl/litgrep/internal/render"
	"github.com/dl/litgrep/internal/scan"
	"github.com/dl/litgrep/internal/schedule"
	"github.com/dl/litgrep/internal/source"
	"github.com/dl/litgrep/internal/walker"
)

// Run executes the search with the given config.
// Returns exit code: 0 = match found, 1 = no match, 2 = error.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	// Compile once up front: an invalid pattern must fail before any
	// scanning starts, with no partial output.
	m, err := scan.NewMatcher(cfg.Pattern, cfg.Fixed, cfg.PCRE, cfg.IgnoreCase)
	if err != nil {
		logger.Error("invalid pattern", "pattern", cfg.Pattern, "err", err)
		return 2
	}

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = render.StdoutIsTerminal()
	}

	sink := render.NewSink()
	var renderer render.Renderer
	if cfg.JSONOutput {
		renderer = render.NewJSONRenderer()
	} else {
		styles := render.NoStyles()
		if useColor {
			styles = render.NewStyles()
		}
		renderer = render.NewTextRenderer(styles, render.MatchColor(cfg.MatchColor),
			cfg.LineNumbers, cfg.CountOnly, cfg.FileNamesOnly, useColor)
	}

	reader := source.NewAdaptiveReader(cfg.MmapThreshold)

	if len(cfg.Paths) == 0 {
		return runStdin(source.NewStdinReader(), m, renderer, sink, logger)
	}

	if cfg.Recursive {
		return runRecursive(m, reader, renderer, sink, cfg, logger)
	}

	return runFiles(cfg.Paths, m, reader, renderer, sink, logger)
}

func runStdin(reader source.Reader, m scan.Matcher, renderer render.Renderer, sink *render.Sink, logger *log.Logger) int {
	result := scanOne(reader, "", m)
	defer result.Release()

	if result.Err != nil {
		logger.Error("read stdin", "err", result.Err)
		return 2
	}
	if !result.HasMatch() {
		return 1
	}
	sink.Write(renderer.Render(nil, result, false))
	return 0
}

func runFiles(paths []string, m scan.Matcher, reader source.Reader, renderer render.Renderer, sink *render.Sink, logger *log.Logger) int {
	multiFile := len(paths) > 1
	hasMatch := false
	var buf []byte

	for _, path := range paths {
		result := scanOne(reader, path, m)
		if result.Err != nil {
			logger.Warn("read error", "path", path, "err", result.Err)
			result.Release()
			continue
		}
		if result.HasMatch() {
			hasMatch = true
		}
		buf = renderer.Render(buf[:0], result, multiFile)
		if len(buf) > 0 {
			sink.Write(buf)
		}
		result.Release()
	}

	if hasMatch {
		return 0
	}
	return 1
}

func runRecursive(m scan.Matcher, reader source.Reader, renderer render.Renderer, sink *render.Sink, cfg Config, logger *log.Logger) int {
	fileCh, errCh := walker.Walk(cfg.Paths, walker.Options{
		Recursive: true,
		NoIgnore:  cfg.NoIgnore,
		Hidden:    cfg.Hidden,
	})

	go func() {
		for err := range errCh {
			logger.Warn("walk error", "err", err)
		}
	}()

	// The first worker reuses the already-validated matcher; the rest get
	// fresh instances since pattern matchers carry scan state.
	first := atomic.Bool{}
	factory := func() (scan.Matcher, error) {
		if first.CompareAndSwap(false, true) {
			return m, nil
		}
		return scan.NewMatcher(cfg.Pattern, cfg.Fixed, cfg.PCRE, cfg.IgnoreCase)
	}

	sched := schedule.New(cfg.Workers, factory, reader)
	resultCh := sched.Run(fileCh)

	var hasMatch atomic.Bool
	ow := render.NewOrderedSink(sink, renderer, true)
	ow.WriteOrdered(resultCh, func() {
		hasMatch.Store(true)
	})

	if hasMatch.Load() {
		return 0
	}
	return 1
}

// scanOne runs the whole pipeline for a single input: load, index, and hand
// the tables to the caller. The result's closer owns the buffer.
func scanOne(r source.Reader, path string, m scan.Matcher) render.Result {
	result := render.Result{FilePath: path}

	readResult, err := r.Read(path)
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
