package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileEntry is a regular file discovered during traversal.
type FileEntry struct {
	Path string
}

// WalkError wraps a traversal failure with the path it occurred on.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("walk %s: %v", e.Path, e.Err)
}

func (e *WalkError) Unwrap() error { return e.Err }

// Options configures directory traversal behavior.
type Options struct {
	Recursive bool
	NoIgnore  bool // skip .gitignore processing
	Hidden    bool // include hidden files and directories
}

// Walk traverses the given roots and sends discovered files on the returned
// channel. Directories are descended depth-first; .gitignore files stack as
// the walk descends. With Recursive unset, roots are taken as literal file
// paths. Both channels are closed when traversal finishes.
func Walk(roots []string, opts Options) (<-chan FileEntry, <-chan error) {
	fileCh := make(chan FileEntry, 256)
	errCh := make(chan error, 16)

	go func() {
		defer close(fileCh)
		defer close(errCh)

		if !opts.Recursive {
			for _, root := range roots {
				info, err := os.Stat(root)
				if err != nil {
					errCh <- &WalkError{Path: root, Err: err}
					continue
				}
				if info.Mode().IsRegular() {
					fileCh <- FileEntry{Path: root}
				}
			}
			return
		}

		w := &walker{fileCh: fileCh, errCh: errCh, opts: opts}
		for _, root := range roots {
			w.walkDir(root)
		}
	}()

	return fileCh, errCh
}

type walker struct {
	fileCh  chan<- FileEntry
	errCh   chan<- error
	opts    Options
	ignores ignoreStack
}

func (w *walker) walkDir(dir string) {
	if !w.opts.NoIgnore {
		w.ignores.push(dir)
		defer w.ignores.pop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.errCh <- &WalkError{Path: dir, Err: err}
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !w.opts.Hidden && isHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)
		if entry.IsDir() {
			if name == ".git" {
				continue
			}
			if !w.opts.NoIgnore && w.ignores.isIgnored(path, true) {
				continue
			}
			w.walkDir(path)
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}
		if IsBinaryExtension(name) {
			continue
		}
		if !w.opts.NoIgnore && w.ignores.isIgnored(path, false) {
			continue
		}
		w.fileCh <- FileEntry{Path: path}
	}
}

// isHidden reports whether name is a dotfile. "." and ".." never reach here;
// os.ReadDir omits them.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
