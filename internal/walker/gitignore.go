package walker

import (
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreStack tracks .gitignore rules as the walk descends. Each layer
// corresponds to one directory; directories without a .gitignore push a nil
// parser so pushes and pops stay balanced.
type ignoreStack struct {
	layers []ignoreLayer
}

type ignoreLayer struct {
	dir    string
	parser *ignore.GitIgnore
}

// push loads .gitignore from dir and pushes its rules.
func (s *ignoreStack) push(dir string) {
	parser, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		// No .gitignore or unreadable file; keep stack depth consistent.
		parser = nil
	}
	s.layers = append(s.layers, ignoreLayer{dir: dir, parser: parser})
}

// pop removes the top layer.
func (s *ignoreStack) pop() {
	if len(s.layers) > 0 {
		s.layers = s.layers[:len(s.layers)-1]
	}
}

// isIgnored checks fullPath against every active layer, innermost rules
// included. Paths are matched relative to the directory that owns each
// .gitignore, with a trailing slash for directories as git does.
func (s *ignoreStack) isIgnored(fullPath string, isDir bool) bool {
	for _, layer := range s.layers {
		if layer.parser == nil {
			continue
		}
		rel, err := filepath.Rel(layer.dir, fullPath)
		if err != nil {
			continue
		}
		if isDir {
			rel += "/"
		}
		if layer.parser.MatchesPath(rel) {
			return true
		}
	}
	return false
}
