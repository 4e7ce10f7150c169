package cli

import "fmt"

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode converts the --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always, or never)", s)
}

// Config holds all configuration for a litgrep search.
type Config struct {
	Pattern       string
	Fixed         bool
	PCRE          bool
	IgnoreCase    bool
	Recursive     bool
	LineNumbers   bool
	CountOnly     bool
	FileNamesOnly bool
	JSONOutput    bool
	Color         ColorMode
	MatchColor    string // highlight color name, resolved with a fallback
	Workers       int
	NoIgnore      bool
	Hidden        bool
	MmapThreshold int64
	Paths         []string
}

// Validate checks that the config is coherent.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("no pattern specified")
	}
	if c.Fixed && c.PCRE {
		return fmt.Errorf("cannot use -F (fixed) and -P (pcre) together")
	}
	if c.CountOnly && c.FileNamesOnly {
		return fmt.Errorf("cannot use -c (count) and -l (files-with-matches) together")
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}
