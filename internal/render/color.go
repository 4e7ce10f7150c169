package render

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// ANSI sequences used on the hot highlighting path. Kept as raw constants so
// per-line rendering is a plain byte append.
const (
	ansiReset   = "\x1b[0m"
	ansiBoldRed = "\x1b[1;31m"
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiBlue    = "\x1b[34m"
	ansiMagenta = "\x1b[35m"
	ansiCyan    = "\x1b[36m"
)

// palette is the closed set of highlight color names accepted on the command
// line.
var palette = map[string]string{
	"red":      ansiRed,
	"green":    ansiGreen,
	"yellow":   ansiYellow,
	"blue":     ansiBlue,
	"magenta":  ansiMagenta,
	"cyan":     ansiCyan,
	"bold-red": ansiBoldRed,
}

// MatchColor resolves a color name to its escape sequence. Unknown names
// fall back to bold red rather than failing the search.
func MatchColor(name string) string {
	if seq, ok := palette[name]; ok {
		return seq
	}
	return ansiBoldRed
}

// ResetColor returns the sequence that ends a highlighted span.
func ResetColor() string { return ansiReset }

// Styles holds the lipgloss styles for the decorations around line content.
type Styles struct {
	Filename  lipgloss.Style
	LineNum   lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Filename:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		LineNum:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Filename:  lipgloss.NewStyle(),
		LineNum:   lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
	}
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
