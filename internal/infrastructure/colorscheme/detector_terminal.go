package colorscheme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 30
)

// TerminalDetector queries the terminal background color through lipgloss.
// It has no opinion when stdout is not a terminal.
type TerminalDetector struct {
	isTerminal        func() bool
	hasDarkBackground func() bool
}

// NewTerminalDetector creates a detector for the process stdout.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{
		isTerminal: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd())
		},
		hasDarkBackground: lipgloss.HasDarkBackground,
	}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string {
	return detectorNameTerminal
}

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int {
	return priorityTerminal
}

// Detect implements port.ColorSchemeDetector.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	if !d.isTerminal() {
		return false, false
	}
	return d.hasDarkBackground(), true
}
