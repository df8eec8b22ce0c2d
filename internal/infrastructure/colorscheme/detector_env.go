package colorscheme

import (
	"os"
	"strconv"
	"strings"
)

const (
	detectorNameEnv = "env"
	priorityEnv     = 20
)

// EnvDetector reads COLORFGBG (set by many terminals) and GTK_THEME.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a detector over the process environment.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Detect implements port.ColorSchemeDetector.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	// COLORFGBG is "fg;bg" or "fg;default;bg"; ANSI colors 0-6 and 8 are dark.
	if fgbg := d.getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			return bg <= 6 || bg == 8, true
		}
	}
	if gtkTheme := d.getenv("GTK_THEME"); gtkTheme != "" {
		return strings.Contains(strings.ToLower(gtkTheme), "dark"), true
	}
	return false, false
}
