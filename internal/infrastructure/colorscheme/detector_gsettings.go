package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
)

// GsettingsDetector reads the GNOME desktop color-scheme.
type GsettingsDetector struct {
	run func() ([]byte, error)
}

// NewGsettingsDetector creates a detector that shells out to gsettings.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: func() ([]byte, error) {
		if _, err := exec.LookPath("gsettings"); err != nil {
			return nil, err
		}
		return exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	}}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Detect implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run()
	if err != nil {
		return false, false
	}

	// Output looks like "'prefer-dark'\n".
	switch strings.Trim(strings.TrimSpace(string(output)), "'\"") {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
