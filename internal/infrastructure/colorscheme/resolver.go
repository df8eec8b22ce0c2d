// Package colorscheme decides whether CLI output uses the dark or light palette.
package colorscheme

import (
	"sort"
	"strings"

	"github.com/bnema/duskmode/internal/application/port"
)

const (
	sourceFallback = "fallback"
	sourceConfig   = "config"
)

// Resolver implements port.ColorSchemeResolver.
// An explicit preference wins, then detectors by priority, then dark.
type Resolver struct {
	preference string
	detectors  []port.ColorSchemeDetector
}

// NewResolver creates a resolver. preference is the appearance.color_scheme
// value: "prefer-dark", "prefer-light" or "default".
func NewResolver(preference string, detectors ...port.ColorSchemeDetector) *Resolver {
	sorted := make([]port.ColorSchemeDetector, len(detectors))
	copy(sorted, detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return &Resolver{preference: preference, detectors: sorted}
}

// DefaultDetectors returns every detector this package provides.
func DefaultDetectors() []port.ColorSchemeDetector {
	return []port.ColorSchemeDetector{
		NewTerminalDetector(),
		NewEnvDetector(),
		NewGsettingsDetector(),
	}
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	switch strings.ToLower(r.preference) {
	case "prefer-dark", "dark":
		return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
	case "prefer-light", "light":
		return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
	}

	for _, detector := range r.detectors {
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{PrefersDark: prefersDark, Source: detector.Name()}
		}
	}

	return port.ColorSchemePreference{PrefersDark: true, Source: sourceFallback}
}
