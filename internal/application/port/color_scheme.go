package port

// ColorSchemePreference is the resolved light/dark choice for terminal output.
type ColorSchemePreference struct {
	PrefersDark bool
	// Source names the detector that decided, "config" or "fallback".
	Source string
}

// ColorSchemeDetector guesses whether the user works on a dark background.
type ColorSchemeDetector interface {
	Name() string
	// Priority orders detectors; higher runs first.
	Priority() int
	// Detect returns ok=false when the detector has no opinion.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver resolves the effective color scheme preference.
type ColorSchemeResolver interface {
	Resolve() ColorSchemePreference
}
