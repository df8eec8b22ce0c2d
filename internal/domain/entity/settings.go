package entity

import "time"

// GlobalSettings is the process-wide dark mode configuration.
type GlobalSettings struct {
	EnabledByDefault bool     `json:"enabledByDefault"`
	Schedule         Schedule `json:"schedule"`
	Theme            Theme    `json:"theme"`
}

// DefaultGlobalSettings returns the settings written on first run.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		EnabledByDefault: false,
		Schedule:         DefaultSchedule(),
		Theme:            DefaultTheme(),
	}
}

// Sanitize replaces malformed theme fields with defaults.
// Schedule bounds are kept verbatim; IsWithin already treats them leniently.
func (g GlobalSettings) Sanitize() GlobalSettings {
	g.Theme = g.Theme.Sanitize()
	return g
}

// Validate returns every problem that Sanitize would silently fix.
func (g GlobalSettings) Validate() []string {
	errs := g.Schedule.Validate("schedule")
	return append(errs, g.Theme.Patch().Validate("theme")...)
}

// SiteOverride holds per-host choices. Enabled is tri-state: nil means
// "follow the global default", which is not the same as false.
type SiteOverride struct {
	Host      string      `json:"host"`
	Enabled   *bool       `json:"enabled,omitempty"`
	Theme     *ThemePatch `json:"theme,omitempty"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// NewSiteOverride creates an empty override for host.
func NewSiteOverride(host string) *SiteOverride {
	return &SiteOverride{
		Host:      host,
		UpdatedAt: time.Now(),
	}
}

// SetEnabled records an explicit choice for the site.
func (s *SiteOverride) SetEnabled(enabled bool) {
	s.Enabled = &enabled
	s.UpdatedAt = time.Now()
}

// ClearEnabled returns the site to the global default.
func (s *SiteOverride) ClearEnabled() {
	s.Enabled = nil
	s.UpdatedAt = time.Now()
}

// MergeTheme layers patch over the existing site theme.
func (s *SiteOverride) MergeTheme(patch *ThemePatch) {
	if patch.IsEmpty() {
		return
	}
	if s.Theme == nil {
		s.Theme = &ThemePatch{}
	}
	merged := *s.Theme
	for _, f := range ThemeFields {
		mergePatchField(&merged, patch, f)
	}
	s.Theme = &merged
	s.UpdatedAt = time.Now()
}

// IsEmpty reports whether the override carries no choice at all.
func (s *SiteOverride) IsEmpty() bool {
	return s == nil || (s.Enabled == nil && s.Theme.IsEmpty())
}

func mergePatchField(dst, src *ThemePatch, f ThemeField) {
	switch f {
	case ThemeFieldBackground:
		mergePtr(&dst.Background, src.Background)
	case ThemeFieldSurface:
		mergePtr(&dst.Surface, src.Surface)
	case ThemeFieldText:
		mergePtr(&dst.Text, src.Text)
	case ThemeFieldLink:
		mergePtr(&dst.Link, src.Link)
	case ThemeFieldAccent:
		mergePtr(&dst.Accent, src.Accent)
	case ThemeFieldBorder:
		mergePtr(&dst.Border, src.Border)
	case ThemeFieldBrightness:
		mergePtr(&dst.Brightness, src.Brightness)
	case ThemeFieldContrast:
		mergePtr(&dst.Contrast, src.Contrast)
	case ThemeFieldFont:
		mergePtr(&dst.Font, src.Font)
	}
}

func mergePtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
