package entity

import (
	"math"
	"strconv"

	"github.com/bnema/duskmode/internal/domain/validation"
)

// ThemeFieldsVersion is bumped whenever a field is added to ThemeFields.
// Stored patches carry no version; unknown fields are ignored on decode.
const ThemeFieldsVersion = 1

// ThemeField names one merge-able field of a Theme.
type ThemeField string

const (
	ThemeFieldBackground ThemeField = "bg"
	ThemeFieldSurface    ThemeField = "surface"
	ThemeFieldText       ThemeField = "text"
	ThemeFieldLink       ThemeField = "link"
	ThemeFieldAccent     ThemeField = "accent"
	ThemeFieldBorder     ThemeField = "border"
	ThemeFieldBrightness ThemeField = "brightness"
	ThemeFieldContrast   ThemeField = "contrast"
	ThemeFieldFont       ThemeField = "font"
)

// ThemeFields is the closed list of fields merged by ResolveTheme.
// Every field added to Theme must be listed here and handled in applyField.
var ThemeFields = []ThemeField{
	ThemeFieldBackground,
	ThemeFieldSurface,
	ThemeFieldText,
	ThemeFieldLink,
	ThemeFieldAccent,
	ThemeFieldBorder,
	ThemeFieldBrightness,
	ThemeFieldContrast,
	ThemeFieldFont,
}

// Default theme values.
const (
	DefaultBackground = "#121212"
	DefaultSurface    = "#1e293b"
	DefaultText       = "#e5e7eb"
	DefaultLink       = "#93c5fd"
	DefaultAccent     = "#ef4444"
	DefaultBorder     = "#334155"
	DefaultBrightness = 1.0
	DefaultContrast   = 1.05
	DefaultFont       = "system-ui"
)

// Theme is a fully populated set of rendering parameters.
type Theme struct {
	Background string  `json:"bg" mapstructure:"bg" toml:"bg"`
	Surface    string  `json:"surface" mapstructure:"surface" toml:"surface"`
	Text       string  `json:"text" mapstructure:"text" toml:"text"`
	Link       string  `json:"link" mapstructure:"link" toml:"link"`
	Accent     string  `json:"accent" mapstructure:"accent" toml:"accent"`
	Border     string  `json:"border" mapstructure:"border" toml:"border"`
	Brightness float64 `json:"brightness" mapstructure:"brightness" toml:"brightness"`
	Contrast   float64 `json:"contrast" mapstructure:"contrast" toml:"contrast"`
	Font       string  `json:"font" mapstructure:"font" toml:"font"`
}

// ThemePatch is a partial Theme. Nil fields are left untouched by ResolveTheme.
type ThemePatch struct {
	Background *string  `json:"bg,omitempty"`
	Surface    *string  `json:"surface,omitempty"`
	Text       *string  `json:"text,omitempty"`
	Link       *string  `json:"link,omitempty"`
	Accent     *string  `json:"accent,omitempty"`
	Border     *string  `json:"border,omitempty"`
	Brightness *float64 `json:"brightness,omitempty"`
	Contrast   *float64 `json:"contrast,omitempty"`
	Font       *string  `json:"font,omitempty"`
}

// ThemeVariable is one published rendering parameter.
type ThemeVariable struct {
	Name  string
	Value string
}

// DefaultTheme returns the compiled-in theme.
func DefaultTheme() Theme {
	return Theme{
		Background: DefaultBackground,
		Surface:    DefaultSurface,
		Text:       DefaultText,
		Link:       DefaultLink,
		Accent:     DefaultAccent,
		Border:     DefaultBorder,
		Brightness: DefaultBrightness,
		Contrast:   DefaultContrast,
		Font:       DefaultFont,
	}
}

// ResolveTheme applies overrides to base from left to right.
// base must be fully populated; nil overrides are skipped.
func ResolveTheme(base Theme, overrides ...*ThemePatch) Theme {
	out := base
	for _, p := range overrides {
		if p == nil {
			continue
		}
		for _, f := range ThemeFields {
			applyField(&out, p, f)
		}
	}
	return out
}

func applyField(t *Theme, p *ThemePatch, f ThemeField) {
	switch f {
	case ThemeFieldBackground:
		setString(&t.Background, p.Background)
	case ThemeFieldSurface:
		setString(&t.Surface, p.Surface)
	case ThemeFieldText:
		setString(&t.Text, p.Text)
	case ThemeFieldLink:
		setString(&t.Link, p.Link)
	case ThemeFieldAccent:
		setString(&t.Accent, p.Accent)
	case ThemeFieldBorder:
		setString(&t.Border, p.Border)
	case ThemeFieldBrightness:
		if p.Brightness != nil {
			t.Brightness = *p.Brightness
		}
	case ThemeFieldContrast:
		if p.Contrast != nil {
			t.Contrast = *p.Contrast
		}
	case ThemeFieldFont:
		setString(&t.Font, p.Font)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Patch returns a patch that sets every field of t.
func (t Theme) Patch() *ThemePatch {
	return &ThemePatch{
		Background: ptr(t.Background),
		Surface:    ptr(t.Surface),
		Text:       ptr(t.Text),
		Link:       ptr(t.Link),
		Accent:     ptr(t.Accent),
		Border:     ptr(t.Border),
		Brightness: ptr(t.Brightness),
		Contrast:   ptr(t.Contrast),
		Font:       ptr(t.Font),
	}
}

// Sanitize replaces malformed fields with their defaults.
func (t Theme) Sanitize() Theme {
	return ResolveTheme(DefaultTheme(), t.Patch().Sanitize())
}

// Variables returns the rendering parameters in ThemeFields order.
func (t Theme) Variables() []ThemeVariable {
	return []ThemeVariable{
		{Name: "--dme-bg", Value: t.Background},
		{Name: "--dme-surface", Value: t.Surface},
		{Name: "--dme-text", Value: t.Text},
		{Name: "--dme-link", Value: t.Link},
		{Name: "--dme-accent", Value: t.Accent},
		{Name: "--dme-border", Value: t.Border},
		{Name: "--dme-brightness", Value: formatFactor(t.Brightness)},
		{Name: "--dme-contrast", Value: formatFactor(t.Contrast)},
		{Name: "--dme-font", Value: t.Font},
	}
}

// IsEmpty reports whether the patch sets no field.
func (p *ThemePatch) IsEmpty() bool {
	if p == nil {
		return true
	}
	return *p == ThemePatch{}
}

// Sanitize returns a copy of p without the fields that fail validation.
// A nil patch stays nil.
func (p *ThemePatch) Sanitize() *ThemePatch {
	if p == nil {
		return nil
	}
	out := *p
	for _, c := range []**string{&out.Background, &out.Surface, &out.Text, &out.Link, &out.Accent, &out.Border} {
		if *c != nil && !validation.IsHexColor(**c) {
			*c = nil
		}
	}
	if !isPositiveFactor(out.Brightness) {
		out.Brightness = nil
	}
	if !isPositiveFactor(out.Contrast) {
		out.Contrast = nil
	}
	if out.Font != nil && !validation.IsFontFamily(*out.Font) {
		out.Font = nil
	}
	return &out
}

// Validate returns a message per malformed field. Unset fields are valid.
func (p *ThemePatch) Validate(prefix string) []string {
	if p == nil {
		return nil
	}
	var colors [][2]string
	for _, c := range []struct {
		name  ThemeField
		value *string
	}{
		{ThemeFieldBackground, p.Background},
		{ThemeFieldSurface, p.Surface},
		{ThemeFieldText, p.Text},
		{ThemeFieldLink, p.Link},
		{ThemeFieldAccent, p.Accent},
		{ThemeFieldBorder, p.Border},
	} {
		if c.value != nil {
			colors = append(colors, [2]string{string(c.name), *c.value})
		}
	}
	errs := validation.ValidateThemeColors(prefix, colors)
	if p.Brightness != nil && !isPositiveFactor(p.Brightness) {
		errs = append(errs, prefix+".brightness must be a positive number")
	}
	if p.Contrast != nil && !isPositiveFactor(p.Contrast) {
		errs = append(errs, prefix+".contrast must be a positive number")
	}
	if p.Font != nil {
		errs = append(errs, validation.ValidateFontFamily(prefix+".font", *p.Font)...)
	}
	return errs
}

func isPositiveFactor(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) && *v > 0
}

func formatFactor(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ptr[T any](v T) *T {
	return &v
}
