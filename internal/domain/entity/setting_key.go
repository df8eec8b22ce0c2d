package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownSettingKey is returned when assigning to a key that does not exist.
var ErrUnknownSettingKey = errors.New("unknown setting key")

// SettingKeyInfo describes one assignable setting for the editor.
type SettingKeyInfo struct {
	// Key is the dotted path accepted by GlobalSettings.Set (e.g. "schedule.start").
	Key         string `json:"key"`
	Type        string `json:"type"`
	Default     string `json:"default"`
	Description string `json:"description"`
	// Section groups keys in listings.
	Section string `json:"section"`
}

var themeFieldDescriptions = map[ThemeField]string{
	ThemeFieldBackground: "Page background color",
	ThemeFieldSurface:    "Background of raised elements (inputs, cards)",
	ThemeFieldText:       "Body text color",
	ThemeFieldLink:       "Link color",
	ThemeFieldAccent:     "Accent color (selection, focus rings)",
	ThemeFieldBorder:     "Border and separator color",
	ThemeFieldBrightness: "Brightness factor applied to the page",
	ThemeFieldContrast:   "Contrast factor applied to the page",
	ThemeFieldFont:       "Font family override",
}

// GlobalSettingKeys lists every key of GlobalSettings with defaults taken from d.
func GlobalSettingKeys(d GlobalSettings) []SettingKeyInfo {
	keys := []SettingKeyInfo{
		{
			Key: "enabled_by_default", Type: "bool", Default: strconv.FormatBool(d.EnabledByDefault),
			Description: "Turn dark mode on for sites without an explicit choice", Section: "General",
		},
		{
			Key: "schedule.enabled", Type: "bool", Default: strconv.FormatBool(d.Schedule.Enabled),
			Description: "Only activate inside the daily window", Section: "Schedule",
		},
		{
			Key: "schedule.start", Type: "HH:MM", Default: d.Schedule.Start,
			Description: "Window start (inclusive)", Section: "Schedule",
		},
		{
			Key: "schedule.end", Type: "HH:MM", Default: d.Schedule.End,
			Description: "Window end (inclusive); before start wraps midnight", Section: "Schedule",
		},
	}
	for _, v := range d.Theme.Patch().Fields() {
		keys = append(keys, SettingKeyInfo{
			Key:         "theme." + string(v.Field),
			Type:        themeFieldType(v.Field),
			Default:     v.Value,
			Description: themeFieldDescriptions[v.Field],
			Section:     "Theme",
		})
	}
	return keys
}

func themeFieldType(f ThemeField) string {
	switch f {
	case ThemeFieldBrightness, ThemeFieldContrast:
		return "number"
	case ThemeFieldFont:
		return "string"
	default:
		return "color"
	}
}

// Set assigns value to the dotted key. Values are parsed but not validated;
// callers validate the whole document before saving it.
func (g *GlobalSettings) Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case "enabled_by_default":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		g.EnabledByDefault = b
	case "schedule.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		g.Schedule.Enabled = b
	case "schedule.start":
		g.Schedule.Start = strings.TrimSpace(value)
	case "schedule.end":
		g.Schedule.End = strings.TrimSpace(value)
	default:
		field, ok := strings.CutPrefix(key, "theme.")
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSettingKey, key)
		}
		var p ThemePatch
		if err := p.Set(ThemeField(field), value); err != nil {
			return err
		}
		g.Theme = ResolveTheme(g.Theme, &p)
	}
	return nil
}

// ParseThemeField maps a field name to a ThemeField. The "theme." prefix is optional.
func ParseThemeField(name string) (ThemeField, bool) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "theme.")
	for _, f := range ThemeFields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Set assigns one field of the patch from its text form.
func (p *ThemePatch) Set(field ThemeField, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case ThemeFieldBackground:
		p.Background = &value
	case ThemeFieldSurface:
		p.Surface = &value
	case ThemeFieldText:
		p.Text = &value
	case ThemeFieldLink:
		p.Link = &value
	case ThemeFieldAccent:
		p.Accent = &value
	case ThemeFieldBorder:
		p.Border = &value
	case ThemeFieldFont:
		p.Font = &value
	case ThemeFieldBrightness, ThemeFieldContrast:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("theme.%s: %w", field, err)
		}
		if field == ThemeFieldBrightness {
			p.Brightness = &f
		} else {
			p.Contrast = &f
		}
	default:
		return fmt.Errorf("%w: theme.%s", ErrUnknownSettingKey, field)
	}
	return nil
}

// ThemeFieldValue is one set field of a patch in text form.
type ThemeFieldValue struct {
	Field ThemeField
	Value string
}

// Fields returns the set fields of p in ThemeFields order.
func (p *ThemePatch) Fields() []ThemeFieldValue {
	if p == nil {
		return nil
	}
	var out []ThemeFieldValue
	add := func(f ThemeField, v *string) {
		if v != nil {
			out = append(out, ThemeFieldValue{Field: f, Value: *v})
		}
	}
	addFactor := func(f ThemeField, v *float64) {
		if v != nil {
			out = append(out, ThemeFieldValue{Field: f, Value: formatFactor(*v)})
		}
	}
	add(ThemeFieldBackground, p.Background)
	add(ThemeFieldSurface, p.Surface)
	add(ThemeFieldText, p.Text)
	add(ThemeFieldLink, p.Link)
	add(ThemeFieldAccent, p.Accent)
	add(ThemeFieldBorder, p.Border)
	addFactor(ThemeFieldBrightness, p.Brightness)
	addFactor(ThemeFieldContrast, p.Contrast)
	add(ThemeFieldFont, p.Font)
	return out
}
