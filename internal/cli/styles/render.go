package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/duskmode/internal/domain/activation"
	"github.com/bnema/duskmode/internal/domain/entity"
)

// Success renders a one-line confirmation.
func (t *Theme) Success(format string, args ...any) string {
	return t.SuccessStyle.Render(IconCheck) + " " + t.Normal.Render(fmt.Sprintf(format, args...))
}

// Failure renders a one-line error.
func (t *Theme) Failure(format string, args ...any) string {
	return t.ErrorStyle.Render(IconX) + " " + t.Normal.Render(fmt.Sprintf(format, args...))
}

// Notice renders a one-line warning.
func (t *Theme) Notice(format string, args ...any) string {
	return t.WarningStyle.Render(IconWarning) + " " + t.Subtle.Render(fmt.Sprintf(format, args...))
}

func (t *Theme) header(icon, title string) string {
	return lipgloss.NewStyle().Foreground(t.Accent).Render(icon) + " " + t.Title.Render(title)
}

func (t *Theme) newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Highlight.Padding(0, 1)
			}
			return t.Normal.Padding(0, 1)
		})
}

// swatch renders a small block in a theme color. Non-color values pass through.
func swatch(value string) string {
	if !strings.HasPrefix(value, "#") {
		return value
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ") + " " + value
}

// RenderTheme lists the fields of theme. Fields in overridden are marked.
func (t *Theme) RenderTheme(theme entity.Theme, overridden map[entity.ThemeField]bool) string {
	tbl := t.newTable().Headers("Field", "Value", "")
	for _, f := range theme.Patch().Fields() {
		mark := ""
		if overridden[f.Field] {
			mark = t.Highlight.Render("site")
		}
		tbl.Row(string(f.Field), swatch(f.Value), mark)
	}
	return tbl.Render()
}

// RenderGlobal renders the global settings document.
func (t *Theme) RenderGlobal(g entity.GlobalSettings) string {
	enabled := t.BadgeMuted.Render("off")
	if g.EnabledByDefault {
		enabled = t.Badge.Render("on")
	}

	schedule := t.Subtle.Render("always")
	if g.Schedule.Enabled {
		schedule = t.Normal.Render(g.Schedule.Start + " - " + g.Schedule.End)
	}

	lines := []string{
		t.header(IconConfig, "Global settings"),
		"",
		fmt.Sprintf("  %s %s", t.Subtitle.Render("Enabled by default"), enabled),
		fmt.Sprintf("  %s %s %s", t.Subtitle.Render("Schedule"), lipgloss.NewStyle().Foreground(t.Accent).Render(IconClock), schedule),
		"",
		t.header(IconPalette, "Theme"),
		t.RenderTheme(g.Theme, nil),
	}
	return strings.Join(lines, "\n")
}

// RenderSite renders the stored override of host and what it resolves to now.
func (t *Theme) RenderSite(host string, site *entity.SiteOverride, d activation.Decision, theme entity.Theme) string {
	var enabled *bool
	var overridden map[entity.ThemeField]bool
	if site != nil {
		enabled = site.Enabled
		overridden = make(map[entity.ThemeField]bool)
		for _, f := range site.Theme.Fields() {
			overridden[f.Field] = true
		}
	}

	source := t.Subtle.Render("from " + string(d.IntentSource))
	schedule := ""
	if !d.InSchedule {
		schedule = t.WarningStyle.Render("outside schedule")
	}

	lines := []string{
		t.header(IconGlobe, host),
		"",
		fmt.Sprintf("  %s %s", t.Subtitle.Render("Site choice"), t.EnabledBadge(enabled)),
		strings.TrimRight(fmt.Sprintf("  %s %s %s %s", t.Subtitle.Render("Now"), t.ActiveLabel(d.Active), source, schedule), " "),
		"",
		t.header(IconPalette, "Theme"),
		t.RenderTheme(theme, overridden),
	}
	return strings.Join(lines, "\n")
}

// RenderSites lists every stored override.
func (t *Theme) RenderSites(sites []*entity.SiteOverride) string {
	if len(sites) == 0 {
		return t.Subtle.Render("No site overrides")
	}

	tbl := t.newTable().Headers("Host", "Enabled", "Theme", "Updated")
	for _, s := range sites {
		fields := make([]string, 0, len(entity.ThemeFields))
		for _, f := range s.Theme.Fields() {
			fields = append(fields, string(f.Field))
		}
		themeCol := "-"
		if len(fields) > 0 {
			themeCol = strings.Join(fields, ",")
		}
		tbl.Row(s.Host, t.EnabledBadge(s.Enabled), themeCol, RelativeTime(s.UpdatedAt))
	}
	return tbl.Render() + "\n" + t.Subtle.Render(fmt.Sprintf("%d site(s)", len(sites)))
}

// RenderPages lists the pages known to the hub. states holds the answer of
// each page that replied to GET_STATE.
func (t *Theme) RenderPages(pages []entity.PageInfo, states map[entity.PageID]*bool) string {
	if len(pages) == 0 {
		return t.Subtle.Render("No pages connected")
	}

	sorted := append([]entity.PageInfo(nil), pages...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	tbl := t.newTable().Headers("", "Page", "Host", "State", "Agent")
	for _, p := range sorted {
		focus := ""
		if p.Focused {
			focus = t.Highlight.Render(IconCursor)
		}
		state := t.Subtle.Render("-")
		if enabled, ok := states[p.ID]; ok && enabled != nil {
			state = t.ActiveLabel(*enabled)
		}
		host := p.Host
		if host == "" {
			host = t.Subtle.Render(p.URL)
		}
		tbl.Row(focus, string(p.ID), host, state, p.AgentID)
	}
	return tbl.Render()
}

// RenderKeys renders the assignable settings grouped by section.
func (t *Theme) RenderKeys(keys []entity.SettingKeyInfo) string {
	if len(keys) == 0 {
		return t.Subtle.Render("No setting keys")
	}

	var sections []string
	bySection := make(map[string][]entity.SettingKeyInfo)
	for _, k := range keys {
		if _, ok := bySection[k.Section]; !ok {
			sections = append(sections, k.Section)
		}
		bySection[k.Section] = append(bySection[k.Section], k)
	}

	parts := []string{t.header(IconConfig, "Setting keys"), ""}
	keyStyle := t.Normal.Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(t.Accent)
	for _, section := range sections {
		lines := []string{t.Highlight.Render(section)}
		for _, k := range bySection[section] {
			lines = append(lines,
				fmt.Sprintf("%s  %s  %s", keyStyle.Render(k.Key), t.Subtle.Render(k.Type), defaultStyle.Render(k.Default)),
				"  "+t.Subtle.Render(k.Description),
			)
		}
		parts = append(parts, t.Box.Render(strings.Join(lines, "\n")), "")
	}
	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}
