package styles

import (
	"fmt"
	"time"
)

// EnabledBadge renders a tri-state site choice.
func (t *Theme) EnabledBadge(enabled *bool) string {
	switch {
	case enabled == nil:
		return t.BadgeMuted.Render("default")
	case *enabled:
		return t.Badge.Render("on")
	default:
		return t.BadgeMuted.Render("off")
	}
}

// ActiveLabel renders whether an override is applied.
func (t *Theme) ActiveLabel(active bool) string {
	if active {
		return t.Highlight.Render(IconMoon + " active")
	}
	return t.Subtle.Render(IconSun + " inactive")
}

// RelativeTime formats a time as a short relative string.
func RelativeTime(tm time.Time) string {
	diff := time.Since(tm)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return tm.Format("2006-01-02")
	}
}
