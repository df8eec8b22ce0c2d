// Package activation decides whether the dark mode override applies to a page.
package activation

import "github.com/bnema/duskmode/internal/domain/entity"

// IntentSource identifies which setting produced the enable/disable intent.
type IntentSource string

const (
	SourceSite   IntentSource = "site"
	SourceGlobal IntentSource = "global"
)

// Decision is the explained outcome of Decide.
type Decision struct {
	Active       bool
	Intent       bool
	IntentSource IntentSource
	InSchedule   bool
}

// Decide combines the per-site choice, the global default and the schedule.
// An explicit site value (true or false) beats the global default; the
// schedule gate applies to both.
func Decide(global entity.GlobalSettings, site *entity.SiteOverride, now entity.TimeOfDay) bool {
	return Explain(global, site, now).Active
}

// Explain is Decide with the intermediate values kept.
func Explain(global entity.GlobalSettings, site *entity.SiteOverride, now entity.TimeOfDay) Decision {
	d := Decision{
		Intent:       global.EnabledByDefault,
		IntentSource: SourceGlobal,
		InSchedule:   global.Schedule.IsWithin(now),
	}
	if site != nil && site.Enabled != nil {
		d.Intent = *site.Enabled
		d.IntentSource = SourceSite
	}
	d.Active = d.Intent && d.InSchedule
	return d
}
