package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Default schedule bounds.
const (
	DefaultScheduleStart = "19:00"
	DefaultScheduleEnd   = "07:00"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay, wrapping out-of-range values into a day.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	m := (hour*60 + minute) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeOfDay(m)
}

// TimeOfDayFrom extracts the local wall-clock time of t.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

// ParseTimeOfDay parses "HH:MM". Malformed input yields 00:00 and ok=false,
// so a broken setting never blocks a decision.
func ParseTimeOfDay(s string) (tod TimeOfDay, ok bool) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return NewTimeOfDay(hour, minute), true
}

// String formats as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Schedule is a daily time window gating activation.
type Schedule struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled" toml:"enabled"`
	Start   string `json:"start" mapstructure:"start" toml:"start"`
	End     string `json:"end" mapstructure:"end" toml:"end"`
}

// DefaultSchedule returns the disabled 19:00-07:00 window.
func DefaultSchedule() Schedule {
	return Schedule{
		Enabled: false,
		Start:   DefaultScheduleStart,
		End:     DefaultScheduleEnd,
	}
}

// IsWithin reports whether now satisfies the window.
// A disabled window and a window with equal bounds are always satisfied.
// Bounds are inclusive; a window whose end precedes its start wraps midnight.
func (s Schedule) IsWithin(now TimeOfDay) bool {
	if !s.Enabled {
		return true
	}
	start, _ := ParseTimeOfDay(s.Start)
	end, _ := ParseTimeOfDay(s.End)

	switch {
	case start == end:
		return true
	case start < end:
		return now >= start && now <= end
	default:
		return now >= start || now <= end
	}
}

// Validate returns a message per malformed bound.
func (s Schedule) Validate(prefix string) []string {
	var errs []string
	if _, ok := ParseTimeOfDay(s.Start); !ok {
		errs = append(errs, prefix+".start must be a time like HH:MM")
	}
	if _, ok := ParseTimeOfDay(s.End); !ok {
		errs = append(errs, prefix+".end must be a time like HH:MM")
	}
	return errs
}
