package activation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/duskmode/internal/domain/entity"
)

func boolPtr(b bool) *bool { return &b }

func noon() entity.TimeOfDay     { return entity.NewTimeOfDay(12, 0) }
func midnight() entity.TimeOfDay { return entity.NewTimeOfDay(23, 0) }

func nightSchedule() entity.Schedule {
	return entity.Schedule{Enabled: true, Start: "19:00", End: "07:00"}
}

func TestDecide_Precedence(t *testing.T) {
	tests := []struct {
		name          string
		defaultOn     bool
		site          *entity.SiteOverride
		want          bool
		wantSource    IntentSource
		wantIntentVal bool
	}{
		{
			name:       "no site, default off",
			defaultOn:  false,
			site:       nil,
			want:       false,
			wantSource: SourceGlobal,
		},
		{
			name:          "no site, default on",
			defaultOn:     true,
			site:          nil,
			want:          true,
			wantSource:    SourceGlobal,
			wantIntentVal: true,
		},
		{
			name:       "site explicit false beats default on",
			defaultOn:  true,
			site:       &entity.SiteOverride{Host: "example.com", Enabled: boolPtr(false)},
			want:       false,
			wantSource: SourceSite,
		},
		{
			name:          "site explicit true beats default off",
			defaultOn:     false,
			site:          &entity.SiteOverride{Host: "example.com", Enabled: boolPtr(true)},
			want:          true,
			wantSource:    SourceSite,
			wantIntentVal: true,
		},
		{
			name:          "site with only a theme follows default",
			defaultOn:     true,
			site:          &entity.SiteOverride{Host: "example.com", Theme: &entity.ThemePatch{}},
			want:          true,
			wantSource:    SourceGlobal,
			wantIntentVal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			global := entity.DefaultGlobalSettings()
			global.EnabledByDefault = tt.defaultOn

			d := Explain(global, tt.site, noon())

			assert.Equal(t, tt.want, d.Active)
			assert.Equal(t, tt.want, Decide(global, tt.site, noon()))
			assert.Equal(t, tt.wantSource, d.IntentSource)
			assert.Equal(t, tt.wantIntentVal, d.Intent)
			assert.True(t, d.InSchedule)
		})
	}
}

func TestDecide_ScheduleGateSuppressesSiteOn(t *testing.T) {
	global := entity.DefaultGlobalSettings()
	global.Schedule = nightSchedule()
	site := &entity.SiteOverride{Host: "example.com", Enabled: boolPtr(true)}

	d := Explain(global, site, noon())
	assert.False(t, d.Active)
	assert.True(t, d.Intent)
	assert.False(t, d.InSchedule)

	assert.True(t, Decide(global, site, midnight()))
}

func TestDecide_ScheduleGateSuppressesDefaultOn(t *testing.T) {
	global := entity.DefaultGlobalSettings()
	global.EnabledByDefault = true
	global.Schedule = nightSchedule()

	assert.False(t, Decide(global, nil, noon()))
	assert.True(t, Decide(global, nil, midnight()))
}

func TestDecide_EndToEndScenario(t *testing.T) {
	global := entity.DefaultGlobalSettings()
	sites := map[string]*entity.SiteOverride{}
	hosts := []string{"example.com", "github.com", "news.ycombinator.com"}

	for _, h := range hosts {
		assert.False(t, Decide(global, sites[h], noon()), h)
	}

	global.EnabledByDefault = true
	for _, h := range hosts {
		assert.True(t, Decide(global, sites[h], noon()), h)
	}

	sites["example.com"] = &entity.SiteOverride{Host: "example.com", Enabled: boolPtr(false)}
	assert.False(t, Decide(global, sites["example.com"], noon()))
	assert.True(t, Decide(global, sites["github.com"], noon()))
	assert.True(t, Decide(global, sites["news.ycombinator.com"], noon()))
}
