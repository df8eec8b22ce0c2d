package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGlobalSettings(t *testing.T) {
	g := DefaultGlobalSettings()

	assert.False(t, g.EnabledByDefault)
	assert.False(t, g.Schedule.Enabled)
	assert.Equal(t, "19:00", g.Schedule.Start)
	assert.Equal(t, "07:00", g.Schedule.End)
	assert.Equal(t, DefaultTheme(), g.Theme)
	assert.Empty(t, g.Validate())
}

func TestSiteOverride_EnabledIsTriState(t *testing.T) {
	s := NewSiteOverride("example.com")
	assert.Nil(t, s.Enabled)
	assert.True(t, s.IsEmpty())

	s.SetEnabled(false)
	require.NotNil(t, s.Enabled)
	assert.False(t, *s.Enabled)
	assert.False(t, s.IsEmpty())

	s.ClearEnabled()
	assert.Nil(t, s.Enabled)
}

func TestSiteOverride_JSONKeepsUnsetDistinctFromFalse(t *testing.T) {
	unset, err := json.Marshal(NewSiteOverride("a.com"))
	require.NoError(t, err)
	assert.NotContains(t, string(unset), `"enabled"`)

	off := NewSiteOverride("a.com")
	off.SetEnabled(false)
	data, err := json.Marshal(off)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"enabled":false`)

	var decoded SiteOverride
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Enabled)
	assert.False(t, *decoded.Enabled)
}

func TestSiteOverride_MergeThemeKeepsExistingFields(t *testing.T) {
	s := NewSiteOverride("example.com")
	s.MergeTheme(&ThemePatch{Background: ptr("#000000"), Font: ptr("serif")})
	s.MergeTheme(&ThemePatch{Background: ptr("#111111")})
	s.MergeTheme(nil)

	require.NotNil(t, s.Theme)
	assert.Equal(t, "#111111", *s.Theme.Background)
	assert.Equal(t, "serif", *s.Theme.Font)
	assert.Nil(t, s.Theme.Link)
}

func TestGlobalSettings_SanitizeRepairsTheme(t *testing.T) {
	g := DefaultGlobalSettings()
	g.Theme.Text = "white"

	assert.NotEmpty(t, g.Validate())
	assert.Equal(t, DefaultText, g.Sanitize().Theme.Text)
}
