package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/duskmode/internal/application/usecase"
	"github.com/bnema/duskmode/internal/domain/activation"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/domain/repository"
	repomocks "github.com/bnema/duskmode/internal/domain/repository/mocks"
	"github.com/bnema/duskmode/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func fixedClock(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2024, 5, 1, hour, minute, 0, 0, time.Local)
	}
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestResolvePageUseCase_Execute_SiteOnScheduleOn(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	global := entity.DefaultGlobalSettings()
	global.Schedule = entity.Schedule{Enabled: true, Start: "19:00", End: "07:00"}
	site := &entity.SiteOverride{
		Host:    "example.com",
		Enabled: boolPtr(true),
		Theme:   &entity.ThemePatch{Background: strPtr("#000000")},
	}

	repo.EXPECT().GetGlobal(mock.Anything).Return(&global, nil)
	repo.EXPECT().GetSite(mock.Anything, "example.com").Return(site, nil)

	uc := usecase.NewResolvePageUseCase(repo, entity.DefaultGlobalSettings(), nil, fixedClock(22, 0))

	got, err := uc.Execute(ctx, "https://www.Example.com:8443/path")
	require.NoError(t, err)

	assert.Equal(t, "example.com", got.Host)
	assert.True(t, got.Active)
	assert.Equal(t, activation.SourceSite, got.IntentSource)
	assert.False(t, got.Fallback)

	want := entity.DefaultTheme()
	want.Background = "#000000"
	assert.Equal(t, want, got.Theme)
}

func TestResolvePageUseCase_Execute_ScheduleSuppressesSite(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	global := entity.DefaultGlobalSettings()
	global.Schedule = entity.Schedule{Enabled: true, Start: "19:00", End: "07:00"}

	repo.EXPECT().GetGlobal(mock.Anything).Return(&global, nil)
	repo.EXPECT().GetSite(mock.Anything, "example.com").Return(&entity.SiteOverride{
		Host:    "example.com",
		Enabled: boolPtr(true),
	}, nil)

	uc := usecase.NewResolvePageUseCase(repo, entity.DefaultGlobalSettings(), nil, fixedClock(12, 0))

	got, err := uc.Execute(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.True(t, got.Intent)
	assert.False(t, got.InSchedule)
}

func TestResolvePageUseCase_Execute_NoSiteFollowsGlobal(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	global := entity.DefaultGlobalSettings()
	global.EnabledByDefault = true

	repo.EXPECT().GetGlobal(mock.Anything).Return(&global, nil)
	repo.EXPECT().GetSite(mock.Anything, "other.org").Return(nil, nil)

	uc := usecase.NewResolvePageUseCase(repo, entity.DefaultGlobalSettings(), nil, fixedClock(12, 0))

	got, err := uc.Execute(ctx, "http://other.org")
	require.NoError(t, err)
	assert.True(t, got.Active)
	assert.Equal(t, activation.SourceGlobal, got.IntentSource)
	assert.Nil(t, got.Site)
}

func TestResolvePageUseCase_Execute_SanitizesStoredTheme(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	global := entity.DefaultGlobalSettings()
	global.Theme.Text = "not-a-color"

	repo.EXPECT().GetGlobal(mock.Anything).Return(&global, nil)
	repo.EXPECT().GetSite(mock.Anything, "example.com").Return(&entity.SiteOverride{
		Host:  "example.com",
		Theme: &entity.ThemePatch{Link: strPtr("blue"), Accent: strPtr("#abc")},
	}, nil)

	uc := usecase.NewResolvePageUseCase(repo, entity.DefaultGlobalSettings(), nil, fixedClock(12, 0))

	got, err := uc.Execute(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultText, got.Theme.Text)
	assert.Equal(t, entity.DefaultLink, got.Theme.Link)
	assert.Equal(t, "#abc", got.Theme.Accent)
}

func TestResolvePageUseCase_Execute_StoreUnavailableFallsBackToDefaults(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	repo.EXPECT().GetGlobal(mock.Anything).
		Return(nil, fmt.Errorf("query: %w", repository.ErrStoreUnavailable))

	defaults := entity.DefaultGlobalSettings()
	defaults.EnabledByDefault = true
	uc := usecase.NewResolvePageUseCase(repo, defaults, nil, fixedClock(12, 0))

	got, err := uc.Execute(ctx, "https://example.com")
	require.NoError(t, err)
	assert.True(t, got.Fallback)
	assert.True(t, got.Active)
	assert.Equal(t, entity.DefaultTheme(), got.Theme)
}

func TestResolvePageUseCase_Execute_OtherErrorsPropagate(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	repo.EXPECT().GetGlobal(mock.Anything).Return(&entity.GlobalSettings{}, nil)
	repo.EXPECT().GetSite(mock.Anything, "example.com").Return(nil, errors.New("boom"))

	uc := usecase.NewResolvePageUseCase(repo, entity.DefaultGlobalSettings(), nil, fixedClock(12, 0))

	_, err := uc.Execute(ctx, "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get site override")
}

func TestResolvePageUseCase_Execute_InternalPageSkipsStore(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	uc := usecase.NewResolvePageUseCase(repo, entity.DefaultGlobalSettings(), nil, fixedClock(12, 0))

	for _, u := range []string{"about:blank", "chrome://settings", "chrome-extension://abc/popup.html", ""} {
		got, err := uc.Execute(ctx, u)
		require.NoError(t, err, u)
		assert.True(t, got.Internal, u)
		assert.False(t, got.Active, u)
	}
}

func TestResolvePageUseCase_Execute_ReReadsEveryCall(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	off := entity.DefaultGlobalSettings()
	on := entity.DefaultGlobalSettings()
	on.EnabledByDefault = true

	repo.EXPECT().GetGlobal(mock.Anything).Return(&off, nil).Once()
	repo.EXPECT().GetGlobal(mock.Anything).Return(&on, nil).Once()
	repo.EXPECT().GetSite(mock.Anything, "example.com").Return(nil, nil).Twice()

	uc := usecase.NewResolvePageUseCase(repo, entity.DefaultGlobalSettings(), nil, fixedClock(12, 0))

	first, err := uc.Execute(ctx, "https://example.com")
	require.NoError(t, err)
	second, err := uc.Execute(ctx, "https://example.com")
	require.NoError(t, err)

	assert.False(t, first.Active)
	assert.True(t, second.Active)
}
