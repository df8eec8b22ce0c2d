package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/duskmode/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewConnection_AppliesMigrations(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestSettingsRepository_GlobalRoundTrip(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSettingsRepository(openTestDB(t))

	got, err := repo.GetGlobal(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	settings := entity.DefaultGlobalSettings()
	settings.EnabledByDefault = true
	settings.Schedule = entity.Schedule{Enabled: true, Start: "20:30", End: "06:15"}
	settings.Theme.Contrast = 1.2
	require.NoError(t, repo.SaveGlobal(ctx, settings))

	got, err = repo.GetGlobal(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, settings, *got)
}

func TestSettingsRepository_InitGlobalNeverOverwrites(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSettingsRepository(openTestDB(t))

	first := entity.DefaultGlobalSettings()
	created, err := repo.InitGlobal(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := entity.DefaultGlobalSettings()
	second.EnabledByDefault = true
	created, err = repo.InitGlobal(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	got, err := repo.GetGlobal(ctx)
	require.NoError(t, err)
	assert.False(t, got.EnabledByDefault)
}

func TestSettingsRepository_PartialDocumentKeepsDefaults(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)
	repo := sqlite.NewSettingsRepository(db)

	_, err := db.ExecContext(ctx,
		`INSERT INTO global_settings (id, document, updated_at) VALUES (1, ?, ?)`,
		`{"enabledByDefault":true,"theme":{"bg":"#000000"}}`, time.Now().UTC())
	require.NoError(t, err)

	got, err := repo.GetGlobal(ctx)
	require.NoError(t, err)
	assert.True(t, got.EnabledByDefault)
	assert.Equal(t, "#000000", got.Theme.Background)
	assert.Equal(t, entity.DefaultText, got.Theme.Text)
	assert.Equal(t, entity.DefaultSchedule(), got.Schedule)
}

func TestSettingsRepository_MalformedDocumentFallsBack(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)
	repo := sqlite.NewSettingsRepository(db)

	_, err := db.ExecContext(ctx,
		`INSERT INTO global_settings (id, document, updated_at) VALUES (1, ?, ?)`,
		`{not json`, time.Now().UTC())
	require.NoError(t, err)

	got, err := repo.GetGlobal(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultGlobalSettings(), *got)
}

func TestSettingsRepository_WrongTypedFieldsFallBackPerField(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)
	repo := sqlite.NewSettingsRepository(db)

	_, err := db.ExecContext(ctx,
		`INSERT INTO global_settings (id, document, updated_at) VALUES (1, ?, ?)`,
		`{"enabledByDefault":true,
		  "schedule":{"enabled":true,"start":"21:00","end":6},
		  "theme":{"bg":"#000000","brightness":"x","contrast":1.3}}`, time.Now().UTC())
	require.NoError(t, err)

	got, err := repo.GetGlobal(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.EnabledByDefault)
	assert.Equal(t, entity.Schedule{Enabled: true, Start: "21:00", End: entity.DefaultScheduleEnd}, got.Schedule)
	assert.Equal(t, "#000000", got.Theme.Background)
	assert.Equal(t, entity.DefaultBrightness, got.Theme.Brightness)
	assert.Equal(t, 1.3, got.Theme.Contrast)
}

func TestSettingsRepository_SiteThemeKeepsWellTypedFields(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)
	repo := sqlite.NewSettingsRepository(db)

	_, err := db.ExecContext(ctx,
		`INSERT INTO site_overrides (host, enabled, theme, updated_at) VALUES (?, ?, ?, ?)`,
		"example.com", 1, `{"bg":"#000000","contrast":"high"}`, time.Now().UTC())
	require.NoError(t, err)

	site, err := repo.GetSite(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, site.Theme)
	assert.Equal(t, "#000000", *site.Theme.Background)
	assert.Nil(t, site.Theme.Contrast)
}

func TestSettingsRepository_SiteTriStateRoundTrip(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSettingsRepository(openTestDB(t))

	off := false
	bg := "#000000"
	require.NoError(t, repo.SaveSite(ctx, &entity.SiteOverride{Host: "b.example", Enabled: &off}))
	require.NoError(t, repo.SaveSite(ctx, &entity.SiteOverride{
		Host:  "a.example",
		Theme: &entity.ThemePatch{Background: &bg},
	}))

	explicitOff, err := repo.GetSite(ctx, "b.example")
	require.NoError(t, err)
	require.NotNil(t, explicitOff.Enabled)
	assert.False(t, *explicitOff.Enabled)
	assert.Nil(t, explicitOff.Theme)

	unset, err := repo.GetSite(ctx, "a.example")
	require.NoError(t, err)
	assert.Nil(t, unset.Enabled)
	require.NotNil(t, unset.Theme)
	assert.Equal(t, bg, *unset.Theme.Background)

	missing, err := repo.GetSite(ctx, "c.example")
	require.NoError(t, err)
	assert.Nil(t, missing)

	sites, err := repo.ListSites(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, "a.example", sites[0].Host)
	assert.Equal(t, "b.example", sites[1].Host)
}

func TestSettingsRepository_SaveSiteReplaces(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSettingsRepository(openTestDB(t))

	on := true
	font := "serif"
	require.NoError(t, repo.SaveSite(ctx, &entity.SiteOverride{Host: "example.com", Enabled: &on}))
	require.NoError(t, repo.SaveSite(ctx, &entity.SiteOverride{
		Host:  "example.com",
		Theme: &entity.ThemePatch{Font: &font},
	}))

	got, err := repo.GetSite(ctx, "example.com")
	require.NoError(t, err)
	assert.Nil(t, got.Enabled)
	assert.Equal(t, font, *got.Theme.Font)
}

func TestSettingsRepository_DeleteAndClear(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSettingsRepository(openTestDB(t))

	on := true
	for _, h := range []string{"a.example", "b.example", "c.example"} {
		require.NoError(t, repo.SaveSite(ctx, &entity.SiteOverride{Host: h, Enabled: &on}))
	}

	require.NoError(t, repo.DeleteSite(ctx, "a.example"))
	require.NoError(t, repo.DeleteSite(ctx, "never.example"))

	n, err := repo.ClearSites(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	sites, err := repo.ListSites(ctx)
	require.NoError(t, err)
	assert.Empty(t, sites)
}
