package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/domain/repository"
	"github.com/bnema/duskmode/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/duskmode/internal/logging"
)

type settingsRepo struct {
	queries *sqlc.Queries
	now     func() time.Time
}

// NewSettingsRepository creates a new SQLite-backed settings repository.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{queries: sqlc.New(db), now: time.Now}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, repository.ErrStoreUnavailable, err)
}

func (r *settingsRepo) GetGlobal(ctx context.Context) (*entity.GlobalSettings, error) {
	row, err := r.queries.GetGlobalSettings(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, unavailable("get global settings", err)
	}

	settings := decodeGlobal(ctx, row.Document)
	return &settings, nil
}

// decodeGlobal decodes the document over the defaults one field at a time, so
// a field the document lacks or gets wrong keeps its default.
func decodeGlobal(ctx context.Context, doc string) entity.GlobalSettings {
	log := logging.FromContext(ctx)
	settings := entity.DefaultGlobalSettings()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &fields); err != nil {
		log.Warn().Err(err).Msg("malformed global settings document, using defaults")
		return settings
	}

	var rejected []string
	for key, raw := range fields {
		switch key {
		case "schedule":
			rejected = append(rejected, decodeFields(raw, &settings.Schedule, "schedule.")...)
		case "theme":
			rejected = append(rejected, decodeFields(raw, &settings.Theme, "theme.")...)
		default:
			rejected = append(rejected, decodeField(key, raw, &settings)...)
		}
	}
	if len(rejected) > 0 {
		log.Warn().Strs("fields", rejected).Msg("malformed global settings fields, using defaults for them")
	}
	return settings
}

// decodeFields decodes the JSON object raw into target field by field and
// returns the prefixed names of the fields that failed. A value that is not an
// object leaves target untouched.
func decodeFields(raw json.RawMessage, target any, prefix string) []string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return []string{strings.TrimSuffix(prefix, ".")}
	}
	var rejected []string
	for key, value := range fields {
		for _, name := range decodeField(key, value, target) {
			rejected = append(rejected, prefix+name)
		}
	}
	return rejected
}

func decodeField(key string, value json.RawMessage, target any) []string {
	single, err := json.Marshal(map[string]json.RawMessage{key: value})
	if err != nil {
		return []string{key}
	}
	if err := json.Unmarshal(single, target); err != nil {
		return []string{key}
	}
	return nil
}

func (r *settingsRepo) SaveGlobal(ctx context.Context, settings entity.GlobalSettings) error {
	doc, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode global settings: %w", err)
	}
	if err := r.queries.UpsertGlobalSettings(ctx, sqlc.UpsertGlobalSettingsParams{
		Document:  string(doc),
		UpdatedAt: r.now().UTC(),
	}); err != nil {
		return unavailable("save global settings", err)
	}
	return nil
}

func (r *settingsRepo) InitGlobal(ctx context.Context, settings entity.GlobalSettings) (bool, error) {
	doc, err := json.Marshal(settings)
	if err != nil {
		return false, fmt.Errorf("failed to encode global settings: %w", err)
	}
	n, err := r.queries.InsertGlobalSettingsIfAbsent(ctx, sqlc.InsertGlobalSettingsIfAbsentParams{
		Document:  string(doc),
		UpdatedAt: r.now().UTC(),
	})
	if err != nil {
		return false, unavailable("init global settings", err)
	}
	return n > 0, nil
}

func (r *settingsRepo) GetSite(ctx context.Context, host string) (*entity.SiteOverride, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("host", host).Msg("getting site override")

	row, err := r.queries.GetSiteOverride(ctx, host)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, unavailable("get site override", err)
	}
	return siteFromRow(ctx, row), nil
}

func (r *settingsRepo) SaveSite(ctx context.Context, site *entity.SiteOverride) error {
	params := sqlc.UpsertSiteOverrideParams{
		Host:      site.Host,
		UpdatedAt: site.UpdatedAt.UTC(),
	}
	if params.UpdatedAt.IsZero() {
		params.UpdatedAt = r.now().UTC()
	}
	if site.Enabled != nil {
		params.Enabled = sql.NullInt64{Int64: boolToInt(*site.Enabled), Valid: true}
	}
	if !site.Theme.IsEmpty() {
		doc, err := json.Marshal(site.Theme)
		if err != nil {
			return fmt.Errorf("failed to encode site theme: %w", err)
		}
		params.Theme = sql.NullString{String: string(doc), Valid: true}
	}

	if err := r.queries.UpsertSiteOverride(ctx, params); err != nil {
		return unavailable("save site override", err)
	}
	return nil
}

func (r *settingsRepo) DeleteSite(ctx context.Context, host string) error {
	if err := r.queries.DeleteSiteOverride(ctx, host); err != nil {
		return unavailable("delete site override", err)
	}
	return nil
}

func (r *settingsRepo) ListSites(ctx context.Context) ([]*entity.SiteOverride, error) {
	rows, err := r.queries.ListSiteOverrides(ctx)
	if err != nil {
		return nil, unavailable("list site overrides", err)
	}

	sites := make([]*entity.SiteOverride, len(rows))
	for i, row := range rows {
		sites[i] = siteFromRow(ctx, row)
	}
	return sites, nil
}

func (r *settingsRepo) ClearSites(ctx context.Context) (int64, error) {
	n, err := r.queries.DeleteAllSiteOverrides(ctx)
	if err != nil {
		return 0, unavailable("clear site overrides", err)
	}
	return n, nil
}

func siteFromRow(ctx context.Context, row sqlc.SiteOverride) *entity.SiteOverride {
	site := &entity.SiteOverride{
		Host:      row.Host,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Enabled.Valid {
		enabled := row.Enabled.Int64 != 0
		site.Enabled = &enabled
	}
	if row.Theme.Valid && row.Theme.String != "" {
		var patch entity.ThemePatch
		if rejected := decodeFields(json.RawMessage(row.Theme.String), &patch, "theme."); len(rejected) > 0 {
			logging.FromContext(ctx).Warn().Strs("fields", rejected).Str("host", row.Host).Msg("malformed site theme fields, ignoring them")
		}
		if !patch.IsEmpty() {
			site.Theme = &patch
		}
	}
	return site
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
