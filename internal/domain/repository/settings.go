package repository

import (
	"context"
	"errors"

	"github.com/bnema/duskmode/internal/domain/entity"
)

// ErrStoreUnavailable marks a settings read or write that failed for reasons
// outside the caller's control. Deciders fall back to defaults on it.
var ErrStoreUnavailable = errors.New("settings store unavailable")

// SettingsRepository persists the global settings and the per-site overrides.
type SettingsRepository interface {
	// GetGlobal returns the stored global settings, or nil if none were saved yet.
	GetGlobal(ctx context.Context) (*entity.GlobalSettings, error)

	// SaveGlobal replaces the global settings.
	SaveGlobal(ctx context.Context, settings entity.GlobalSettings) error

	// InitGlobal stores settings only if no global settings exist.
	// Returns true if it wrote them.
	InitGlobal(ctx context.Context, settings entity.GlobalSettings) (bool, error)

	// GetSite returns the override for host, or nil if there is none.
	GetSite(ctx context.Context, host string) (*entity.SiteOverride, error)

	// SaveSite creates or replaces the override for site.Host.
	SaveSite(ctx context.Context, site *entity.SiteOverride) error

	// DeleteSite removes the override for host. Deleting a missing host is not an error.
	DeleteSite(ctx context.Context, host string) error

	// ListSites returns all overrides ordered by host.
	ListSites(ctx context.Context) ([]*entity.SiteOverride, error)

	// ClearSites removes every override and returns how many were removed.
	ClearSites(ctx context.Context) (int64, error)
}
