package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/domain/repository"
	domainurl "github.com/bnema/duskmode/internal/domain/url"
	"github.com/bnema/duskmode/internal/logging"
)

// ManageSiteOverridesUseCase handles per-site overrides.
// Every method accepts either a bare host or a full URL.
type ManageSiteOverridesUseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewManageSiteOverridesUseCase creates a new site override use case.
func NewManageSiteOverridesUseCase(settingsRepo repository.SettingsRepository) *ManageSiteOverridesUseCase {
	return &ManageSiteOverridesUseCase{settingsRepo: settingsRepo}
}

// Host returns the site key for hostOrURL.
func (uc *ManageSiteOverridesUseCase) Host(hostOrURL string) (string, error) {
	host := domainurl.ExtractHost(hostOrURL)
	if host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidHost, hostOrURL)
	}
	return host, nil
}

// Get returns the override for a site, or nil if there is none.
func (uc *ManageSiteOverridesUseCase) Get(ctx context.Context, hostOrURL string) (*entity.SiteOverride, error) {
	host, err := uc.Host(hostOrURL)
	if err != nil {
		return nil, err
	}
	site, err := uc.settingsRepo.GetSite(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("failed to get site override: %w", err)
	}
	return site, nil
}

// Save merges enabled and patch into the existing override for a site.
// A nil enabled keeps the stored choice; patch fields layer over stored ones.
func (uc *ManageSiteOverridesUseCase) Save(
	ctx context.Context,
	hostOrURL string,
	enabled *bool,
	patch *entity.ThemePatch,
) (*entity.SiteOverride, error) {
	log := logging.FromContext(ctx)

	host, err := uc.Host(hostOrURL)
	if err != nil {
		return nil, err
	}
	if problems := patch.Validate("theme"); len(problems) > 0 {
		return nil, invalidSettings(problems)
	}

	site, err := uc.settingsRepo.GetSite(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("failed to get site override: %w", err)
	}
	if site == nil {
		site = entity.NewSiteOverride(host)
	}
	if enabled != nil {
		site.SetEnabled(*enabled)
	}
	site.MergeTheme(patch)

	if err := uc.settingsRepo.SaveSite(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to save site override: %w", err)
	}

	log.Info().Str("host", host).Msg("site override saved")
	return site, nil
}

// SetEnabled records an explicit choice for a site. A nil enabled returns the
// site to the global default while keeping its theme.
func (uc *ManageSiteOverridesUseCase) SetEnabled(ctx context.Context, hostOrURL string, enabled *bool) (*entity.SiteOverride, error) {
	if enabled != nil {
		return uc.Save(ctx, hostOrURL, enabled, nil)
	}

	host, err := uc.Host(hostOrURL)
	if err != nil {
		return nil, err
	}
	site, err := uc.settingsRepo.GetSite(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("failed to get site override: %w", err)
	}
	if site == nil {
		return nil, nil
	}
	site.ClearEnabled()
	if site.IsEmpty() {
		return nil, uc.Reset(ctx, host)
	}
	if err := uc.settingsRepo.SaveSite(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to save site override: %w", err)
	}
	return site, nil
}

// Reset removes the override for a site.
func (uc *ManageSiteOverridesUseCase) Reset(ctx context.Context, hostOrURL string) error {
	log := logging.FromContext(ctx)

	host, err := uc.Host(hostOrURL)
	if err != nil {
		return err
	}
	if err := uc.settingsRepo.DeleteSite(ctx, host); err != nil {
		return fmt.Errorf("failed to reset site override: %w", err)
	}

	log.Info().Str("host", host).Msg("site override removed")
	return nil
}

// List returns every override ordered by host.
func (uc *ManageSiteOverridesUseCase) List(ctx context.Context) ([]*entity.SiteOverride, error) {
	sites, err := uc.settingsRepo.ListSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list site overrides: %w", err)
	}
	return sites, nil
}

// ClearAll removes every override.
func (uc *ManageSiteOverridesUseCase) ClearAll(ctx context.Context) (int64, error) {
	log := logging.FromContext(ctx)

	n, err := uc.settingsRepo.ClearSites(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear site overrides: %w", err)
	}

	log.Info().Int64("count", n).Msg("site overrides cleared")
	return n, nil
}
