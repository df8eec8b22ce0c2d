// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/activation"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/domain/repository"
	domainurl "github.com/bnema/duskmode/internal/domain/url"
	"github.com/bnema/duskmode/internal/logging"
)

// PageDecision is everything a page needs to know at load time.
type PageDecision struct {
	URL      string
	Host     string
	Internal bool
	activation.Decision
	// Theme is always fully populated, even when the page stays inactive.
	Theme  entity.Theme
	Global entity.GlobalSettings
	Site   *entity.SiteOverride
	// Fallback is set when the store could not be read and defaults were used.
	Fallback bool
}

// ResolvePageUseCase decides the presentation of a page from the current settings.
type ResolvePageUseCase struct {
	settingsRepo    repository.SettingsRepository
	defaults        entity.GlobalSettings
	internalSchemes []string
	now             port.Clock
}

// NewResolvePageUseCase creates the page resolver.
// defaults are used for the current cycle whenever the store is unavailable.
func NewResolvePageUseCase(
	settingsRepo repository.SettingsRepository,
	defaults entity.GlobalSettings,
	internalSchemes []string,
	now port.Clock,
) *ResolvePageUseCase {
	if internalSchemes == nil {
		internalSchemes = domainurl.DefaultInternalSchemes
	}
	if now == nil {
		now = time.Now
	}
	return &ResolvePageUseCase{
		settingsRepo:    settingsRepo,
		defaults:        defaults.Sanitize(),
		internalSchemes: internalSchemes,
		now:             now,
	}
}

// Execute re-reads the settings and decides for rawURL. Nothing is cached
// between calls, so edits are picked up by the next page load.
func (uc *ResolvePageUseCase) Execute(ctx context.Context, rawURL string) (*PageDecision, error) {
	log := logging.FromContext(ctx)

	out := &PageDecision{
		URL:   rawURL,
		Theme: uc.defaults.Theme,
	}
	if domainurl.IsInternal(rawURL, uc.internalSchemes) {
		out.Internal = true
		out.Global = uc.defaults
		log.Debug().Str("url", rawURL).Msg("internal page, override skipped")
		return out, nil
	}
	out.Host = domainurl.ExtractHost(rawURL)

	global, site, err := uc.load(ctx, out.Host)
	if err != nil {
		if !errors.Is(err, repository.ErrStoreUnavailable) {
			return nil, err
		}
		log.Warn().Err(err).Str("host", out.Host).Msg("settings store unavailable, using defaults")
		global, site = uc.defaults, nil
		out.Fallback = true
	}

	out.Global = global
	out.Site = site
	out.Decision = activation.Explain(global, site, entity.TimeOfDayFrom(uc.now()))

	var sitePatch *entity.ThemePatch
	if site != nil {
		sitePatch = site.Theme.Sanitize()
	}
	out.Theme = entity.ResolveTheme(global.Theme, sitePatch)

	log.Debug().
		Str("host", out.Host).
		Bool("active", out.Active).
		Bool("intent", out.Intent).
		Str("intent_source", string(out.IntentSource)).
		Bool("in_schedule", out.InSchedule).
		Msg("page resolved")

	return out, nil
}

// Theme returns the theme a page on rawURL would get if enabled now.
func (uc *ResolvePageUseCase) Theme(ctx context.Context, rawURL string) (entity.Theme, error) {
	d, err := uc.Execute(ctx, rawURL)
	if err != nil {
		return entity.Theme{}, err
	}
	return d.Theme, nil
}

func (uc *ResolvePageUseCase) load(ctx context.Context, host string) (entity.GlobalSettings, *entity.SiteOverride, error) {
	stored, err := uc.settingsRepo.GetGlobal(ctx)
	if err != nil {
		return entity.GlobalSettings{}, nil, fmt.Errorf("failed to get global settings: %w", err)
	}
	global := uc.defaults
	if stored != nil {
		global = stored.Sanitize()
	}
	if host == "" {
		return global, nil, nil
	}

	site, err := uc.settingsRepo.GetSite(ctx, host)
	if err != nil {
		return entity.GlobalSettings{}, nil, fmt.Errorf("failed to get site override: %w", err)
	}
	return global, site, nil
}
