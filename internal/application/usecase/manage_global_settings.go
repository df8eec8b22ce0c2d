package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/domain/repository"
	"github.com/bnema/duskmode/internal/logging"
)

// ManageGlobalSettingsUseCase handles the singleton global settings.
type ManageGlobalSettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	seed         entity.GlobalSettings
}

// NewManageGlobalSettingsUseCase creates a new global settings use case.
// seed is written on first run and by Reset.
func NewManageGlobalSettingsUseCase(settingsRepo repository.SettingsRepository, seed entity.GlobalSettings) *ManageGlobalSettingsUseCase {
	return &ManageGlobalSettingsUseCase{
		settingsRepo: settingsRepo,
		seed:         seed.Sanitize(),
	}
}

// Seed returns the settings used on first run.
func (uc *ManageGlobalSettingsUseCase) Seed() entity.GlobalSettings {
	return uc.seed
}

// EnsureDefaults writes the seed if no global settings exist yet.
// Existing settings are never overwritten. Returns true if it wrote them.
func (uc *ManageGlobalSettingsUseCase) EnsureDefaults(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)

	created, err := uc.settingsRepo.InitGlobal(ctx, uc.seed)
	if err != nil {
		return false, fmt.Errorf("failed to initialize global settings: %w", err)
	}
	if created {
		log.Info().Msg("global settings initialized with defaults")
	} else {
		log.Debug().Msg("global settings already present")
	}
	return created, nil
}

// Get returns the stored settings with malformed fields replaced by defaults.
// Returns the seed if nothing was stored yet.
func (uc *ManageGlobalSettingsUseCase) Get(ctx context.Context) (entity.GlobalSettings, error) {
	stored, err := uc.settingsRepo.GetGlobal(ctx)
	if err != nil {
		return entity.GlobalSettings{}, fmt.Errorf("failed to get global settings: %w", err)
	}
	if stored == nil {
		return uc.seed, nil
	}
	return stored.Sanitize(), nil
}

// Save validates and stores settings.
func (uc *ManageGlobalSettingsUseCase) Save(ctx context.Context, settings entity.GlobalSettings) error {
	log := logging.FromContext(ctx)

	if problems := settings.Validate(); len(problems) > 0 {
		return invalidSettings(problems)
	}
	if err := uc.settingsRepo.SaveGlobal(ctx, settings.Sanitize()); err != nil {
		return fmt.Errorf("failed to save global settings: %w", err)
	}

	log.Info().
		Bool("enabled_by_default", settings.EnabledByDefault).
		Bool("schedule", settings.Schedule.Enabled).
		Msg("global settings saved")
	return nil
}

// Update loads the current settings, applies fn and saves the result.
// Nothing is saved when fn fails.
func (uc *ManageGlobalSettingsUseCase) Update(ctx context.Context, fn func(*entity.GlobalSettings) error) (entity.GlobalSettings, error) {
	current, err := uc.Get(ctx)
	if err != nil {
		return entity.GlobalSettings{}, err
	}
	if err := fn(&current); err != nil {
		return entity.GlobalSettings{}, err
	}
	if err := uc.Save(ctx, current); err != nil {
		return entity.GlobalSettings{}, err
	}
	return current, nil
}

// Reset overwrites the global settings with the seed. Site overrides are kept.
func (uc *ManageGlobalSettingsUseCase) Reset(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := uc.settingsRepo.SaveGlobal(ctx, uc.seed); err != nil {
		return fmt.Errorf("failed to reset global settings: %w", err)
	}

	log.Info().Msg("global settings reset to defaults")
	return nil
}
