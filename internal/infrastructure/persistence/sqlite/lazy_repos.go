package sqlite

import (
	"context"
	"fmt"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/domain/repository"
)

// LazySettingsRepository opens the database on first use. Failing to open it
// is reported as repository.ErrStoreUnavailable so deciders fall back to
// defaults instead of failing the page.
type LazySettingsRepository struct {
	provider port.DatabaseProvider
}

// NewLazySettingsRepository creates a lazy-loading settings repository.
func NewLazySettingsRepository(provider port.DatabaseProvider) repository.SettingsRepository {
	return &LazySettingsRepository{provider: provider}
}

func (r *LazySettingsRepository) repo(ctx context.Context) (repository.SettingsRepository, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
	}
	return NewSettingsRepository(db), nil
}

func (r *LazySettingsRepository) GetGlobal(ctx context.Context) (*entity.GlobalSettings, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetGlobal(ctx)
}

func (r *LazySettingsRepository) SaveGlobal(ctx context.Context, settings entity.GlobalSettings) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.SaveGlobal(ctx, settings)
}

func (r *LazySettingsRepository) InitGlobal(ctx context.Context, settings entity.GlobalSettings) (bool, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return false, err
	}
	return repo.InitGlobal(ctx, settings)
}

func (r *LazySettingsRepository) GetSite(ctx context.Context, host string) (*entity.SiteOverride, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetSite(ctx, host)
}

func (r *LazySettingsRepository) SaveSite(ctx context.Context, site *entity.SiteOverride) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.SaveSite(ctx, site)
}

func (r *LazySettingsRepository) DeleteSite(ctx context.Context, host string) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteSite(ctx, host)
}

func (r *LazySettingsRepository) ListSites(ctx context.Context) ([]*entity.SiteOverride, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListSites(ctx)
}

func (r *LazySettingsRepository) ClearSites(ctx context.Context) (int64, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return 0, err
	}
	return repo.ClearSites(ctx)
}
