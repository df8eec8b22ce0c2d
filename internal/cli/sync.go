package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/duskmode/internal/app/api"
	"github.com/bnema/duskmode/internal/domain/entity"
)

// SyncResult is the outcome of bringing one open page in line with the store.
type SyncResult struct {
	Page   entity.PageInfo
	Active bool
	// Changed is false when the page was already in the wanted state.
	Changed bool
	Err     error
}

// SyncOpenPages re-decides every open page of host (every page when host is
// empty) from the stored settings and pushes the outcome through the server:
// active pages get the resolved theme, pages that should be inactive are
// toggled off. Returns api.ErrServerUnreachable when serve is not running.
func (a *App) SyncOpenPages(ctx context.Context, host string) ([]SyncResult, error) {
	pages, err := a.API.Pages(ctx)
	if err != nil {
		return nil, err
	}

	var results []SyncResult
	for _, page := range pages {
		if page.Host == "" || (host != "" && page.Host != host) {
			continue
		}
		results = append(results, a.syncPage(ctx, page))
	}
	return results, nil
}

func (a *App) syncPage(ctx context.Context, page entity.PageInfo) SyncResult {
	res := SyncResult{Page: page}

	decision, err := a.ResolveUC.Execute(ctx, page.URL)
	if err != nil {
		res.Err = err
		return res
	}
	if decision.Internal {
		return res
	}
	res.Active = decision.Active

	if decision.Active {
		var patch *entity.ThemePatch
		if decision.Site != nil {
			patch = decision.Site.Theme
		}
		results, err := a.API.Apply(ctx, api.ApplyRequest{PageID: page.ID, Theme: patch})
		res.Err = firstError(results, err)
		res.Changed = res.Err == nil
		return res
	}

	state, err := a.API.PageState(ctx, page.ID)
	if err != nil {
		res.Err = err
		return res
	}
	if state.Enabled == nil || !*state.Enabled {
		return res
	}
	_, res.Err = a.API.TogglePage(ctx, page.ID)
	res.Changed = res.Err == nil
	return res
}

func firstError(results []api.PageResult, err error) error {
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Error != "" {
			return errors.New(r.Error)
		}
	}
	if len(results) == 0 {
		return fmt.Errorf("page not reached")
	}
	return nil
}
