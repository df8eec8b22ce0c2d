package cmd

import (
	"errors"

	"github.com/bnema/duskmode/internal/app/api"
)

// syncPages pushes the stored settings to the open pages of host (all pages
// when host is empty). An unreachable server is reported, not returned:
// the edit is saved and applies on the next page load.
func syncPages(host string) {
	results, err := app.SyncOpenPages(app.Ctx(), host)
	if errors.Is(err, api.ErrServerUnreachable) {
		app.Println(app.Theme.Notice("server not running; open pages update on next load"))
		return
	}
	if err != nil {
		app.Println(app.Theme.Failure("live update failed: %v", err))
		return
	}

	for _, r := range results {
		switch {
		case r.Err != nil:
			app.Println(app.Theme.Failure("%s (%s): %v", r.Page.ID, r.Page.Host, r.Err))
		case r.Changed && r.Active:
			app.Println(app.Theme.Success("%s (%s): applied", r.Page.ID, r.Page.Host))
		case r.Changed:
			app.Println(app.Theme.Success("%s (%s): turned off", r.Page.ID, r.Page.Host))
		}
	}
}
