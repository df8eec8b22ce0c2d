package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/duskmode/internal/app/api"
	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
)

var toggleTarget string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List open pages and whether dark mode is active on them",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip dark mode on the focused page",
	Long: `Flip dark mode on the focused page for this page load only; the stored
settings are not changed. Bind it to a key in your window manager:

  bindsym $mod+Shift+d exec duskmode toggle

Internal pages (about:, file:, view-source: ...) are never styled.`,
	Args: cobra.NoArgs,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(statusCmd, toggleCmd)
	toggleCmd.Flags().StringVarP(&toggleTarget, "page", "p", "", "toggle this page id instead of the focused page")
}

func runStatus(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	pages, err := app.API.Pages(ctx)
	if err != nil {
		return err
	}

	states := make(map[entity.PageID]*bool, len(pages))
	for _, p := range pages {
		if p.Host == "" {
			continue
		}
		res, err := app.API.PageState(ctx, p.ID)
		if err != nil {
			continue
		}
		states[p.ID] = res.Enabled
	}
	app.Println(app.Theme.RenderPages(pages, states))
	return nil
}

func runToggle(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	var res *api.PageResult
	if toggleTarget != "" {
		res, err = app.API.TogglePage(ctx, entity.PageID(toggleTarget))
	} else {
		res, err = app.API.ToggleFocused(ctx)
	}
	if err != nil {
		return describeToggleError(err)
	}

	on := res.Enabled != nil && *res.Enabled
	label := res.Page.Host
	if label == "" {
		label = string(res.Page.ID)
	}
	if on {
		app.Println(app.Theme.Success("%s: dark mode on", label))
	} else {
		app.Println(app.Theme.Success("%s: dark mode off", label))
	}
	return nil
}

// describeToggleError maps control API answers to hotkey-friendly messages.
func describeToggleError(err error) error {
	var statusErr *api.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	switch statusErr.Status {
	case 404:
		return fmt.Errorf("%w: %s", port.ErrNoFocusedPage, statusErr.Detail)
	case 409:
		return fmt.Errorf("%w: %s", port.ErrInternalPage, statusErr.Detail)
	case 503:
		return fmt.Errorf("%w: %s", port.ErrNoReceiver, statusErr.Detail)
	}
	return err
}
