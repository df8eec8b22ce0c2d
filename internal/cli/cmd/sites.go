package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/duskmode/internal/cli/styles"
)

var sitesYes bool

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List or clear every site override",
	RunE:  runSitesList,
}

var sitesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List every site override",
	Args:    cobra.NoArgs,
	RunE:    runSitesList,
}

var sitesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every site override",
	Long:  `Remove every site override. The global settings are kept. Asks for confirmation unless --yes is given.`,
	Args:  cobra.NoArgs,
	RunE:  runSitesClear,
}

func init() {
	rootCmd.AddCommand(sitesCmd)
	sitesCmd.AddCommand(sitesListCmd, sitesClearCmd)
	sitesClearCmd.Flags().BoolVarP(&sitesYes, "yes", "y", false, "skip confirmation prompt")
}

func runSitesList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	sites, err := app.SitesUC.List(app.Ctx())
	if err != nil {
		return err
	}
	app.Println(app.Theme.RenderSites(sites))
	return nil
}

// confirm asks a yes/no question; replaced in tests.
var confirm = confirmDialog

func confirmDialog(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(styles.NewConfirm(theme, message)).Run()
	if err != nil {
		return false, fmt.Errorf("confirm dialog: %w", err)
	}
	return final.(styles.ConfirmModel).Result(), nil
}

func runSitesClear(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	sites, err := app.SitesUC.List(ctx)
	if err != nil {
		return err
	}
	if len(sites) == 0 {
		app.Println(app.Theme.Subtle.Render("No site overrides"))
		return nil
	}

	if !sitesYes {
		ok, err := confirm(app.Theme, fmt.Sprintf("%s Remove %d site override(s)?", styles.IconTrash, len(sites)))
		if err != nil {
			return err
		}
		if !ok {
			app.Println(app.Theme.Subtle.Render("Canceled"))
			return nil
		}
	}

	n, err := app.SitesUC.ClearAll(ctx)
	if err != nil {
		return err
	}
	app.Println(app.Theme.Success("removed %d site override(s)", n))
	syncPages("")
	return nil
}
