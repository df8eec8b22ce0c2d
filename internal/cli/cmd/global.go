package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/duskmode/internal/domain/entity"
)

var globalApply bool

var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Show or edit the global settings",
	Long: `The global settings hold the default on/off choice for sites without an
explicit choice, the daily schedule and the base theme.`,
	RunE: runGlobalShow,
}

var globalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the global settings",
	Args:  cobra.NoArgs,
	RunE:  runGlobalShow,
}

var globalSetCmd = &cobra.Command{
	Use:   "set key=value...",
	Short: "Change one or more global settings",
	Long: `Assign global settings. Run 'duskmode global keys' for the list of keys.

Examples:
  duskmode global set enabled_by_default=true
  duskmode global set schedule.enabled=true schedule.start=20:00 schedule.end=06:30
  duskmode global set theme.bg=#101010 theme.contrast=1.1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGlobalSet,
}

var globalResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the global settings to the configured defaults",
	Long:  `Overwrites the global settings with the [defaults] section of the config file. Site overrides are kept.`,
	Args:  cobra.NoArgs,
	RunE:  runGlobalReset,
}

var globalKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the keys accepted by 'global set'",
	Args:  cobra.NoArgs,
	RunE:  runGlobalKeys,
}

func init() {
	rootCmd.AddCommand(globalCmd)
	globalCmd.AddCommand(globalShowCmd, globalSetCmd, globalResetCmd, globalKeysCmd)
	for _, c := range []*cobra.Command{globalSetCmd, globalResetCmd} {
		c.Flags().BoolVar(&globalApply, "apply", false, "re-apply open pages through a running server")
	}
}

func runGlobalShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	g, err := app.GlobalUC.Get(app.Ctx())
	if err != nil {
		return err
	}
	app.Println(app.Theme.RenderGlobal(g))
	return nil
}

// parseAssignments splits "key=value" arguments.
func parseAssignments(args []string) ([][2]string, error) {
	out := make([][2]string, 0, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		out = append(out, [2]string{strings.TrimSpace(k), v})
	}
	return out, nil
}

func runGlobalSet(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	assignments, err := parseAssignments(args)
	if err != nil {
		return err
	}

	g, err := app.GlobalUC.Update(app.Ctx(), func(g *entity.GlobalSettings) error {
		for _, kv := range assignments {
			if err := g.Set(kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	app.Println(app.Theme.Success("global settings saved"))
	app.Println(app.Theme.RenderGlobal(g))
	if globalApply {
		syncPages("")
	}
	return nil
}

func runGlobalReset(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.GlobalUC.Reset(app.Ctx()); err != nil {
		return err
	}
	app.Println(app.Theme.Success("global settings reset to defaults"))
	if globalApply {
		syncPages("")
	}
	return nil
}

func runGlobalKeys(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	app.Println(app.Theme.RenderKeys(entity.GlobalSettingKeys(app.GlobalUC.Seed())))
	return nil
}
