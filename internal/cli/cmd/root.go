// Package cmd provides Cobra CLI commands for duskmode.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/duskmode/internal/cli"
	"github.com/bnema/duskmode/internal/domain/build"
)

const (
	// annotationDaemon marks long-running commands, which log at the configured level.
	annotationDaemon = "daemon"
	// annotationStandalone marks commands that run without loading the app.
	annotationStandalone = "standalone"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	verbose    bool
	rootCmd    = &cobra.Command{
		Use:   "duskmode",
		Short: "Per-site dark mode with a schedule",
		Long: `duskmode decides, per page, whether a dark presentation override is active
and which theme it uses, from a global default, per-site choices and a daily
schedule.

  duskmode serve      run the hub that page hosts and the hotkey talk to
  duskmode agent      host pages and render their override stylesheets
  duskmode toggle     flip dark mode on the focused page (bind it to a key)

Settings are edited with 'duskmode global', 'duskmode site' and
'duskmode sites'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}
			if _, ok := cmd.Annotations[annotationStandalone]; ok {
				return nil
			}

			_, daemon := cmd.Annotations[annotationDaemon]
			var err error
			opts := cli.Options{ConfigFile: configFile, Quiet: !daemon && !verbose}
			if daemon {
				opts.LogFile = cmd.Name()
			}
			app, err = cli.NewApp(opts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/duskmode/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level for editor commands")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
