// Package cli wires the duskmode commands to the use cases.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/duskmode/internal/app/api"
	"github.com/bnema/duskmode/internal/application/usecase"
	"github.com/bnema/duskmode/internal/cli/styles"
	"github.com/bnema/duskmode/internal/domain/build"
	"github.com/bnema/duskmode/internal/domain/repository"
	"github.com/bnema/duskmode/internal/infrastructure/colorscheme"
	"github.com/bnema/duskmode/internal/infrastructure/config"
	"github.com/bnema/duskmode/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/duskmode/internal/logging"
)

// Options control how NewApp loads its dependencies.
type Options struct {
	// ConfigFile overrides $XDG_CONFIG_HOME/duskmode/config.toml.
	ConfigFile string
	// Quiet raises the log level to warn for one-shot editor commands.
	Quiet bool
	// LogFile names the rotating log file used when logging.to_file is set.
	// Empty keeps logs on stderr only.
	LogFile string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Configs   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Out       io.Writer

	db       *sqlite.LazyDB
	logFile  *logging.RotatingFile
	Settings repository.SettingsRepository

	// Use cases
	GlobalUC  *usecase.ManageGlobalSettingsUseCase
	SitesUC   *usecase.ManageSiteOverridesUseCase
	ResolveUC *usecase.ResolvePageUseCase

	// API talks to a running `duskmode serve`.
	API *api.Client

	ctx context.Context
}

// NewApp loads the config and creates every dependency. The database is
// opened on first use, so commands that never touch it never create it.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigFile != "" {
		mgr, err = config.NewManagerForFile(opts.ConfigFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logCfg := logging.ConfigFromValues(cfg.Logging.Level, cfg.Logging.Format)
	var logFile *logging.RotatingFile
	if cfg.Logging.ToFile && opts.LogFile != "" {
		logFile, err = logging.NewRotatingFile(cfg.Logging.LogDir, opts.LogFile, logging.RotateOptions{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		})
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logCfg.File = logFile
	}
	logger := logging.New(logCfg)
	switch {
	case opts.Quiet && logger.GetLevel() < zerolog.WarnLevel:
		logger = logger.Level(zerolog.WarnLevel)
	case !opts.Quiet:
		// The global level gates output so a config reload can change it.
		zerolog.SetGlobalLevel(logger.GetLevel())
		logger = logger.Level(zerolog.TraceLevel)
	}
	ctx := logging.WithContext(context.Background(), logger)

	app := NewAppFromConfig(ctx, cfg)
	app.Configs = mgr
	app.logFile = logFile
	return app, nil
}

// NewAppFromConfig creates the dependencies for an already loaded config.
func NewAppFromConfig(ctx context.Context, cfg *config.Config) *App {
	pref := colorscheme.NewResolver(string(cfg.Appearance.ColorScheme), colorscheme.DefaultDetectors()...).Resolve()
	logging.FromContext(ctx).Debug().
		Bool("prefers_dark", pref.PrefersDark).
		Str("source", pref.Source).
		Msg("cli palette resolved")

	db := sqlite.NewLazyDB(cfg.Database.Path)
	settings := sqlite.NewLazySettingsRepository(db)
	seed := cfg.Defaults.GlobalSettings()

	return &App{
		Config:    cfg,
		Theme:     styles.NewTheme(pref.PrefersDark),
		Out:       os.Stdout,
		db:        db,
		Settings:  settings,
		GlobalUC:  usecase.NewManageGlobalSettingsUseCase(settings, seed),
		SitesUC:   usecase.NewManageSiteOverridesUseCase(settings),
		ResolveUC: usecase.NewResolvePageUseCase(settings, seed, cfg.Pages.InternalSchemes, nil),
		API:       api.NewClient(cfg.Server.ListenAddr, cfg.Server.Secret),
		ctx:       ctx,
	}
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logFile != nil {
		err = errors.Join(err, a.logFile.Close())
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Println writes one line to the command output.
func (a *App) Println(s string) {
	fmt.Fprintln(a.Out, s)
}
