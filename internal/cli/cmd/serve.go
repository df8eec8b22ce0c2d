package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/duskmode/internal/app/api"
	"github.com/bnema/duskmode/internal/app/constants"
	"github.com/bnema/duskmode/internal/application/usecase"
	"github.com/bnema/duskmode/internal/infrastructure/config"
	"github.com/bnema/duskmode/internal/infrastructure/transport/websocket"
	"github.com/bnema/duskmode/internal/logging"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the hub and the local control API",
	Long: `Run the hub. Agents connect to /ws; the CLI and hotkey bindings use the
control API on the same address.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationDaemon: ""},
	RunE:        runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := app.Config
	log := logging.FromContext(ctx)

	if _, err := app.GlobalUC.EnsureDefaults(ctx); err != nil {
		log.Warn().Err(err).Msg("settings store unavailable; pages fall back to defaults")
	}

	hub := websocket.NewHub(cfg.Server.Secret, cfg.Server.RequestTimeout(), *log)
	deliver := usecase.NewDeliverPageCommandUseCase(
		hub, hub, hub,
		app.Settings,
		app.GlobalUC.Seed(),
		cfg.Pages.InternalSchemes,
	)
	handler := api.NewHandler(deliver, hub, hub.CheckAuth, *log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+constants.PathWebSocket, hub.HandleWebSocket)
	handler.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	watchConfig(app.Configs, cfg, *log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Bool("auth", cfg.Server.Secret != "").Msg("hub listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		log.Info().Msg("hub shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// watchConfig applies log level changes live. Sections read once at startup
// are compared against started and only reported.
func watchConfig(mgr *config.Manager, started *config.Config, log zerolog.Logger) {
	if mgr == nil {
		return
	}
	mgr.OnConfigChange(func(next *config.Config) {
		zerolog.SetGlobalLevel(logging.ParseLevel(next.Logging.Level))
		for _, section := range config.ChangedSections(started, next) {
			switch section {
			case "server", "database", "pages", "defaults":
				log.Warn().Str("section", section).Msg("config section changed; restart serve to apply it")
			}
		}
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch failed")
	}
}
