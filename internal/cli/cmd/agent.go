package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/duskmode/internal/app/agent"
	"github.com/bnema/duskmode/internal/app/constants"
	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/infrastructure/stylesheet"
	"github.com/bnema/duskmode/internal/infrastructure/transport/websocket"
	"github.com/bnema/duskmode/internal/logging"
)

var (
	agentName     string
	agentKeepOpen bool
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Host pages and render their override stylesheets",
	Long: `Run a page host. Page events are read from stdin, one per line:

  open <page-id> <url>
  navigate <page-id> <url>
  focus <page-id>
  close <page-id>

Each active page gets a stylesheet named after its id in the stylesheet
directory; the file is removed when the override turns off. The agent
stays connected to the hub and answers TOGGLE, APPLY_THEME and GET_STATE.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationDaemon: ""},
	RunE:        runAgent,
}

func init() {
	rootCmd.AddCommand(agentCmd)
	agentCmd.Flags().StringVarP(&agentName, "name", "n", "", "agent name reported to the hub (default hostname)")
	agentCmd.Flags().BoolVar(&agentKeepOpen, "keep-open", false, "keep running after stdin is closed")
}

func runAgent(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := app.Config
	ctx = logging.WithComponent(ctx, "agent")
	log := logging.FromContext(ctx)

	dir := cfg.Agent.StylesheetDir
	if err := os.MkdirAll(dir, constants.DirPerm); err != nil {
		return fmt.Errorf("failed to create stylesheet directory: %w", err)
	}

	name := agentName
	if name == "" {
		name, _ = os.Hostname()
	}

	a := agent.New(app.ResolveUC, func(id entity.PageID) port.RenderSurface {
		return stylesheet.NewFileSurface(dir, id)
	})
	client := websocket.NewClient(cfg.Agent.HubURL, cfg.Server.Secret, name, a, *log)
	if d := cfg.Agent.ReconnectDelay(); d > 0 {
		client.MinReconnectDelay = d
	}
	a.SetAnnouncer(client)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.CloseAll(context.WithoutCancel(ctx))

	inputDone := make(chan error, 1)
	go func() {
		inputDone <- a.ReadEvents(ctx, os.Stdin)
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.Run(gctx)
	})
	g.Go(func() error {
		select {
		case err := <-inputDone:
			if err != nil {
				return err
			}
			if agentKeepOpen {
				<-gctx.Done()
				return nil
			}
			log.Info().Msg("input closed; agent exiting")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	log.Info().Str("hub", cfg.Agent.HubURL).Str("stylesheets", dir).Msg("agent started")
	return g.Wait()
}
