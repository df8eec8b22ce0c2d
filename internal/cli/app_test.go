package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bnema/duskmode/internal/app/api"
	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/infrastructure/config"
	"github.com/bnema/duskmode/internal/logging"
)

// newTestApp builds an app on a temporary database talking to apiAddr.
func newTestApp(t *testing.T, apiAddr string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "duskmode.sqlite")
	cfg.Server.ListenAddr = apiAddr
	cfg.Appearance.ColorScheme = config.ThemePreferDark

	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	app := NewAppFromConfig(ctx, cfg)
	out := &bytes.Buffer{}
	app.Out = out
	t.Cleanup(func() { _ = app.Close() })
	return app, out
}

func startAPI(t *testing.T, commands api.PageCommands, directory port.PageDirectory) string {
	t.Helper()
	mux := http.NewServeMux()
	api.NewHandler(commands, directory, nil, zerolog.Nop()).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}
