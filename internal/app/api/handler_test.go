package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/duskmode/internal/app/api"
	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/application/port/mocks"
	"github.com/bnema/duskmode/internal/application/usecase"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeCommands struct {
	toggled []entity.PageID
	applied map[entity.PageID]*entity.ThemePatch
	err     map[entity.PageID]error
	focused *entity.PageInfo
}

func newFakeCommands() *fakeCommands {
	return &fakeCommands{
		applied: make(map[entity.PageID]*entity.ThemePatch),
		err:     make(map[entity.PageID]error),
	}
}

func (f *fakeCommands) ToggleFocused(ctx context.Context) (*usecase.DeliveryResult, error) {
	if f.focused == nil {
		return nil, port.ErrNoFocusedPage
	}
	return f.Toggle(ctx, f.focused.ID)
}

func (f *fakeCommands) Toggle(_ context.Context, pageID entity.PageID) (*usecase.DeliveryResult, error) {
	if err := f.err[pageID]; err != nil {
		return nil, err
	}
	f.toggled = append(f.toggled, pageID)
	enabled := len(f.toggled)%2 == 1
	return &usecase.DeliveryResult{
		Page:  entity.PageInfo{ID: pageID},
		Reply: &port.PageReply{Enabled: &enabled},
	}, nil
}

func (f *fakeCommands) State(_ context.Context, pageID entity.PageID) (*usecase.DeliveryResult, error) {
	if err := f.err[pageID]; err != nil {
		return nil, err
	}
	enabled := true
	theme := entity.DefaultTheme()
	return &usecase.DeliveryResult{
		Page:  entity.PageInfo{ID: pageID},
		Reply: &port.PageReply{Enabled: &enabled, Theme: &theme},
	}, nil
}

func (f *fakeCommands) ApplyLiveTheme(_ context.Context, pageID entity.PageID, patch *entity.ThemePatch) (*usecase.DeliveryResult, error) {
	if err := f.err[pageID]; err != nil {
		return nil, err
	}
	f.applied[pageID] = patch
	return &usecase.DeliveryResult{
		Page:  entity.PageInfo{ID: pageID},
		Reply: &port.PageReply{OK: true},
	}, nil
}

func startAPI(t *testing.T, commands api.PageCommands, directory port.PageDirectory, secret string) *api.Client {
	t.Helper()
	authorize := func(r *http.Request) bool {
		return secret == "" || r.Header.Get("Authorization") == "Bearer "+secret
	}
	mux := http.NewServeMux()
	api.NewHandler(commands, directory, authorize, zerolog.Nop()).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, secret)
}

func TestHealth(t *testing.T) {
	client := startAPI(t, newFakeCommands(), mocks.NewMockPageDirectory(t), "")
	assert.NoError(t, client.Health(context.Background()))
}

func TestToggleFocused(t *testing.T) {
	commands := newFakeCommands()
	commands.focused = &entity.PageInfo{ID: "p1"}
	client := startAPI(t, commands, mocks.NewMockPageDirectory(t), "")

	result, err := client.ToggleFocused(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.PageID("p1"), result.Page.ID)
	require.NotNil(t, result.Enabled)
	assert.True(t, *result.Enabled)

	result, err = client.ToggleFocused(context.Background())
	require.NoError(t, err)
	assert.False(t, *result.Enabled)
}

func TestToggleFocused_NoFocusedPage(t *testing.T) {
	client := startAPI(t, newFakeCommands(), mocks.NewMockPageDirectory(t), "")

	_, err := client.ToggleFocused(context.Background())

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
	assert.Contains(t, statusErr.Detail, "no focused page")
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"internal page", fmt.Errorf("page p1: %w", port.ErrInternalPage), http.StatusConflict},
		{"no receiver", fmt.Errorf("failed to send: %w", port.ErrNoReceiver), http.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commands := newFakeCommands()
			commands.err["p1"] = tt.err
			client := startAPI(t, commands, mocks.NewMockPageDirectory(t), "")

			_, err := client.TogglePage(context.Background(), "p1")

			var statusErr *api.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.want, statusErr.Status)
		})
	}
}

func TestPageState(t *testing.T) {
	client := startAPI(t, newFakeCommands(), mocks.NewMockPageDirectory(t), "")

	result, err := client.PageState(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, result.Theme)
	assert.Equal(t, entity.DefaultTheme(), *result.Theme)
}

func TestPages(t *testing.T) {
	directory := mocks.NewMockPageDirectory(t)
	directory.EXPECT().Pages(mock.Anything).Return([]entity.PageInfo{
		{ID: "p1", URL: "https://example.com/", Host: "example.com", Focused: true},
	}, nil)
	client := startAPI(t, newFakeCommands(), directory, "")

	pages, err := client.Pages(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "example.com", pages[0].Host)
	assert.True(t, pages[0].Focused)
}

func TestApply_ByHost(t *testing.T) {
	directory := mocks.NewMockPageDirectory(t)
	directory.EXPECT().Pages(mock.Anything).Return([]entity.PageInfo{
		{ID: "p1", Host: "example.com"},
		{ID: "p2", Host: "other.org"},
		{ID: "p3", Host: "example.com"},
	}, nil)
	commands := newFakeCommands()
	commands.err["p3"] = port.ErrNoReceiver
	client := startAPI(t, commands, directory, "")

	bg := "#000000"
	results, err := client.Apply(context.Background(), api.ApplyRequest{
		Host:  "WWW.Example.com:443",
		Theme: &entity.ThemePatch{Background: &bg},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].OK)
	assert.NotEmpty(t, results[1].Error)

	require.Contains(t, commands.applied, entity.PageID("p1"))
	assert.Equal(t, "#000000", *commands.applied["p1"].Background)
	assert.NotContains(t, commands.applied, entity.PageID("p2"))
}

func TestApply_FocusedPage(t *testing.T) {
	directory := mocks.NewMockPageDirectory(t)
	directory.EXPECT().FocusedPage(mock.Anything).Return(&entity.PageInfo{ID: "p9"}, nil)
	commands := newFakeCommands()
	client := startAPI(t, commands, directory, "")

	results, err := client.Apply(context.Background(), api.ApplyRequest{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, commands.applied, entity.PageID("p9"))
}

func TestApply_ExplicitPageSkipsDirectory(t *testing.T) {
	commands := newFakeCommands()
	client := startAPI(t, commands, mocks.NewMockPageDirectory(t), "")

	_, err := client.Apply(context.Background(), api.ApplyRequest{PageID: "p4"})
	require.NoError(t, err)
	assert.Contains(t, commands.applied, entity.PageID("p4"))
}

func TestApply_NoFocusedPage(t *testing.T) {
	directory := mocks.NewMockPageDirectory(t)
	directory.EXPECT().FocusedPage(mock.Anything).Return(nil, nil)
	client := startAPI(t, newFakeCommands(), directory, "")

	_, err := client.Apply(context.Background(), api.ApplyRequest{})

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
}

func TestAuth(t *testing.T) {
	commands := newFakeCommands()
	commands.focused = &entity.PageInfo{ID: "p1"}
	good := startAPI(t, commands, mocks.NewMockPageDirectory(t), "s3cret")

	_, err := good.ToggleFocused(context.Background())
	require.NoError(t, err)

	mux := http.NewServeMux()
	api.NewHandler(commands, mocks.NewMockPageDirectory(t), func(*http.Request) bool { return false }, zerolog.Nop()).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	_, err = api.NewClient(srv.URL, "wrong").ToggleFocused(context.Background())
	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Status)

	// Health stays public.
	assert.NoError(t, api.NewClient(srv.URL, "").Health(context.Background()))
}

func TestClient_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.Listener.Addr().String()
	srv.Close()

	err := api.NewClient(addr, "").Health(context.Background())
	assert.ErrorIs(t, err, api.ErrServerUnreachable)
}
