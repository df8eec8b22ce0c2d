package agent_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/duskmode/internal/app/agent"
	"github.com/bnema/duskmode/internal/app/messaging"
	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/application/usecase"
	"github.com/bnema/duskmode/internal/domain/activation"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// resolverFunc decides a page from its URL alone.
type resolverFunc func(rawURL string) (*usecase.PageDecision, error)

func (f resolverFunc) Execute(_ context.Context, rawURL string) (*usecase.PageDecision, error) {
	return f(rawURL)
}

// activeOn turns the override on for every URL containing one of hosts.
func activeOn(hosts ...string) resolverFunc {
	return func(rawURL string) (*usecase.PageDecision, error) {
		d := &usecase.PageDecision{URL: rawURL, Theme: entity.DefaultTheme()}
		for _, h := range hosts {
			if strings.Contains(rawURL, h) {
				d.Decision = activation.Decision{Active: true, Intent: true, InSchedule: true}
			}
		}
		return d, nil
	}
}

type recordingSurface struct {
	mu    sync.Mutex
	shown bool
	shows int
}

func (s *recordingSurface) Show(context.Context, []entity.ThemeVariable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = true
	s.shows++
	return nil
}

func (s *recordingSurface) Hide(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = false
	return nil
}

func (s *recordingSurface) isShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}

type surfaces struct {
	mu   sync.Mutex
	byID map[entity.PageID]*recordingSurface
}

func newSurfaces() *surfaces {
	return &surfaces{byID: make(map[entity.PageID]*recordingSurface)}
}

func (s *surfaces) factory(id entity.PageID) port.RenderSurface {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		s.byID[id] = &recordingSurface{}
	}
	return s.byID[id]
}

func (s *surfaces) get(id entity.PageID) *recordingSurface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[id]
}

type recordingAnnouncer struct {
	mu     sync.Mutex
	events []string
	err    error
}

func (r *recordingAnnouncer) record(ev string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func (r *recordingAnnouncer) PageOpened(id entity.PageID, rawURL string) error {
	return r.record("open " + string(id) + " " + rawURL)
}

func (r *recordingAnnouncer) PageNavigated(id entity.PageID, rawURL string) error {
	return r.record("navigate " + string(id) + " " + rawURL)
}

func (r *recordingAnnouncer) PageFocused(id entity.PageID) error {
	return r.record("focus " + string(id))
}

func (r *recordingAnnouncer) PageClosed(id entity.PageID) error {
	return r.record("close " + string(id))
}

func newAgent(resolver resolverFunc) (*agent.Agent, *surfaces, *recordingAnnouncer) {
	s := newSurfaces()
	a := agent.New(resolver, s.factory)
	an := &recordingAnnouncer{}
	a.SetAnnouncer(an)
	return a, s, an
}

func state(t *testing.T, a *agent.Agent, id entity.PageID) bool {
	t.Helper()
	reply, err := a.Execute(testContext(), id, port.PageCommand{Type: port.CommandGetState})
	require.NoError(t, err)
	require.NotNil(t, reply.Enabled)
	return *reply.Enabled
}

func TestOpen_RunsStartupSequence(t *testing.T) {
	ctx := testContext()
	a, s, an := newAgent(activeOn("example.com"))

	require.NoError(t, a.Open(ctx, "p1", "https://example.com/"))
	require.NoError(t, a.Open(ctx, "p2", "https://other.org/"))

	assert.True(t, s.get("p1").isShown())
	assert.False(t, s.get("p2").isShown())
	assert.True(t, state(t, a, "p1"))
	assert.False(t, state(t, a, "p2"))
	assert.Equal(t, []string{"open p1 https://example.com/", "open p2 https://other.org/"}, an.events)
}

func TestOpen_KnownPageNavigates(t *testing.T) {
	ctx := testContext()
	a, _, an := newAgent(activeOn("example.com"))

	require.NoError(t, a.Open(ctx, "p1", "https://other.org/"))
	require.NoError(t, a.Open(ctx, "p1", "https://example.com/"))

	assert.True(t, state(t, a, "p1"))
	assert.Equal(t, "navigate p1 https://example.com/", an.events[len(an.events)-1])
}

func TestNavigate_ReplacesController(t *testing.T) {
	ctx := testContext()
	a, s, _ := newAgent(activeOn("example.com"))
	require.NoError(t, a.Open(ctx, "p1", "https://example.com/"))
	before := a.Controller("p1")

	require.NoError(t, a.Navigate(ctx, "p1", "https://other.org/"))

	assert.NotSame(t, before, a.Controller("p1"))
	assert.Equal(t, "https://other.org/", a.Controller("p1").URL())
	assert.False(t, s.get("p1").isShown())
	assert.False(t, state(t, a, "p1"))
}

func TestLifecycle_UnknownPage(t *testing.T) {
	ctx := testContext()
	a, _, _ := newAgent(activeOn())

	assert.ErrorIs(t, a.Navigate(ctx, "nope", "https://example.com/"), agent.ErrUnknownPage)
	assert.ErrorIs(t, a.Focus(ctx, "nope"), agent.ErrUnknownPage)
	assert.ErrorIs(t, a.Close(ctx, "nope"), agent.ErrUnknownPage)
}

func TestClose_RemovesOverrideAndReceiver(t *testing.T) {
	ctx := testContext()
	a, s, an := newAgent(activeOn("example.com"))
	require.NoError(t, a.Open(ctx, "p1", "https://example.com/"))

	require.NoError(t, a.Close(ctx, "p1"))

	assert.False(t, s.get("p1").isShown())
	assert.Nil(t, a.Controller("p1"))
	_, err := a.Execute(ctx, "p1", port.PageCommand{Type: port.CommandToggle})
	assert.ErrorIs(t, err, port.ErrNoReceiver)
	assert.Equal(t, "close p1", an.events[len(an.events)-1])
}

func TestDispatch_Toggle(t *testing.T) {
	ctx := testContext()
	a, s, _ := newAgent(activeOn())
	require.NoError(t, a.Open(ctx, "p1", "https://example.com/"))

	reply, err := a.Execute(ctx, "p1", port.PageCommand{Type: port.CommandToggle})
	require.NoError(t, err)
	assert.True(t, *reply.Enabled)
	assert.True(t, s.get("p1").isShown())

	reply, err = a.Execute(ctx, "p1", port.PageCommand{Type: port.CommandToggle})
	require.NoError(t, err)
	assert.False(t, *reply.Enabled)
	assert.False(t, s.get("p1").isShown())
}

func TestDispatch_DecodesHubPayload(t *testing.T) {
	ctx := testContext()
	a, s, _ := newAgent(activeOn())
	require.NoError(t, a.Open(ctx, "p1", "https://example.com/"))

	reply, err := a.Dispatch(ctx, "p1", json.RawMessage(`{"type":"apply_theme","theme":"{\"bg\":\"#000000\"}"}`))
	require.NoError(t, err)
	assert.True(t, reply.OK)
	assert.True(t, s.get("p1").isShown())

	reply, err = a.Dispatch(ctx, "p1", json.RawMessage(`{"type":" get_state "}`))
	require.NoError(t, err)
	require.NotNil(t, reply.Theme)
	assert.Equal(t, "#000000", reply.Theme.Background)
	assert.Equal(t, entity.DefaultText, reply.Theme.Text)

	_, err = a.Dispatch(ctx, "p1", json.RawMessage(`{"type":"RELOAD"}`))
	assert.ErrorIs(t, err, messaging.ErrUnknownCommand)
	_, err = a.Dispatch(ctx, "p1", json.RawMessage(`not json`))
	assert.ErrorIs(t, err, messaging.ErrMalformedCommand)
	_, err = a.Dispatch(ctx, "nope", json.RawMessage(`{"type":"TOGGLE"}`))
	assert.ErrorIs(t, err, port.ErrNoReceiver)
}

func TestProvision(t *testing.T) {
	ctx := testContext()
	a, s, an := newAgent(activeOn("example.com"))

	require.NoError(t, a.Provision(ctx, "p7", "https://example.com/"))
	assert.True(t, s.get("p7").isShown())
	assert.True(t, state(t, a, "p7"))
	assert.Empty(t, an.events, "provisioning does not re-announce")

	shows := s.get("p7").shows
	require.NoError(t, a.Provision(ctx, "p7", "https://example.com/"))
	assert.Equal(t, shows, s.get("p7").shows, "provisioning a reachable page is a no-op")
}

func TestResolverFailureLeavesPageReachable(t *testing.T) {
	ctx := testContext()
	a, s, _ := newAgent(func(string) (*usecase.PageDecision, error) {
		return nil, errors.New("boom")
	})

	require.NoError(t, a.Open(ctx, "p1", "https://example.com/"))

	assert.False(t, s.get("p1").isShown())
	assert.False(t, state(t, a, "p1"))
}

func TestAnnouncerErrorsAreNotFatal(t *testing.T) {
	ctx := testContext()
	a, _, an := newAgent(activeOn())
	an.err = errors.New("not connected")

	assert.NoError(t, a.Open(ctx, "p1", "https://example.com/"))
	assert.NoError(t, a.Focus(ctx, "p1"))
	assert.NoError(t, a.Close(ctx, "p1"))
}

func TestCloseAll(t *testing.T) {
	ctx := testContext()
	a, s, _ := newAgent(activeOn("example.com"))
	require.NoError(t, a.Open(ctx, "p1", "https://example.com/"))
	require.NoError(t, a.Open(ctx, "p2", "https://example.com/b"))

	a.CloseAll(ctx)

	assert.Empty(t, a.Pages())
	assert.False(t, s.get("p1").isShown())
	assert.False(t, s.get("p2").isShown())
}
