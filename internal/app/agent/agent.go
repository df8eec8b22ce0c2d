// Package agent runs the page side: one PresentationController per page,
// reachable from the hub through a messaging.Router.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/bnema/duskmode/internal/app/control"
	"github.com/bnema/duskmode/internal/app/messaging"
	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/logging"
)

// Announcer tells the hub about page lifecycle events.
type Announcer interface {
	PageOpened(id entity.PageID, rawURL string) error
	PageNavigated(id entity.PageID, rawURL string) error
	PageFocused(id entity.PageID) error
	PageClosed(id entity.PageID) error
}

// SurfaceFactory creates the render surface for a page.
type SurfaceFactory func(pageID entity.PageID) port.RenderSurface

// ErrUnknownPage is returned for lifecycle events about a page never opened.
var ErrUnknownPage = errors.New("unknown page")

// Agent owns the controllers of every page in this host.
// It implements websocket.AgentHandler.
type Agent struct {
	mu        sync.Mutex
	pages     map[entity.PageID]*control.PresentationController
	router    *messaging.Router
	resolver  control.PageResolver
	surfaces  SurfaceFactory
	announcer Announcer
}

// New creates an agent. The announcer is attached later with SetAnnouncer
// because the hub client needs the agent as its handler.
func New(resolver control.PageResolver, surfaces SurfaceFactory) *Agent {
	return &Agent{
		pages:    make(map[entity.PageID]*control.PresentationController),
		router:   messaging.NewRouter(),
		resolver: resolver,
		surfaces: surfaces,
	}
}

// SetAnnouncer attaches the hub client.
func (a *Agent) SetAnnouncer(announcer Announcer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.announcer = announcer
}

// Open runs the startup sequence for a new page and makes it reachable.
// Opening a known page is treated as a navigation.
func (a *Agent) Open(ctx context.Context, id entity.PageID, rawURL string) error {
	a.mu.Lock()
	_, known := a.pages[id]
	a.mu.Unlock()
	if known {
		return a.Navigate(ctx, id, rawURL)
	}

	a.attach(ctx, id, rawURL)
	a.announce(ctx, "open", func(an Announcer) error { return an.PageOpened(id, rawURL) })
	return nil
}

// Navigate replaces the page's controller, as a fresh page load would.
// Commands arriving in between find no receiver and get the page provisioned.
func (a *Agent) Navigate(ctx context.Context, id entity.PageID, rawURL string) error {
	a.mu.Lock()
	_, known := a.pages[id]
	a.mu.Unlock()
	if !known {
		return ErrUnknownPage
	}

	a.router.Unregister(id)
	a.attach(ctx, id, rawURL)
	a.announce(ctx, "navigate", func(an Announcer) error { return an.PageNavigated(id, rawURL) })
	return nil
}

// Focus marks the page the hotkey targets.
func (a *Agent) Focus(ctx context.Context, id entity.PageID) error {
	a.mu.Lock()
	_, known := a.pages[id]
	a.mu.Unlock()
	if !known {
		return ErrUnknownPage
	}
	a.announce(ctx, "focus", func(an Announcer) error { return an.PageFocused(id) })
	return nil
}

// Close removes the page's override and forgets it.
func (a *Agent) Close(ctx context.Context, id entity.PageID) error {
	a.mu.Lock()
	c, known := a.pages[id]
	delete(a.pages, id)
	a.mu.Unlock()
	if !known {
		return ErrUnknownPage
	}

	a.router.Unregister(id)
	if err := c.Disable(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("page_id", string(id)).Msg("failed to remove override on close")
	}
	a.announce(ctx, "close", func(an Announcer) error { return an.PageClosed(id) })
	return nil
}

// Dispatch implements websocket.AgentHandler: it decodes payload and runs
// the command on the page.
func (a *Agent) Dispatch(ctx context.Context, pageID entity.PageID, payload json.RawMessage) (*port.PageReply, error) {
	cmd, err := messaging.ParseCommand(payload)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("page_id", string(pageID)).Msg("rejected page command")
		return nil, err
	}
	return a.Execute(ctx, pageID, cmd)
}

// Execute runs a decoded command on the page.
func (a *Agent) Execute(ctx context.Context, pageID entity.PageID, cmd port.PageCommand) (*port.PageReply, error) {
	return a.router.Dispatch(ctx, pageID, cmd)
}

// Provision implements websocket.AgentHandler. It attaches a controller to
// a page that has none, running the startup sequence first.
func (a *Agent) Provision(ctx context.Context, pageID entity.PageID, rawURL string) error {
	if a.router.Has(pageID) {
		return nil
	}
	if rawURL == "" {
		if c := a.Controller(pageID); c != nil {
			rawURL = c.URL()
		}
	}
	logging.FromContext(ctx).Info().Str("page_id", string(pageID)).Msg("provisioning page controller")
	a.attach(ctx, pageID, rawURL)
	return nil
}

// Controller returns the page's controller, or nil.
func (a *Agent) Controller(id entity.PageID) *control.PresentationController {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pages[id]
}

// Pages returns the ids of every open page.
func (a *Agent) Pages() []entity.PageID {
	a.mu.Lock()
	defer a.mu.Unlock()
	ids := make([]entity.PageID, 0, len(a.pages))
	for id := range a.pages {
		ids = append(ids, id)
	}
	return ids
}

// CloseAll removes every override. Used on shutdown.
func (a *Agent) CloseAll(ctx context.Context) {
	for _, id := range a.Pages() {
		_ = a.Close(ctx, id)
	}
}

// attach creates a controller, starts it and registers its handler.
// A replaced controller has its override removed first, since the new one
// starts inactive over the same surface. A failed start leaves the page
// inactive but reachable.
func (a *Agent) attach(ctx context.Context, id entity.PageID, rawURL string) {
	ctx = logging.WithPageID(ctx, string(id))
	c := control.NewPresentationController(id, rawURL, a.surfaces(id), a.resolver)

	a.mu.Lock()
	prev := a.pages[id]
	a.pages[id] = c
	a.mu.Unlock()

	if prev != nil {
		if err := prev.Disable(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to remove previous override")
		}
	}

	active, err := c.Start(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("url", rawURL).Msg("page started without override")
	} else {
		logging.FromContext(ctx).Debug().Bool("active", active).Str("url", rawURL).Msg("page started")
	}

	a.router.Register(id, messaging.NewHandler(c))
}

func (a *Agent) announce(ctx context.Context, event string, fn func(Announcer) error) {
	a.mu.Lock()
	announcer := a.announcer
	a.mu.Unlock()
	if announcer == nil {
		return
	}
	// The client keeps the page table and replays it on reconnect.
	if err := fn(announcer); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("event", event).Msg("page event not delivered to hub")
	}
}
