package messaging

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/logging"
)

// Router dispatches commands to the handler registered for each page.
type Router struct {
	mu       sync.RWMutex
	handlers map[entity.PageID]*Handler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[entity.PageID]*Handler)}
}

// Register installs handler for pageID, replacing any previous one.
func (r *Router) Register(pageID entity.PageID, handler *Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[pageID] = handler
}

// Unregister removes the handler for pageID.
func (r *Router) Unregister(pageID entity.PageID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, pageID)
}

// Has reports whether pageID has a handler.
func (r *Router) Has(pageID entity.PageID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[pageID]
	return ok
}

// Dispatch routes cmd to the page's handler.
// Returns port.ErrNoReceiver when the page has none.
func (r *Router) Dispatch(ctx context.Context, pageID entity.PageID, cmd port.PageCommand) (*port.PageReply, error) {
	r.mu.RLock()
	h, ok := r.handlers[pageID]
	r.mu.RUnlock()

	if !ok {
		logging.FromContext(ctx).Debug().Str("page_id", string(pageID)).Msg("no handler for page")
		return nil, fmt.Errorf("page %s: %w", pageID, port.ErrNoReceiver)
	}
	return h.Handle(logging.WithPageID(ctx, string(pageID)), cmd)
}
