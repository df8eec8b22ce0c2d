package websocket

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
	domainurl "github.com/bnema/duskmode/internal/domain/url"
	"github.com/bnema/duskmode/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// DefaultRequestTimeout bounds a request when the caller's context has no deadline.
const DefaultRequestTimeout = 3 * time.Second

// AgentNameHeader carries a human-readable agent name on connect.
const AgentNameHeader = "X-Agent-Name"

var errAgentGone = errors.New("agent disconnected")

var upgrader = websocket.Upgrader{
	// Agents are local processes, not browsers.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type agentConn struct {
	id      string
	name    string
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (a *agentConn) write(data []byte) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	return a.conn.WriteMessage(websocket.TextMessage, data)
}

type pageEntry struct {
	info     entity.PageInfo
	agent    *agentConn
	focusSeq uint64
}

type pendingRequest struct {
	agent *agentConn
	reply chan *Envelope
}

// Hub tracks connected agents and the pages they host, and routes commands
// to them. It implements port.PageTransport, port.PageProvisioner and
// port.PageDirectory.
type Hub struct {
	secret         string
	requestTimeout time.Duration
	logger         zerolog.Logger

	mu       sync.RWMutex
	agents   map[*agentConn]struct{}
	pages    map[entity.PageID]*pageEntry
	focusSeq uint64

	pendingMu sync.Mutex
	pending   map[string]*pendingRequest
}

// Compile-time interface checks.
var (
	_ port.PageTransport   = (*Hub)(nil)
	_ port.PageProvisioner = (*Hub)(nil)
	_ port.PageDirectory   = (*Hub)(nil)
)

// NewHub creates a hub that accepts agents presenting secret.
func NewHub(secret string, requestTimeout time.Duration, logger zerolog.Logger) *Hub {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	return &Hub{
		secret:         secret,
		requestTimeout: requestTimeout,
		logger:         logger.With().Str("component", "hub").Logger(),
		agents:         make(map[*agentConn]struct{}),
		pages:          make(map[entity.PageID]*pageEntry),
		pending:        make(map[string]*pendingRequest),
	}
}

// CheckAuth validates the Authorization header against the hub secret.
// An empty secret accepts every request.
func (h *Hub) CheckAuth(r *http.Request) bool {
	if h.secret == "" {
		return true
	}
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return false
	}
	token := strings.TrimPrefix(auth, "Bearer ")
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

// HandleWebSocket upgrades an agent connection and serves it until it closes.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !h.CheckAuth(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	agent := &agentConn{
		id:   uuid.NewString(),
		name: r.Header.Get(AgentNameHeader),
		conn: conn,
	}

	h.mu.Lock()
	h.agents[agent] = struct{}{}
	count := len(h.agents)
	h.mu.Unlock()

	h.logger.Info().Str("agent", agent.name).Int("agents", count).Msg("agent connected")

	go h.serveAgent(agent)
}

func (h *Hub) serveAgent(agent *agentConn) {
	defer h.dropAgent(agent)

	for {
		_, raw, err := agent.conn.ReadMessage()
		if err != nil {
			return
		}

		env, err := DecodeMessage(raw)
		if err != nil {
			h.logger.Warn().Err(err).Msg("failed to decode agent message")
			continue
		}
		h.handleAgentMessage(agent, env)
	}
}

func (h *Hub) handleAgentMessage(agent *agentConn, env *Envelope) {
	switch env.Type {
	case MessageTypePageOpened, MessageTypePageNavigated:
		var msg PageMessage
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			h.logger.Warn().Err(err).Str("type", string(env.Type)).Msg("malformed page message")
			return
		}
		h.upsertPage(agent, env.PageID, msg.URL)

	case MessageTypePageFocused:
		h.mu.Lock()
		if p, ok := h.pages[env.PageID]; ok && p.agent == agent {
			h.focusSeq++
			p.focusSeq = h.focusSeq
		}
		h.mu.Unlock()

	case MessageTypePageClosed:
		h.mu.Lock()
		if p, ok := h.pages[env.PageID]; ok && p.agent == agent {
			delete(h.pages, env.PageID)
		}
		h.mu.Unlock()
		h.logger.Debug().Str("page_id", string(env.PageID)).Msg("page closed")

	case MessageTypeReply:
		h.pendingMu.Lock()
		req, ok := h.pending[env.ID]
		delete(h.pending, env.ID)
		h.pendingMu.Unlock()
		if ok {
			req.reply <- env
		}

	default:
		h.logger.Warn().Str("type", string(env.Type)).Msg("unexpected message from agent")
	}
}

func (h *Hub) upsertPage(agent *agentConn, id entity.PageID, rawURL string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.pages[id]
	if !ok {
		p = &pageEntry{}
		h.pages[id] = p
	}
	p.agent = agent
	p.info = entity.PageInfo{
		ID:      id,
		URL:     rawURL,
		Host:    domainurl.ExtractHost(rawURL),
		AgentID: agent.id,
	}
	h.logger.Debug().Str("page_id", string(id)).Str("url", rawURL).Msg("page registered")
}

func (h *Hub) dropAgent(agent *agentConn) {
	h.mu.Lock()
	delete(h.agents, agent)
	for id, p := range h.pages {
		if p.agent == agent {
			delete(h.pages, id)
		}
	}
	count := len(h.agents)
	h.mu.Unlock()

	h.pendingMu.Lock()
	for id, req := range h.pending {
		if req.agent == agent {
			delete(h.pending, id)
			req.reply <- &Envelope{ID: id, Type: MessageTypeReply, Error: errAgentGone.Error()}
		}
	}
	h.pendingMu.Unlock()

	_ = agent.conn.Close()
	h.logger.Info().Str("agent", agent.name).Int("agents", count).Msg("agent disconnected")
}

// Send delivers cmd to the agent hosting pageID and waits for its reply.
func (h *Hub) Send(ctx context.Context, pageID entity.PageID, cmd port.PageCommand) (*port.PageReply, error) {
	env, err := h.request(ctx, pageID, MessageTypeCommand, cmd)
	if err != nil {
		return nil, err
	}

	var reply port.PageReply
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &reply); err != nil {
			return nil, fmt.Errorf("failed to decode reply: %w", err)
		}
	}
	return &reply, nil
}

// Provision asks the agent hosting pageID to install a fresh controller.
func (h *Hub) Provision(ctx context.Context, pageID entity.PageID) error {
	h.mu.RLock()
	p, ok := h.pages[pageID]
	var rawURL string
	if ok {
		rawURL = p.info.URL
	}
	h.mu.RUnlock()

	_, err := h.request(ctx, pageID, MessageTypeProvision, PageMessage{URL: rawURL})
	return err
}

func (h *Hub) request(ctx context.Context, pageID entity.PageID, msgType MessageType, data any) (*Envelope, error) {
	logging.FromContext(ctx).Debug().
		Str("page_id", string(pageID)).
		Str("type", string(msgType)).
		Msg("sending request to agent")

	h.mu.RLock()
	p, ok := h.pages[pageID]
	var agent *agentConn
	if ok {
		agent = p.agent
	}
	h.mu.RUnlock()
	if agent == nil {
		return nil, fmt.Errorf("page %s: %w", pageID, port.ErrNoReceiver)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	id := uuid.NewString()
	raw, err := EncodeMessage(Envelope{ID: id, Type: msgType, PageID: pageID}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req := &pendingRequest{agent: agent, reply: make(chan *Envelope, 1)}
	h.pendingMu.Lock()
	h.pending[id] = req
	h.pendingMu.Unlock()
	defer func() {
		h.pendingMu.Lock()
		delete(h.pending, id)
		h.pendingMu.Unlock()
	}()

	if err := agent.write(raw); err != nil {
		return nil, fmt.Errorf("failed to write to agent: %w", err)
	}

	select {
	case env := <-req.reply:
		if err := replyError(env.Error); err != nil {
			return nil, fmt.Errorf("page %s: %w", pageID, err)
		}
		return env, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("page %s: %w", pageID, ctx.Err())
	}
}

// FocusedPage returns the most recently focused page.
func (h *Hub) FocusedPage(context.Context) (*entity.PageInfo, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p := h.focused()
	if p == nil {
		return nil, nil
	}
	info := p.info
	info.Focused = true
	return &info, nil
}

// Page returns the page with id.
func (h *Hub) Page(_ context.Context, id entity.PageID) (*entity.PageInfo, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p, ok := h.pages[id]
	if !ok {
		return nil, nil
	}
	info := p.info
	info.Focused = p == h.focused()
	return &info, nil
}

// Pages lists known pages ordered by id.
func (h *Hub) Pages(context.Context) ([]entity.PageInfo, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	focused := h.focused()
	pages := make([]entity.PageInfo, 0, len(h.pages))
	for _, p := range h.pages {
		info := p.info
		info.Focused = p == focused
		pages = append(pages, info)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].ID < pages[j].ID })
	return pages, nil
}

// focused returns the page with the latest focus event. Caller holds mu.
func (h *Hub) focused() *pageEntry {
	var best *pageEntry
	for _, p := range h.pages {
		if p.focusSeq == 0 {
			continue
		}
		if best == nil || p.focusSeq > best.focusSeq {
			best = p
		}
	}
	return best
}

// AgentCount returns the number of connected agents.
func (h *Hub) AgentCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.agents)
}
