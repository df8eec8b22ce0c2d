package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// AgentHandler executes hub requests on the agent side. Dispatch receives the
// command payload as sent by the hub and decodes it itself.
type AgentHandler interface {
	Dispatch(ctx context.Context, pageID entity.PageID, payload json.RawMessage) (*port.PageReply, error)
	Provision(ctx context.Context, pageID entity.PageID, rawURL string) error
}

// ErrNotConnected is returned when announcing a page while the hub is unreachable.
var ErrNotConnected = errors.New("not connected to hub")

// Client connects an agent to the hub. Requests are handled one at a time in
// arrival order. Pages announced through the client are re-announced after
// every reconnect.
type Client struct {
	serverURL string
	secret    string
	name      string
	handler   AgentHandler
	logger    zerolog.Logger

	// Reconnection settings
	MinReconnectDelay time.Duration
	MaxReconnectDelay time.Duration

	// Connection callbacks
	OnConnect    func()
	OnDisconnect func()

	mu      sync.Mutex
	conn    *websocket.Conn
	pages   map[entity.PageID]string
	focused entity.PageID
	writeMu sync.Mutex
}

// NewClient creates a client for the hub at serverURL.
func NewClient(serverURL, secret, name string, handler AgentHandler, logger zerolog.Logger) *Client {
	return &Client{
		serverURL:         serverURL,
		secret:            secret,
		name:              name,
		handler:           handler,
		logger:            logger.With().Str("component", "hub-client").Logger(),
		MinReconnectDelay: time.Second,
		MaxReconnectDelay: 30 * time.Second,
		pages:             make(map[entity.PageID]string),
	}
}

// Run connects and serves hub requests until ctx is canceled, reconnecting
// with exponential backoff.
func (c *Client) Run(ctx context.Context) error {
	delay := c.MinReconnectDelay

	for {
		err := c.connect(ctx)
		if err == nil {
			delay = c.MinReconnectDelay
			c.readLoop(ctx)
		} else {
			c.logger.Debug().Err(err).Str("url", c.serverURL).Msg("hub connection failed")
		}

		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}

		delay *= 2
		if delay > c.MaxReconnectDelay {
			delay = c.MaxReconnectDelay
		}
	}
}

func (c *Client) connect(ctx context.Context) error {
	header := http.Header{}
	if c.secret != "" {
		header.Set("Authorization", "Bearer "+c.secret)
	}
	if c.name != "" {
		header.Set(AgentNameHeader, c.name)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.serverURL, header)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	pages := make(map[entity.PageID]string, len(c.pages))
	for id, u := range c.pages {
		pages[id] = u
	}
	focused := c.focused
	c.mu.Unlock()

	c.logger.Info().Str("url", c.serverURL).Msg("connected to hub")

	ids := make([]entity.PageID, 0, len(pages))
	for id := range pages {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		_ = c.send(Envelope{Type: MessageTypePageOpened, PageID: id}, PageMessage{URL: pages[id]})
	}
	if focused != "" {
		_ = c.send(Envelope{Type: MessageTypePageFocused, PageID: focused}, nil)
	}

	if c.OnConnect != nil {
		c.OnConnect()
	}
	return nil
}

func (c *Client) readLoop(ctx context.Context) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	defer func() {
		c.mu.Lock()
		if c.conn == conn {
			c.conn = nil
		}
		c.mu.Unlock()
		_ = conn.Close()
		c.logger.Info().Msg("disconnected from hub")

		if c.OnDisconnect != nil {
			c.OnDisconnect()
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		env, err := DecodeMessage(raw)
		if err != nil {
			c.logger.Warn().Err(err).Msg("failed to decode hub message")
			continue
		}
		c.handle(ctx, env)
	}
}

func (c *Client) handle(ctx context.Context, env *Envelope) {
	reply := Envelope{ID: env.ID, Type: MessageTypeReply, PageID: env.PageID}
	var data any

	switch env.Type {
	case MessageTypeCommand:
		res, err := c.handler.Dispatch(ctx, env.PageID, env.Data)
		if err != nil {
			reply.Error = errorCode(err)
			break
		}
		data = res

	case MessageTypeProvision:
		var msg PageMessage
		if len(env.Data) > 0 {
			_ = json.Unmarshal(env.Data, &msg)
		}
		if msg.URL == "" {
			c.mu.Lock()
			msg.URL = c.pages[env.PageID]
			c.mu.Unlock()
		}
		if err := c.handler.Provision(ctx, env.PageID, msg.URL); err != nil {
			reply.Error = errorCode(err)
		}

	default:
		c.logger.Warn().Str("type", string(env.Type)).Msg("unexpected message from hub")
		return
	}

	if err := c.send(reply, data); err != nil {
		c.logger.Warn().Err(err).Str("id", env.ID).Msg("failed to send reply")
	}
}

func (c *Client) send(env Envelope, data any) error {
	raw, err := EncodeMessage(env, data)
	if err != nil {
		return err
	}

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, raw)
}

// PageOpened records a page and announces it to the hub.
func (c *Client) PageOpened(id entity.PageID, rawURL string) error {
	c.mu.Lock()
	c.pages[id] = rawURL
	c.mu.Unlock()
	return c.send(Envelope{Type: MessageTypePageOpened, PageID: id}, PageMessage{URL: rawURL})
}

// PageNavigated updates a page's URL.
func (c *Client) PageNavigated(id entity.PageID, rawURL string) error {
	c.mu.Lock()
	c.pages[id] = rawURL
	c.mu.Unlock()
	return c.send(Envelope{Type: MessageTypePageNavigated, PageID: id}, PageMessage{URL: rawURL})
}

// PageFocused marks a page as the focused one.
func (c *Client) PageFocused(id entity.PageID) error {
	c.mu.Lock()
	c.focused = id
	c.mu.Unlock()
	return c.send(Envelope{Type: MessageTypePageFocused, PageID: id}, nil)
}

// PageClosed forgets a page.
func (c *Client) PageClosed(id entity.PageID) error {
	c.mu.Lock()
	delete(c.pages, id)
	if c.focused == id {
		c.focused = ""
	}
	c.mu.Unlock()
	return c.send(Envelope{Type: MessageTypePageClosed, PageID: id}, nil)
}

// IsConnected returns true if the client is currently connected.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}
