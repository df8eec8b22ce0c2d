package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/duskmode/internal/app/constants"
	"github.com/bnema/duskmode/internal/domain/entity"
)

// DefaultClientTimeout bounds one control request, retry included.
const DefaultClientTimeout = 10 * time.Second

// ErrServerUnreachable is returned when `duskmode serve` is not running.
var ErrServerUnreachable = errors.New("duskmode server unreachable")

// StatusError is a non-2xx control API answer.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("control API: %s", http.StatusText(e.Status))
	}
	return fmt.Sprintf("control API: %s: %s", http.StatusText(e.Status), e.Detail)
}

// Client talks to the control API.
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

// NewClient creates a client for the server listening on listenAddr
// ("127.0.0.1:7451") or a full base URL.
func NewClient(listenAddr, secret string) *Client {
	base := listenAddr
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		secret:     secret,
		httpClient: &http.Client{Timeout: DefaultClientTimeout},
	}
}

// Health reports whether the server answers.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, constants.PathHealth, nil, nil)
}

// ToggleFocused flips the override on the focused page.
func (c *Client) ToggleFocused(ctx context.Context) (*PageResult, error) {
	var out PageResult
	if err := c.do(ctx, http.MethodPost, constants.PathToggle, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TogglePage flips the override on one page.
func (c *Client) TogglePage(ctx context.Context, pageID entity.PageID) (*PageResult, error) {
	var out PageResult
	path := constants.PathPages + "/" + url.PathEscape(string(pageID)) + "/toggle"
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PageState asks one page for its presentation.
func (c *Client) PageState(ctx context.Context, pageID entity.PageID) (*PageResult, error) {
	var out PageResult
	path := constants.PathPages + "/" + url.PathEscape(string(pageID))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pages lists the pages known to the hub.
func (c *Client) Pages(ctx context.Context) ([]entity.PageInfo, error) {
	var out []entity.PageInfo
	if err := c.do(ctx, http.MethodGet, constants.PathPages, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply pushes a theme to the pages selected by req.
func (c *Client) Apply(ctx context.Context, req ApplyRequest) ([]PageResult, error) {
	var out []PageResult
	if err := c.do(ctx, http.MethodPost, constants.PathApply, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", constants.ContentTypeJSON)
	}
	if c.secret != "" {
		req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var problem Problem
		_ = json.NewDecoder(resp.Body).Decode(&problem)
		return &StatusError{Status: resp.StatusCode, Detail: problem.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
