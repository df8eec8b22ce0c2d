// Package api serves the local control API used by the hotkey and the editor CLI.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bnema/duskmode/internal/app/constants"
	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/application/usecase"
	"github.com/bnema/duskmode/internal/domain/entity"
	domainurl "github.com/bnema/duskmode/internal/domain/url"
	"github.com/rs/zerolog"
)

// PageCommands is the subset of DeliverPageCommandUseCase the API drives.
type PageCommands interface {
	ToggleFocused(ctx context.Context) (*usecase.DeliveryResult, error)
	Toggle(ctx context.Context, pageID entity.PageID) (*usecase.DeliveryResult, error)
	State(ctx context.Context, pageID entity.PageID) (*usecase.DeliveryResult, error)
	ApplyLiveTheme(ctx context.Context, pageID entity.PageID, patch *entity.ThemePatch) (*usecase.DeliveryResult, error)
}

// ApplyRequest pushes a theme to pages without touching the store.
// PageID wins over Host; with neither the focused page is targeted.
type ApplyRequest struct {
	PageID entity.PageID      `json:"page_id,omitempty"`
	Host   string             `json:"host,omitempty"`
	Theme  *entity.ThemePatch `json:"theme,omitempty"`
}

// PageResult is one page's answer.
type PageResult struct {
	Page    entity.PageInfo `json:"page"`
	Enabled *bool           `json:"enabled,omitempty"`
	OK      bool            `json:"ok,omitempty"`
	Theme   *entity.Theme   `json:"theme,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Problem is an RFC 7807 error body.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// Handler provides the control API endpoints.
type Handler struct {
	commands  PageCommands
	directory port.PageDirectory
	authorize func(*http.Request) bool
	logger    zerolog.Logger
}

// NewHandler creates a control API handler. authorize may be nil to accept every request.
func NewHandler(commands PageCommands, directory port.PageDirectory, authorize func(*http.Request) bool, logger zerolog.Logger) *Handler {
	if authorize == nil {
		authorize = func(*http.Request) bool { return true }
	}
	return &Handler{
		commands:  commands,
		directory: directory,
		authorize: authorize,
		logger:    logger.With().Str("component", "api").Logger(),
	}
}

// RegisterRoutes registers the control routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+constants.PathHealth, h.handleHealth)
	mux.HandleFunc("POST "+constants.PathToggle, h.guard(h.handleToggleFocused))
	mux.HandleFunc("POST "+constants.PathApply, h.guard(h.handleApply))
	mux.HandleFunc("GET "+constants.PathPages, h.guard(h.handleListPages))
	mux.HandleFunc("GET "+constants.PathPages+"/{id}", h.guard(h.handleGetState))
	mux.HandleFunc("POST "+constants.PathPages+"/{id}/toggle", h.guard(h.handleTogglePage))
}

func (h *Handler) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.authorize(r) {
			h.logger.Warn().Str("path", r.URL.Path).Msg("rejected unauthorized request")
			writeProblem(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r.WithContext(h.logger.WithContext(r.Context())))
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleToggleFocused(w http.ResponseWriter, r *http.Request) {
	result, err := h.commands.ToggleFocused(r.Context())
	if err != nil {
		h.writeError(w, "toggle focused page", err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResult(result))
}

func (h *Handler) handleTogglePage(w http.ResponseWriter, r *http.Request) {
	result, err := h.commands.Toggle(r.Context(), entity.PageID(r.PathValue("id")))
	if err != nil {
		h.writeError(w, "toggle page", err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResult(result))
}

func (h *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	result, err := h.commands.State(r.Context(), entity.PageID(r.PathValue("id")))
	if err != nil {
		h.writeError(w, "get page state", err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResult(result))
}

func (h *Handler) handleListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.directory.Pages(r.Context())
	if err != nil {
		h.writeError(w, "list pages", err)
		return
	}
	if pages == nil {
		pages = []entity.PageInfo{}
	}
	writeJSON(w, http.StatusOK, pages)
}

// handleApply answers with one result per targeted page. Per-page delivery
// failures are reported in the result, not as an HTTP error.
func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, constants.MaxRequestBody)).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request body")
		return
	}

	targets, err := h.applyTargets(r.Context(), req)
	if err != nil {
		h.writeError(w, "resolve apply targets", err)
		return
	}

	results := make([]PageResult, 0, len(targets))
	for _, pageID := range targets {
		result, err := h.commands.ApplyLiveTheme(r.Context(), pageID, req.Theme)
		if err != nil {
			h.logger.Warn().Err(err).Str("page_id", string(pageID)).Msg("live theme not delivered")
			results = append(results, PageResult{Page: entity.PageInfo{ID: pageID}, Error: err.Error()})
			continue
		}
		results = append(results, toPageResult(result))
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *Handler) applyTargets(ctx context.Context, req ApplyRequest) ([]entity.PageID, error) {
	switch {
	case req.PageID != "":
		return []entity.PageID{req.PageID}, nil
	case req.Host != "":
		host := domainurl.NormalizeHost(req.Host)
		pages, err := h.directory.Pages(ctx)
		if err != nil {
			return nil, err
		}
		var ids []entity.PageID
		for _, p := range pages {
			if p.Host == host {
				ids = append(ids, p.ID)
			}
		}
		return ids, nil
	default:
		page, err := h.directory.FocusedPage(ctx)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return nil, port.ErrNoFocusedPage
		}
		return []entity.PageID{page.ID}, nil
	}
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("op", op).Msg("control request failed")
	} else {
		h.logger.Debug().Err(err).Str("op", op).Msg("control request rejected")
	}
	writeProblem(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, port.ErrNoFocusedPage):
		return http.StatusNotFound
	case errors.Is(err, port.ErrInternalPage):
		return http.StatusConflict
	case errors.Is(err, port.ErrNoReceiver):
		return http.StatusServiceUnavailable
	case errors.Is(err, usecase.ErrInvalidSettings):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func toPageResult(result *usecase.DeliveryResult) PageResult {
	out := PageResult{Page: result.Page}
	if result.Reply != nil {
		out.Enabled = result.Reply.Enabled
		out.OK = result.Reply.OK
		out.Theme = result.Reply.Theme
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", constants.ContentTypeProblem)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Problem{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}
