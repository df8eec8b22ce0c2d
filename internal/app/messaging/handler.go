package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/logging"
)

// ErrUnknownCommand is returned for a command type outside the protocol.
var ErrUnknownCommand = errors.New("unknown command")

// ErrMalformedCommand is returned when a payload cannot be decoded.
var ErrMalformedCommand = errors.New("malformed command")

// Controller is the page-side state machine a handler drives.
type Controller interface {
	Toggle(ctx context.Context) (bool, error)
	ApplyTheme(ctx context.Context, theme entity.Theme) error
	State() entity.PageState
}

// Handler answers commands addressed to one page.
type Handler struct {
	controller Controller
}

// NewHandler creates a handler for controller.
func NewHandler(controller Controller) *Handler {
	return &Handler{controller: controller}
}

// Handle executes cmd against the page controller.
func (h *Handler) Handle(ctx context.Context, cmd port.PageCommand) (*port.PageReply, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("command", string(cmd.Type)).Msg("handling page command")

	switch cmd.Type {
	case port.CommandToggle:
		enabled, err := h.controller.Toggle(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to toggle: %w", err)
		}
		return &port.PageReply{Enabled: &enabled}, nil

	case port.CommandApplyTheme:
		// Partial payloads are completed from the compiled-in defaults.
		theme := entity.ResolveTheme(entity.DefaultTheme(), cmd.Theme.Sanitize())
		if err := h.controller.ApplyTheme(ctx, theme); err != nil {
			return nil, fmt.Errorf("failed to apply theme: %w", err)
		}
		return &port.PageReply{OK: true}, nil

	case port.CommandGetState:
		state := h.controller.State()
		return &port.PageReply{Enabled: &state.Active, Theme: state.Theme}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}
}

// ParseCommand decodes a command payload. The type is matched case-insensitively
// and a theme sent as a JSON string is unwrapped.
func ParseCommand(payload []byte) (port.PageCommand, error) {
	var cmd port.PageCommand
	if err := json.Unmarshal(payload, &cmd); err != nil {
		normalized, normErr := normalizeThemePayload(payload)
		if normErr != nil {
			return port.PageCommand{}, fmt.Errorf("%w: %v", ErrMalformedCommand, err)
		}
		if err := json.Unmarshal(normalized, &cmd); err != nil {
			return port.PageCommand{}, fmt.Errorf("%w: %v", ErrMalformedCommand, err)
		}
	}

	cmd.Type = port.PageCommandType(strings.ToUpper(strings.TrimSpace(string(cmd.Type))))
	if !cmd.Type.IsKnown() {
		return port.PageCommand{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}
	return cmd, nil
}

func normalizeThemePayload(data []byte) ([]byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	rawTheme, ok := raw["theme"]
	if !ok {
		return nil, fmt.Errorf("theme missing in payload")
	}
	trimmed := bytes.TrimSpace(rawTheme)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return nil, fmt.Errorf("theme is not an encoded string")
	}

	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return nil, err
	}
	raw["theme"] = json.RawMessage(inner)

	return json.Marshal(raw)
}
