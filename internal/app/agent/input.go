package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/logging"
)

// EventKind is a page lifecycle event read from the browser integration.
type EventKind string

const (
	EventOpen     EventKind = "open"
	EventNavigate EventKind = "navigate"
	EventFocus    EventKind = "focus"
	EventClose    EventKind = "close"
)

// ErrMalformedEvent is returned for an input line that is not an event.
var ErrMalformedEvent = errors.New("malformed page event")

// Event is one parsed input line.
type Event struct {
	Kind   EventKind
	PageID entity.PageID
	URL    string
}

// ParseEvent parses "open <id> <url>", "navigate <id> <url>", "focus <id>"
// or "close <id>".
func ParseEvent(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Event{}, fmt.Errorf("%w: %q", ErrMalformedEvent, line)
	}

	ev := Event{Kind: EventKind(strings.ToLower(fields[0])), PageID: entity.PageID(fields[1])}
	switch ev.Kind {
	case EventOpen, EventNavigate:
		if len(fields) != 3 {
			return Event{}, fmt.Errorf("%w: %s needs <id> <url>", ErrMalformedEvent, ev.Kind)
		}
		ev.URL = fields[2]
	case EventFocus, EventClose:
		if len(fields) != 2 {
			return Event{}, fmt.Errorf("%w: %s needs <id>", ErrMalformedEvent, ev.Kind)
		}
	default:
		return Event{}, fmt.Errorf("%w: unknown event %q", ErrMalformedEvent, fields[0])
	}
	return ev, nil
}

// Apply runs ev against the agent.
func (a *Agent) Apply(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventOpen:
		return a.Open(ctx, ev.PageID, ev.URL)
	case EventNavigate:
		return a.Navigate(ctx, ev.PageID, ev.URL)
	case EventFocus:
		return a.Focus(ctx, ev.PageID)
	case EventClose:
		return a.Close(ctx, ev.PageID)
	default:
		return fmt.Errorf("%w: unknown event %q", ErrMalformedEvent, ev.Kind)
	}
}

// ReadEvents applies one event per line of r until r is exhausted or ctx is
// canceled. Blank lines and lines starting with '#' are skipped; bad lines
// are logged and skipped.
func (a *Agent) ReadEvents(ctx context.Context, r io.Reader) error {
	log := logging.FromContext(ctx)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ev, err := ParseEvent(line)
		if err != nil {
			log.Warn().Err(err).Msg("skipping input line")
			continue
		}
		if err := a.Apply(ctx, ev); err != nil {
			log.Warn().Err(err).Str("event", string(ev.Kind)).Str("page_id", string(ev.PageID)).Msg("page event failed")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read page events: %w", err)
	}
	return nil
}
