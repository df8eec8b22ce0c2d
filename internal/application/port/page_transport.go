package port

import (
	"context"
	"errors"

	"github.com/bnema/duskmode/internal/domain/entity"
)

// ErrNoReceiver is returned when no controller is listening on the target page.
var ErrNoReceiver = errors.New("no receiver on page")

// ErrInternalPage is returned when a command targets a page that is never overridden.
var ErrInternalPage = errors.New("internal page")

// ErrNoFocusedPage is returned when no page currently holds focus.
var ErrNoFocusedPage = errors.New("no focused page")

// PageTransport delivers a command to the controller of one page.
type PageTransport interface {
	Send(ctx context.Context, pageID entity.PageID, cmd PageCommand) (*PageReply, error)
}

// PageProvisioner installs a fresh controller on a page that has none.
type PageProvisioner interface {
	Provision(ctx context.Context, pageID entity.PageID) error
}

// PageDirectory lists the pages currently known to the transport.
type PageDirectory interface {
	// FocusedPage returns the most recently focused page, or nil when none is open.
	FocusedPage(ctx context.Context) (*entity.PageInfo, error)
	// Page returns the page with id, or nil when it is unknown.
	Page(ctx context.Context, id entity.PageID) (*entity.PageInfo, error)
	Pages(ctx context.Context) ([]entity.PageInfo, error)
}
