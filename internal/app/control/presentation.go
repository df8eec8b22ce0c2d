package control

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/application/usecase"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/logging"
)

// PageResolver decides a page's presentation from the current settings.
type PageResolver interface {
	Execute(ctx context.Context, rawURL string) (*usecase.PageDecision, error)
}

// PresentationController owns the override state of one page.
// Operations run one at a time in call order.
type PresentationController struct {
	mu       sync.Mutex
	pageID   entity.PageID
	url      string
	active   bool
	theme    *entity.Theme
	surface  port.RenderSurface
	resolver PageResolver
}

// NewPresentationController creates an inactive controller for a page.
func NewPresentationController(pageID entity.PageID, rawURL string, surface port.RenderSurface, resolver PageResolver) *PresentationController {
	return &PresentationController{
		pageID:   pageID,
		url:      rawURL,
		surface:  surface,
		resolver: resolver,
	}
}

// PageID returns the page this controller belongs to.
func (c *PresentationController) PageID() entity.PageID {
	return c.pageID
}

// URL returns the page's current URL.
func (c *PresentationController) URL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.url
}

// State returns a snapshot of the current presentation.
func (c *PresentationController) State() entity.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Enable turns the override on with theme. Enabling an active page refreshes
// its published variables.
func (c *PresentationController) Enable(ctx context.Context, theme entity.Theme) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enable(ctx, theme)
}

// ApplyTheme forces the override on with theme.
func (c *PresentationController) ApplyTheme(ctx context.Context, theme entity.Theme) error {
	return c.Enable(ctx, theme)
}

// Disable turns the override off. Disabling an inactive page does nothing.
func (c *PresentationController) Disable(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disable(ctx)
}

// Toggle flips the override and returns the resulting state. When turning on,
// the theme is resolved from the settings as they are now.
func (c *PresentationController) Toggle(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		if err := c.disable(ctx); err != nil {
			return c.active, err
		}
		return false, nil
	}

	d, err := c.resolver.Execute(ctx, c.url)
	if err != nil {
		return false, fmt.Errorf("failed to resolve theme: %w", err)
	}
	if err := c.enable(ctx, d.Theme); err != nil {
		return false, err
	}
	return true, nil
}

// Start runs the page startup sequence: decide from the current settings and
// enable the override if the decision is positive. On error the page stays
// inactive.
func (c *PresentationController) Start(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(ctx)
}

// Refresh re-runs the startup decision after the page navigated to rawURL.
// A negative decision turns an active override off.
func (c *PresentationController) Refresh(ctx context.Context, rawURL string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.url = rawURL
	return c.apply(ctx)
}

func (c *PresentationController) apply(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)

	d, err := c.resolver.Execute(ctx, c.url)
	if err != nil {
		log.Error().Err(err).Str("url", c.url).Msg("failed to decide page presentation")
		return c.active, fmt.Errorf("failed to resolve page: %w", err)
	}

	if !d.Active {
		if err := c.disable(ctx); err != nil {
			log.Error().Err(err).Msg("failed to remove override")
			return c.active, err
		}
		return false, nil
	}

	if err := c.enable(ctx, d.Theme); err != nil {
		log.Error().Err(err).Msg("failed to apply override")
		return c.active, err
	}
	return true, nil
}

func (c *PresentationController) enable(ctx context.Context, theme entity.Theme) error {
	if err := c.surface.Show(ctx, theme.Variables()); err != nil {
		return fmt.Errorf("failed to show override: %w", err)
	}
	c.active = true
	c.theme = &theme

	logging.FromContext(ctx).Debug().Str("page_id", string(c.pageID)).Msg("override enabled")
	return nil
}

func (c *PresentationController) disable(ctx context.Context) error {
	if !c.active {
		return nil
	}
	if err := c.surface.Hide(ctx); err != nil {
		return fmt.Errorf("failed to hide override: %w", err)
	}
	c.active = false
	c.theme = nil

	logging.FromContext(ctx).Debug().Str("page_id", string(c.pageID)).Msg("override disabled")
	return nil
}

func (c *PresentationController) snapshot() entity.PageState {
	state := entity.PageState{Active: c.active}
	if c.theme != nil {
		t := *c.theme
		state.Theme = &t
	}
	return state
}
