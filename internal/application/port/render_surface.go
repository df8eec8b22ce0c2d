package port

import (
	"context"

	"github.com/bnema/duskmode/internal/domain/entity"
)

// RenderSurface is where one page's override becomes visible.
type RenderSurface interface {
	// Show turns the override on and publishes vars. Calling it again replaces vars.
	Show(ctx context.Context, vars []entity.ThemeVariable) error
	// Hide turns the override off. Hiding a hidden surface is not an error.
	Hide(ctx context.Context) error
}
