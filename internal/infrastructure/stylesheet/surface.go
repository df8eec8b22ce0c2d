// Package stylesheet renders a page's override as a user stylesheet file that
// the page host loads.
package stylesheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Selector scopes every variable to pages whose root carries the marker.
const Selector = `html[data-dme="on"]`

// FileSurface writes <dir>/<page>.css while the override is on and removes
// it when the override is off.
type FileSurface struct {
	dir    string
	pageID entity.PageID
}

// Compile-time interface check.
var _ port.RenderSurface = (*FileSurface)(nil)

// NewFileSurface creates a surface for one page.
func NewFileSurface(dir string, pageID entity.PageID) *FileSurface {
	return &FileSurface{dir: dir, pageID: pageID}
}

// Path returns the stylesheet location.
func (s *FileSurface) Path() string {
	return filepath.Join(s.dir, fileName(s.pageID))
}

// Show writes the stylesheet atomically.
func (s *FileSurface) Show(ctx context.Context, vars []entity.ThemeVariable) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create stylesheet directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".dme-*.css")
	if err != nil {
		return fmt.Errorf("failed to create stylesheet: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(Render(vars)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		return fmt.Errorf("failed to install stylesheet: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", s.Path()).Msg("stylesheet written")
	return nil
}

// Hide removes the stylesheet.
func (s *FileSurface) Hide(ctx context.Context) error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove stylesheet: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("path", s.Path()).Msg("stylesheet removed")
	return nil
}

// Render formats vars as a custom-property block.
func Render(vars []entity.ThemeVariable) string {
	var b strings.Builder
	b.WriteString(Selector)
	b.WriteString(" {\n")
	for _, v := range vars {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

// fileName maps a page id to a file inside dir. Bytes outside [A-Za-z0-9-]
// are written as _xx, so distinct ids never share a file.
func fileName(id entity.PageID) string {
	if id == "" {
		return "_.css"
	}
	var b strings.Builder
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "_%02x", c)
		}
	}
	return b.String() + ".css"
}
