package stylesheet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	got := Render([]entity.ThemeVariable{
		{Name: "--dme-bg", Value: "#121212"},
		{Name: "--dme-contrast", Value: "1.05"},
	})
	want := "html[data-dme=\"on\"] {\n  --dme-bg: #121212;\n  --dme-contrast: 1.05;\n}\n"
	assert.Equal(t, want, got)
}

func TestFileSurface_ShowHide(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "styles")
	s := NewFileSurface(dir, "tab-1")

	require.NoError(t, s.Show(ctx, entity.DefaultTheme().Variables()))
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "--dme-font: system-ui;")
	assert.Contains(t, string(data), "--dme-brightness: 1;")

	theme := entity.DefaultTheme()
	theme.Background = "#000000"
	require.NoError(t, s.Show(ctx, theme.Variables()))
	data, err = os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "--dme-bg: #000000;")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, s.Hide(ctx))
	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, s.Hide(ctx))
}

func TestFileSurface_PathStaysInDir(t *testing.T) {
	s := NewFileSurface("/tmp/dme", "../../etc/passwd")
	assert.Equal(t, "/tmp/dme/_2e_2e_2f_2e_2e_2fetc_2fpasswd.css", s.Path())
}

func TestFileName_DistinctIDsGetDistinctFiles(t *testing.T) {
	ids := []entity.PageID{"a.b", "a_b", "a_2eb", "a-b", "ab", "tab-1", "", "_", "\u00e9"}
	seen := make(map[string]entity.PageID, len(ids))
	for _, id := range ids {
		name := fileName(id)
		prev, dup := seen[name]
		assert.False(t, dup, "%q and %q share %s", prev, id, name)
		seen[name] = id
		assert.Equal(t, name, filepath.Base(name))
	}
	assert.Equal(t, "tab-1.css", fileName("tab-1"))
}

func TestFileSurface_HideLeavesOtherPages(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dotted := NewFileSurface(dir, "a.b")
	underscored := NewFileSurface(dir, "a_b")

	require.NoError(t, dotted.Show(ctx, entity.DefaultTheme().Variables()))
	require.NoError(t, underscored.Show(ctx, entity.DefaultTheme().Variables()))
	require.NoError(t, dotted.Hide(ctx))

	assert.NoFileExists(t, dotted.Path())
	assert.FileExists(t, underscored.Path())
}
