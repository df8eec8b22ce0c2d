package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/duskmode/internal/app/api"
	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/application/port/mocks"
	"github.com/bnema/duskmode/internal/application/usecase"
	"github.com/bnema/duskmode/internal/domain/entity"
)

// pageStates answers commands from an in-memory on/off table.
type pageStates struct {
	on      map[entity.PageID]bool
	applied map[entity.PageID]*entity.ThemePatch
	toggled []entity.PageID
}

func newPageStates(on map[entity.PageID]bool) *pageStates {
	return &pageStates{on: on, applied: make(map[entity.PageID]*entity.ThemePatch)}
}

func (p *pageStates) reply(id entity.PageID) *usecase.DeliveryResult {
	enabled := p.on[id]
	return &usecase.DeliveryResult{Page: entity.PageInfo{ID: id}, Reply: &port.PageReply{Enabled: &enabled, OK: true}}
}

func (p *pageStates) ToggleFocused(context.Context) (*usecase.DeliveryResult, error) {
	return nil, port.ErrNoFocusedPage
}

func (p *pageStates) Toggle(_ context.Context, id entity.PageID) (*usecase.DeliveryResult, error) {
	p.on[id] = !p.on[id]
	p.toggled = append(p.toggled, id)
	return p.reply(id), nil
}

func (p *pageStates) State(_ context.Context, id entity.PageID) (*usecase.DeliveryResult, error) {
	return p.reply(id), nil
}

func (p *pageStates) ApplyLiveTheme(_ context.Context, id entity.PageID, patch *entity.ThemePatch) (*usecase.DeliveryResult, error) {
	p.on[id] = true
	p.applied[id] = patch
	return p.reply(id), nil
}

var syncPagesFixture = []entity.PageInfo{
	{ID: "p1", URL: "https://www.example.com/a", Host: "example.com"},
	{ID: "p2", URL: "https://other.org/", Host: "other.org"},
	{ID: "p3", URL: "https://other.org/b", Host: "other.org"},
	{ID: "p4", URL: "about:blank"},
}

func TestSyncOpenPages(t *testing.T) {
	states := newPageStates(map[entity.PageID]bool{"p2": true})
	dir := mocks.NewMockPageDirectory(t)
	dir.EXPECT().Pages(mock.Anything).Return(syncPagesFixture, nil)

	app, _ := newTestApp(t, startAPI(t, states, dir))
	ctx := app.Ctx()

	bg := "#000000"
	_, err := app.SitesUC.Save(ctx, "example.com", boolPtr(true), &entity.ThemePatch{Background: &bg})
	require.NoError(t, err)

	results, err := app.SyncOpenPages(ctx, "")
	require.NoError(t, err)
	require.Len(t, results, 3, "pages without a host are skipped")

	byID := make(map[entity.PageID]SyncResult, len(results))
	for _, r := range results {
		assert.NoError(t, r.Err, r.Page.ID)
		byID[r.Page.ID] = r
	}

	assert.True(t, byID["p1"].Active)
	assert.True(t, byID["p1"].Changed)
	require.NotNil(t, states.applied["p1"])
	assert.Equal(t, "#000000", *states.applied["p1"].Background)

	assert.False(t, byID["p2"].Active)
	assert.True(t, byID["p2"].Changed, "page that should be off is toggled")
	assert.False(t, byID["p3"].Changed, "page already off is left alone")
	assert.Equal(t, []entity.PageID{"p2"}, states.toggled)
}

func TestSyncOpenPages_HostFilter(t *testing.T) {
	states := newPageStates(map[entity.PageID]bool{"p2": true})
	dir := mocks.NewMockPageDirectory(t)
	dir.EXPECT().Pages(mock.Anything).Return(syncPagesFixture, nil)

	app, _ := newTestApp(t, startAPI(t, states, dir))

	results, err := app.SyncOpenPages(app.Ctx(), "example.com")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.PageID("p1"), results[0].Page.ID)
	assert.False(t, results[0].Active, "global default is off")
	assert.Empty(t, states.toggled)
}

func TestSyncOpenPages_ServerDown(t *testing.T) {
	app, _ := newTestApp(t, "127.0.0.1:1")

	_, err := app.SyncOpenPages(app.Ctx(), "")
	assert.ErrorIs(t, err, api.ErrServerUnreachable)
}

func boolPtr(b bool) *bool { return &b }
