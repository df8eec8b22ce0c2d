package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/duskmode/internal/application/port"
	portmocks "github.com/bnema/duskmode/internal/application/port/mocks"
	"github.com/bnema/duskmode/internal/application/usecase"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/domain/repository"
	repomocks "github.com/bnema/duskmode/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryFixture struct {
	transport   *portmocks.MockPageTransport
	provisioner *portmocks.MockPageProvisioner
	directory   *portmocks.MockPageDirectory
	repo        *repomocks.MockSettingsRepository
	uc          *usecase.DeliverPageCommandUseCase
}

func newDeliveryFixture(t *testing.T) *deliveryFixture {
	f := &deliveryFixture{
		transport:   portmocks.NewMockPageTransport(t),
		provisioner: portmocks.NewMockPageProvisioner(t),
		directory:   portmocks.NewMockPageDirectory(t),
		repo:        repomocks.NewMockSettingsRepository(t),
	}
	f.uc = usecase.NewDeliverPageCommandUseCase(
		f.transport, f.provisioner, f.directory, f.repo, entity.DefaultGlobalSettings(), nil,
	)
	return f
}

var toggle = port.PageCommand{Type: port.CommandToggle}

func TestDeliverPageCommandUseCase_Send_Delivered(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	f.transport.EXPECT().Send(mock.Anything, entity.PageID("p1"), toggle).
		Return(&port.PageReply{Enabled: boolPtr(true)}, nil).Once()

	reply, err := f.uc.Send(ctx, "p1", toggle)
	require.NoError(t, err)
	assert.True(t, *reply.Enabled)
}

func TestDeliverPageCommandUseCase_Send_ProvisionsAndRetriesOnce(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	f.transport.EXPECT().Send(mock.Anything, entity.PageID("p1"), toggle).
		Return(nil, port.ErrNoReceiver).Once()
	f.provisioner.EXPECT().Provision(mock.Anything, entity.PageID("p1")).Return(nil).Once()
	f.transport.EXPECT().Send(mock.Anything, entity.PageID("p1"), toggle).
		Return(&port.PageReply{Enabled: boolPtr(true)}, nil).Once()

	reply, err := f.uc.Send(ctx, "p1", toggle)
	require.NoError(t, err)
	assert.True(t, *reply.Enabled)
}

func TestDeliverPageCommandUseCase_Send_AbandonsAfterSecondFailure(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	f.transport.EXPECT().Send(mock.Anything, entity.PageID("p1"), toggle).
		Return(nil, port.ErrNoReceiver).Twice()
	f.provisioner.EXPECT().Provision(mock.Anything, entity.PageID("p1")).Return(nil).Once()

	_, err := f.uc.Send(ctx, "p1", toggle)
	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrNoReceiver))
}

func TestDeliverPageCommandUseCase_Send_OtherErrorsAreNotRetried(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	f.transport.EXPECT().Send(mock.Anything, entity.PageID("p1"), toggle).
		Return(nil, errors.New("connection reset")).Once()

	_, err := f.uc.Send(ctx, "p1", toggle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestDeliverPageCommandUseCase_Send_ProvisionFailure(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	f.transport.EXPECT().Send(mock.Anything, entity.PageID("p1"), toggle).
		Return(nil, port.ErrNoReceiver).Once()
	f.provisioner.EXPECT().Provision(mock.Anything, entity.PageID("p1")).
		Return(errors.New("agent gone")).Once()

	_, err := f.uc.Send(ctx, "p1", toggle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to provision page")
}

func TestDeliverPageCommandUseCase_ToggleFocused(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	f.directory.EXPECT().FocusedPage(mock.Anything).
		Return(&entity.PageInfo{ID: "p2", URL: "https://example.com"}, nil)
	f.transport.EXPECT().Send(mock.Anything, entity.PageID("p2"), toggle).
		Return(&port.PageReply{Enabled: boolPtr(false)}, nil)

	res, err := f.uc.ToggleFocused(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PageID("p2"), res.Page.ID)
	assert.False(t, *res.Reply.Enabled)
}

func TestDeliverPageCommandUseCase_ToggleFocused_SkipsInternalPages(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	f.directory.EXPECT().FocusedPage(mock.Anything).
		Return(&entity.PageInfo{ID: "p3", URL: "chrome://extensions"}, nil)

	_, err := f.uc.ToggleFocused(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrInternalPage))
}

func TestDeliverPageCommandUseCase_ToggleFocused_NoPage(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	f.directory.EXPECT().FocusedPage(mock.Anything).Return(nil, nil)

	_, err := f.uc.ToggleFocused(ctx)
	assert.True(t, errors.Is(err, port.ErrNoFocusedPage))
}

func TestDeliverPageCommandUseCase_ApplyLiveTheme_MergesGlobalTheme(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	global := entity.DefaultGlobalSettings()
	global.Theme.Font = "serif"

	f.directory.EXPECT().Page(mock.Anything, entity.PageID("p1")).
		Return(&entity.PageInfo{ID: "p1", URL: "https://example.com"}, nil)
	f.repo.EXPECT().GetGlobal(mock.Anything).Return(&global, nil)

	var sent port.PageCommand
	f.transport.EXPECT().Send(mock.Anything, entity.PageID("p1"), mock.Anything).
		RunAndReturn(func(_ context.Context, _ entity.PageID, cmd port.PageCommand) (*port.PageReply, error) {
			sent = cmd
			return &port.PageReply{OK: true}, nil
		})

	res, err := f.uc.ApplyLiveTheme(ctx, "p1", &entity.ThemePatch{Background: strPtr("#222222")})
	require.NoError(t, err)
	assert.True(t, res.Reply.OK)

	require.Equal(t, port.CommandApplyTheme, sent.Type)
	got := entity.ResolveTheme(entity.DefaultTheme(), sent.Theme)
	assert.Equal(t, "#222222", got.Background)
	assert.Equal(t, "serif", got.Font)
}

func TestDeliverPageCommandUseCase_ApplyLiveTheme_StoreUnavailableUsesDefaults(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	f.directory.EXPECT().Page(mock.Anything, entity.PageID("p1")).
		Return(&entity.PageInfo{ID: "p1", URL: "https://example.com"}, nil)
	f.repo.EXPECT().GetGlobal(mock.Anything).
		Return(nil, fmt.Errorf("open: %w", repository.ErrStoreUnavailable))
	f.transport.EXPECT().Send(mock.Anything, entity.PageID("p1"), port.PageCommand{
		Type:  port.CommandApplyTheme,
		Theme: entity.DefaultTheme().Patch(),
	}).Return(&port.PageReply{OK: true}, nil)

	_, err := f.uc.ApplyLiveTheme(ctx, "p1", nil)
	require.NoError(t, err)
}

func TestDeliverPageCommandUseCase_State_UnknownPage(t *testing.T) {
	ctx := testContext()
	f := newDeliveryFixture(t)

	f.directory.EXPECT().Page(mock.Anything, entity.PageID("gone")).Return(nil, nil)

	_, err := f.uc.State(ctx, "gone")
	assert.True(t, errors.Is(err, port.ErrNoReceiver))
}
