package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/duskmode/internal/application/usecase"
	"github.com/bnema/duskmode/internal/domain/entity"
	repomocks "github.com/bnema/duskmode/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManageGlobalSettingsUseCase_EnsureDefaults_WritesSeedOnce(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	seed := entity.DefaultGlobalSettings()

	repo.EXPECT().InitGlobal(mock.Anything, seed).Return(true, nil).Once()
	repo.EXPECT().InitGlobal(mock.Anything, seed).Return(false, nil).Once()

	uc := usecase.NewManageGlobalSettingsUseCase(repo, seed)

	created, err := uc.EnsureDefaults(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureDefaults(ctx)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestManageGlobalSettingsUseCase_Get_ReturnsSeedWhenEmpty(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	seed := entity.DefaultGlobalSettings()
	seed.EnabledByDefault = true

	repo.EXPECT().GetGlobal(mock.Anything).Return(nil, nil)

	uc := usecase.NewManageGlobalSettingsUseCase(repo, seed)
	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, got)
}

func TestManageGlobalSettingsUseCase_Save_RejectsMalformedFields(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	bad := entity.DefaultGlobalSettings()
	bad.Theme.Background = "black"
	bad.Schedule.Start = "25:00"

	uc := usecase.NewManageGlobalSettingsUseCase(repo, entity.DefaultGlobalSettings())
	err := uc.Save(ctx, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrInvalidSettings))
	assert.Contains(t, err.Error(), "theme.bg")
	assert.Contains(t, err.Error(), "schedule.start")
}

func TestManageGlobalSettingsUseCase_Update_AppliesAndSaves(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	stored := entity.DefaultGlobalSettings()

	repo.EXPECT().GetGlobal(mock.Anything).Return(&stored, nil)
	repo.EXPECT().SaveGlobal(mock.Anything, mock.MatchedBy(func(g entity.GlobalSettings) bool {
		return g.EnabledByDefault && g.Theme.Font == "serif"
	})).Return(nil)

	uc := usecase.NewManageGlobalSettingsUseCase(repo, entity.DefaultGlobalSettings())
	got, err := uc.Update(ctx, func(g *entity.GlobalSettings) error {
		g.EnabledByDefault = true
		g.Theme.Font = "serif"
		return nil
	})
	require.NoError(t, err)
	assert.True(t, got.EnabledByDefault)
}

func TestManageGlobalSettingsUseCase_Update_FailedEditSavesNothing(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	stored := entity.DefaultGlobalSettings()

	repo.EXPECT().GetGlobal(mock.Anything).Return(&stored, nil)

	uc := usecase.NewManageGlobalSettingsUseCase(repo, entity.DefaultGlobalSettings())
	_, err := uc.Update(ctx, func(g *entity.GlobalSettings) error {
		g.EnabledByDefault = true
		return g.Set("colour", "red")
	})
	assert.ErrorIs(t, err, entity.ErrUnknownSettingKey)
}

func TestManageGlobalSettingsUseCase_Reset_WritesSeed(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	seed := entity.DefaultGlobalSettings()

	repo.EXPECT().SaveGlobal(mock.Anything, seed).Return(errors.New("disk full")).Once()

	uc := usecase.NewManageGlobalSettingsUseCase(repo, seed)
	err := uc.Reset(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reset global settings")
}
