package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
	"github.com/bnema/duskmode/internal/domain/repository"
	domainurl "github.com/bnema/duskmode/internal/domain/url"
	"github.com/bnema/duskmode/internal/logging"
)

// DeliveryResult reports which page answered a command.
type DeliveryResult struct {
	Page  entity.PageInfo
	Reply *port.PageReply
}

// DeliverPageCommandUseCase sends commands from the editor or the hotkey to pages.
type DeliverPageCommandUseCase struct {
	transport       port.PageTransport
	provisioner     port.PageProvisioner
	directory       port.PageDirectory
	settingsRepo    repository.SettingsRepository
	defaults        entity.GlobalSettings
	internalSchemes []string
}

// NewDeliverPageCommandUseCase creates the page command sender.
func NewDeliverPageCommandUseCase(
	transport port.PageTransport,
	provisioner port.PageProvisioner,
	directory port.PageDirectory,
	settingsRepo repository.SettingsRepository,
	defaults entity.GlobalSettings,
	internalSchemes []string,
) *DeliverPageCommandUseCase {
	if internalSchemes == nil {
		internalSchemes = domainurl.DefaultInternalSchemes
	}
	return &DeliverPageCommandUseCase{
		transport:       transport,
		provisioner:     provisioner,
		directory:       directory,
		settingsRepo:    settingsRepo,
		defaults:        defaults.Sanitize(),
		internalSchemes: internalSchemes,
	}
}

// Send delivers cmd to a page. If the page has no controller, one is
// provisioned and the command is sent exactly once more.
func (uc *DeliverPageCommandUseCase) Send(ctx context.Context, pageID entity.PageID, cmd port.PageCommand) (*port.PageReply, error) {
	log := logging.FromContext(ctx).With().
		Str("page_id", string(pageID)).
		Str("command", string(cmd.Type)).
		Logger()

	reply, err := uc.transport.Send(ctx, pageID, cmd)
	if err == nil {
		return reply, nil
	}
	if !errors.Is(err, port.ErrNoReceiver) {
		return nil, fmt.Errorf("failed to send %s: %w", cmd.Type, err)
	}

	log.Debug().Msg("no receiver on page, provisioning")
	if err := uc.provisioner.Provision(ctx, pageID); err != nil {
		log.Warn().Err(err).Msg("failed to provision page")
		return nil, fmt.Errorf("failed to provision page: %w", err)
	}

	reply, err = uc.transport.Send(ctx, pageID, cmd)
	if err != nil {
		log.Warn().Err(err).Msg("command abandoned after retry")
		return nil, fmt.Errorf("failed to send %s after provisioning: %w", cmd.Type, err)
	}
	return reply, nil
}

// ToggleFocused flips the override on the focused page.
// Internal pages are never targeted.
func (uc *DeliverPageCommandUseCase) ToggleFocused(ctx context.Context) (*DeliveryResult, error) {
	page, err := uc.directory.FocusedPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get focused page: %w", err)
	}
	if page == nil {
		return nil, port.ErrNoFocusedPage
	}
	return uc.sendTo(ctx, page, port.PageCommand{Type: port.CommandToggle})
}

// Toggle flips the override on a specific page.
func (uc *DeliverPageCommandUseCase) Toggle(ctx context.Context, pageID entity.PageID) (*DeliveryResult, error) {
	page, err := uc.page(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return uc.sendTo(ctx, page, port.PageCommand{Type: port.CommandToggle})
}

// State asks a page for its current presentation.
func (uc *DeliverPageCommandUseCase) State(ctx context.Context, pageID entity.PageID) (*DeliveryResult, error) {
	page, err := uc.page(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return uc.sendTo(ctx, page, port.PageCommand{Type: port.CommandGetState})
}

// ApplyLiveTheme pushes the global theme merged with patch to a page,
// forcing its override on. Used right after the editor saves a site.
func (uc *DeliverPageCommandUseCase) ApplyLiveTheme(ctx context.Context, pageID entity.PageID, patch *entity.ThemePatch) (*DeliveryResult, error) {
	log := logging.FromContext(ctx)

	page, err := uc.page(ctx, pageID)
	if err != nil {
		return nil, err
	}

	global := uc.defaults
	stored, err := uc.settingsRepo.GetGlobal(ctx)
	switch {
	case err != nil && errors.Is(err, repository.ErrStoreUnavailable):
		log.Warn().Err(err).Msg("settings store unavailable, using default theme")
	case err != nil:
		return nil, fmt.Errorf("failed to get global settings: %w", err)
	case stored != nil:
		global = stored.Sanitize()
	}

	theme := entity.ResolveTheme(global.Theme, patch.Sanitize())
	return uc.sendTo(ctx, page, port.PageCommand{Type: port.CommandApplyTheme, Theme: theme.Patch()})
}

func (uc *DeliverPageCommandUseCase) page(ctx context.Context, pageID entity.PageID) (*entity.PageInfo, error) {
	page, err := uc.directory.Page(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	if page == nil {
		return nil, fmt.Errorf("page %s: %w", pageID, port.ErrNoReceiver)
	}
	return page, nil
}

func (uc *DeliverPageCommandUseCase) sendTo(ctx context.Context, page *entity.PageInfo, cmd port.PageCommand) (*DeliveryResult, error) {
	if domainurl.IsInternal(page.URL, uc.internalSchemes) {
		logging.FromContext(ctx).Debug().
			Str("page_id", string(page.ID)).
			Str("url", page.URL).
			Msg("internal page, command skipped")
		return nil, fmt.Errorf("page %s: %w", page.ID, port.ErrInternalPage)
	}

	reply, err := uc.Send(ctx, page.ID, cmd)
	if err != nil {
		return nil, err
	}
	return &DeliveryResult{Page: *page, Reply: reply}, nil
}
