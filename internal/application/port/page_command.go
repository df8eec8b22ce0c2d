package port

import "github.com/bnema/duskmode/internal/domain/entity"

// PageCommandType names a request understood by a page controller.
type PageCommandType string

const (
	CommandToggle     PageCommandType = "TOGGLE"
	CommandApplyTheme PageCommandType = "APPLY_THEME"
	CommandGetState   PageCommandType = "GET_STATE"
)

// PageCommand is a request addressed to one page.
// Theme is only read for APPLY_THEME and may be partial.
type PageCommand struct {
	Type  PageCommandType    `json:"type"`
	Theme *entity.ThemePatch `json:"theme,omitempty"`
}

// PageReply is the page's answer. Which fields are set depends on the command:
// TOGGLE sets Enabled, APPLY_THEME sets OK, GET_STATE sets Enabled and Theme.
type PageReply struct {
	Enabled *bool         `json:"enabled,omitempty"`
	OK      bool          `json:"ok,omitempty"`
	Theme   *entity.Theme `json:"theme,omitempty"`
}

// IsKnown reports whether t is part of the protocol.
func (t PageCommandType) IsKnown() bool {
	switch t {
	case CommandToggle, CommandApplyTheme, CommandGetState:
		return true
	}
	return false
}
