package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/domain"
	"findbar/internal/ui/input/types"
	"findbar/internal/ui/keymap"
)

// SettingsMode drives the visibility panel. Rows follow domain.VisibilityGroups.
type SettingsMode struct {
	keys keymap.KeyMap
}

func NewSettingsMode(keys keymap.KeyMap) *SettingsMode {
	return &SettingsMode{keys: keys}
}

func (m *SettingsMode) Name() string {
	return "settings"
}

func (m *SettingsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SettingsMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseSettingsAction{}}
}

func (m *SettingsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	toggle := func(g domain.VisibilityGroup) ([]types.Action, bool) {
		return []types.Action{types.ToggleVisibilityAction{Group: g}}, true
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Close):
		return []types.Action{types.PreviousModeAction{}}, true

	case key.Matches(msg, m.keys.Up), msg.String() == "k":
		return []types.Action{types.MoveSettingsRowAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Down), msg.String() == "j":
		return []types.Action{types.MoveSettingsRowAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.ToggleRow):
		row := ctx.SettingsRow()
		if row < 0 || row >= len(domain.VisibilityGroups) {
			return nil, true
		}
		return toggle(domain.VisibilityGroups[row])

	case key.Matches(msg, m.keys.ToggleFiles):
		return toggle(domain.GroupFiles)
	case key.Matches(msg, m.keys.TogglePeople):
		return toggle(domain.GroupPeople)
	case key.Matches(msg, m.keys.ToggleChats):
		return toggle(domain.GroupChats)
	case key.Matches(msg, m.keys.ToggleLists):
		return toggle(domain.GroupLists)

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, true
}
