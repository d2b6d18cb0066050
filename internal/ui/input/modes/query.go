package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/ui/input/types"
	"findbar/internal/ui/keymap"
)

// QueryMode is the default mode. Keys it does not consume are edits to the
// search box.
type QueryMode struct {
	keys keymap.KeyMap
}

func NewQueryMode(keys keymap.KeyMap) *QueryMode {
	return &QueryMode{keys: keys}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearQueryAction{}}, true

	case key.Matches(msg, m.keys.Settings):
		return []types.Action{
			types.OpenSettingsAction{},
			types.ChangeModeAction{Mode: types.ModeSettings},
		}, true

	case msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab:
		// left/right belong to the text cursor here
		if ctx.Query() == "" {
			return nil, true
		}
		delta := 1
		if msg.Type == tea.KeyShiftTab {
			delta = -1
		}
		return []types.Action{types.CycleTabAction{Delta: delta}}, true

	case key.Matches(msg, m.keys.Down):
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true

	case key.Matches(msg, m.keys.Up):
		return nil, true

	case key.Matches(msg, m.keys.Open):
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.OpenItemAction{}}, true

	case key.Matches(msg, m.keys.Browse):
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true
	}

	return nil, false
}
