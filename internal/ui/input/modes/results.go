package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/ui/input/types"
	"findbar/internal/ui/keymap"
)

// ResultsMode moves the highlight through the result rows and across tabs
type ResultsMode struct {
	keys keymap.KeyMap
}

func NewResultsMode(keys keymap.KeyMap) *ResultsMode {
	return &ResultsMode{keys: keys}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Up), msg.String() == "k":
		if ctx.Cursor() <= 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true
		}
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Down), msg.String() == "j":
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.NextTab), msg.String() == "l":
		return []types.Action{types.CycleTabAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.PrevTab), msg.String() == "h":
		return []types.Action{types.CycleTabAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Open):
		return []types.Action{types.OpenItemAction{}}, true

	case key.Matches(msg, m.keys.Clear):
		return []types.Action{
			types.ClearQueryAction{},
			types.ChangeModeAction{Mode: types.ModeQuery},
		}, true

	case key.Matches(msg, m.keys.Settings), msg.String() == "s":
		return []types.Action{
			types.OpenSettingsAction{},
			types.ChangeModeAction{Mode: types.ModeSettings},
		}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true
	}

	// Any other printable key goes back to the search box and is typed there
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace || msg.Type == tea.KeySpace {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, false
	}

	return nil, true
}
