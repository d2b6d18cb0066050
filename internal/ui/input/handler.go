package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/ui/input/modes"
	"findbar/internal/ui/input/types"
	"findbar/internal/ui/keymap"
	"findbar/internal/ui/views"
)

// Handler routes key messages to the active mode and owns the search box
type Handler struct {
	currentMode  types.Mode
	previousMode types.Mode
	modes        map[types.Mode]types.ModeHandler
	textInput    *textinput.Model
}

func New(keys keymap.KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the view
	ti.Placeholder = "Search"
	ti.CharLimit = 256
	ti.Width = views.InputWidth(0)
	ti.Focus()

	h := &Handler{
		currentMode:  types.ModeQuery,
		previousMode: types.ModeQuery,
		textInput:    &ti,
		modes:        make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeQuery] = modes.NewQueryMode(keys)
	h.modes[types.ModeResults] = modes.NewResultsMode(keys)
	h.modes[types.ModeSettings] = modes.NewSettingsMode(keys)

	return h
}

// HandleKey runs the key through the active mode. Keys the query mode does
// not consume are edits to the search box and produce an UpdateQueryAction
// when the text changes.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmds []tea.Cmd
	var allActions []types.Action
	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			changed, cmd := h.switchMode(a.Mode, ctx)
			allActions = append(allActions, changed...)
			cmds = append(cmds, cmd)
		case types.PreviousModeAction:
			changed, cmd := h.switchMode(h.previousMode, ctx)
			allActions = append(allActions, changed...)
			cmds = append(cmds, cmd)
		default:
			allActions = append(allActions, action)
		}
	}

	if h.currentMode == types.ModeQuery && !consumed {
		before := h.textInput.Value()
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		cmds = append(cmds, cmd)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateQueryAction{Text: after})
		}
	}

	return allActions, tea.Batch(cmds...)
}

// ChangeMode switches mode outside of key handling, e.g. on a mouse click.
// It returns the actions produced by leaving and entering modes.
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	return h.switchMode(mode, ctx)
}

// ReturnToPreviousMode leaves the current mode for the one before it
func (h *Handler) ReturnToPreviousMode(ctx types.Context) ([]types.Action, tea.Cmd) {
	return h.switchMode(h.previousMode, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}

	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.previousMode = h.currentMode
	h.currentMode = mode

	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	// The search box keeps its text across modes
	if mode == types.ModeQuery {
		return actions, h.textInput.Focus()
	}
	h.textInput.Blur()
	return actions, nil
}

// Mode returns the active input mode
func (h *Handler) Mode() types.Mode {
	if h == nil {
		return types.ModeQuery
	}
	return h.currentMode
}

// TextInput returns the search box model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetWidth fits the search box to a terminal of the given width
func (h *Handler) SetWidth(termWidth int) {
	h.textInput.Width = views.InputWidth(termWidth)
}

// SetValue replaces the search box text without producing actions
func (h *Handler) SetValue(text string) {
	h.textInput.SetValue(text)
}

// Update handles non-keyboard messages for the search box, e.g. cursor blink
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}
