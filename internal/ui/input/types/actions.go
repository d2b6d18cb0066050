package types

import "findbar/internal/domain"

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// PreviousModeAction returns to the mode that was active before the current one
type PreviousModeAction struct{}

func (a PreviousModeAction) Type() string { return "previous_mode" }

// Query actions
type UpdateQueryAction struct {
	Text string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Tab actions
type CycleTabAction struct {
	Delta int // +1 next, -1 previous
}

func (a CycleTabAction) Type() string { return "cycle_tab" }

type SelectTabAction struct {
	Tab domain.TabID
}

func (a SelectTabAction) Type() string { return "select_tab" }

// Result actions
type MoveCursorAction struct {
	Delta int
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

type OpenItemAction struct{}

func (a OpenItemAction) Type() string { return "open_item" }

// Settings actions
type OpenSettingsAction struct{}

func (a OpenSettingsAction) Type() string { return "open_settings" }

type CloseSettingsAction struct{}

func (a CloseSettingsAction) Type() string { return "close_settings" }

type MoveSettingsRowAction struct {
	Delta int
}

func (a MoveSettingsRowAction) Type() string { return "move_settings_row" }

type ToggleVisibilityAction struct {
	Group domain.VisibilityGroup
}

func (a ToggleVisibilityAction) Type() string { return "toggle_visibility" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
