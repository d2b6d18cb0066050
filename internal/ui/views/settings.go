package views

import (
	"fmt"
	"strings"

	"findbar/internal/domain"
)

var groupLabels = map[domain.VisibilityGroup]struct {
	glyph string
	label string
}{
	domain.GroupFiles:  {"▯", "Files"},
	domain.GroupPeople: {"☺", "People"},
	domain.GroupChats:  {"◉", "Chats"},
	domain.GroupLists:  {"≡", "Lists"},
}

// SettingsRenderer renders the visibility panel
type SettingsRenderer struct {
	styles *Styles
}

// NewSettingsRenderer creates a new settings renderer
func NewSettingsRenderer(styles *Styles) *SettingsRenderer {
	return &SettingsRenderer{styles: styles}
}

// RenderPanel renders one row per visibility group with its switch state.
// Row i sits on line i+1 of the result, below the top border.
func (s *SettingsRenderer) RenderPanel(vis domain.Visibility, focused int) string {
	rows := make([]string, len(domain.VisibilityGroups))
	for i, g := range domain.VisibilityGroups {
		l := groupLabels[g]

		sw := s.styles.SwitchOff.Render("○ off")
		if vis.Enabled(g) {
			sw = s.styles.SwitchOn.Render("● on ")
		}

		row := fmt.Sprintf("%d %s %-7s %s", i+1, l.glyph, l.label, sw)
		if i == focused {
			row = s.styles.PanelFocus.Render(row)
		} else {
			row = s.styles.PanelRow.Render(row)
		}
		rows[i] = row
	}
	return s.styles.Panel.Render(strings.Join(rows, "\n"))
}
