package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"findbar/internal/domain"
	"findbar/internal/search"
)

const gearGlyph = "⚙"

// TabBarRenderer renders the category tabs with their count badges
type TabBarRenderer struct {
	styles *Styles
}

// NewTabBarRenderer creates a new tab bar renderer
func NewTabBarRenderer(styles *Styles) *TabBarRenderer {
	return &TabBarRenderer{styles: styles}
}

// RenderTabBar renders the tab row with the settings glyph right-aligned in
// width. Spans are relative to the start of the row.
func (t *TabBarRenderer) RenderTabBar(tabs []search.Tab, active domain.TabID, settingsOpen bool, width int) (string, []TabSpan, Rect) {
	var b strings.Builder
	var spans []TabSpan
	x := 0

	for i, tab := range tabs {
		if i > 0 {
			b.WriteString(" ")
			x++
		}

		style, badge := t.styles.Tab, t.styles.Badge
		if tab.ID == active {
			style, badge = t.styles.TabActive, t.styles.BadgeActive
		}
		label := style.Render(tab.Label + " " + badge.Inherit(style).Render(fmt.Sprintf("%d", tab.Count)))
		w := lipgloss.Width(label)

		b.WriteString(label)
		spans = append(spans, TabSpan{ID: tab.ID, Rect: Rect{X: x, Y: 0, W: w, H: 1}})
		x += w
	}

	gearStyle := t.styles.Gear
	if settingsOpen {
		gearStyle = t.styles.GearActive
	}
	gear := gearStyle.Render(gearGlyph)
	gearW := lipgloss.Width(gear)

	pad := width - x - gearW
	if pad < 1 {
		pad = 1
	}
	b.WriteString(strings.Repeat(" ", pad))
	gearRect := Rect{X: x + pad, Y: 0, W: gearW, H: 1}
	b.WriteString(gear)

	return b.String(), spans, gearRect
}
