package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"findbar/internal/domain"
	"findbar/internal/search"
	"findbar/internal/ui/keymap"
)

const (
	defaultWidth = 80
	maxCardWidth = 80

	// main padding plus card border and padding
	originX = 2 + 1 + 1
	originY = 1 + 1

	rowHeight = 2
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Query         string
	Input         string // rendered search box
	Tabs          []search.Tab
	ActiveTab     domain.TabID
	Results       []domain.Item
	Searching     bool
	Spinner       string
	Cursor        int
	ShowCursor    bool
	ShowSettings  bool
	SettingsRow   int
	Visibility    domain.Visibility
	ShowHint      bool
	ShowHelp      bool
	HelpModel     help.Model
	Keys          keymap.KeyMap
	StatusMessage string
}

// Renderer handles all view rendering
type Renderer struct {
	styles         *Styles
	itemRender     *ItemRenderer
	tabRender      *TabBarRenderer
	settingsRender *SettingsRenderer
	popupRender    *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:         styles,
		itemRender:     NewItemRenderer(styles),
		tabRender:      NewTabBarRenderer(styles),
		settingsRender: NewSettingsRenderer(styles),
		popupRender:    NewPopupRenderer(styles),
	}
}

// Render produces the complete view and the positions of its clickable parts
func (r *Renderer) Render(state ViewState) (string, Layout) {
	var layout Layout

	if state.ShowHelp {
		helpContent := r.styles.Title.Render("findbar") + "\n\n" + state.HelpModel.FullHelpView(state.Keys.FullHelp())
		return r.popupRender.RenderPopup(helpContent, state.Height, state.Width, r.styles.InfoBox), layout
	}

	cardWidth, contentWidth := cardWidths(state.Width)

	var lines []string
	add := func(block string) int {
		at := len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		return at
	}

	// Search box
	prompt := r.styles.Prompt.Render("⌕ ")
	searchLine := prompt + state.Input
	if state.Query != "" {
		clearHint := r.styles.Dim.Render("ctrl+l clear")
		if pad := contentWidth - lipgloss.Width(searchLine) - lipgloss.Width(clearHint); pad > 0 {
			searchLine += strings.Repeat(" ", pad) + clearHint
		}
	}
	at := add(searchLine)
	layout.SearchInput = Rect{X: lipgloss.Width(prompt), Y: at, W: contentWidth - lipgloss.Width(prompt), H: 1}

	if state.Query == "" {
		if state.ShowHint {
			add(r.renderTip())
		}
	} else {
		add("")
		bar, spans, gear := r.tabRender.RenderTabBar(state.Tabs, state.ActiveTab, state.ShowSettings, contentWidth)
		at := add(bar)
		for _, s := range spans {
			layout.Tabs = append(layout.Tabs, TabSpan{ID: s.ID, Rect: s.Rect.offset(0, at)})
		}
		layout.Gear = gear.offset(0, at)
	}

	if state.ShowSettings {
		panel := r.settingsRender.RenderPanel(state.Visibility, state.SettingsRow)
		w, h := lipgloss.Width(panel), lipgloss.Height(panel)
		x := contentWidth - w
		if x < 0 {
			x = 0
		}
		at := add(lipgloss.PlaceHorizontal(contentWidth, lipgloss.Right, panel))
		layout.Panel = Rect{X: x, Y: at, W: w, H: h}
		for i := range domain.VisibilityGroups {
			layout.PanelRows = append(layout.PanelRows, Rect{X: x, Y: at + 1 + i, W: w, H: 1})
		}
	}

	if state.Query != "" {
		add("")
		switch {
		case state.Searching:
			add(lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, state.Spinner+" "+r.styles.Dim.Render("Searching")))
		case len(state.Results) == 0:
			add(lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center,
				r.styles.Empty.Render(fmt.Sprintf("No results found for %q", state.Query))))
		default:
			start, end := r.visibleRows(state, len(lines))
			if start > 0 {
				add(r.styles.Dim.Render(fmt.Sprintf("↑ %d more", start)))
			}
			for i := start; i < end; i++ {
				selected := state.ShowCursor && i == state.Cursor
				at := add(r.itemRender.RenderItem(state.Results[i], state.Query, selected, contentWidth))
				layout.Rows = append(layout.Rows, RowSpan{Index: i, Rect: Rect{X: 0, Y: at, W: contentWidth, H: rowHeight}})
			}
			if end < len(state.Results) {
				add(r.styles.Dim.Render(fmt.Sprintf("↓ %d more", len(state.Results)-end)))
			}
		}
	}

	card := r.styles.Card.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))

	var content strings.Builder
	content.WriteString(card)
	content.WriteString("\n")
	if state.StatusMessage != "" {
		content.WriteString(r.styles.StatusError.Render(state.StatusMessage))
		content.WriteString("\n")
	}
	content.WriteString(r.styles.Help.Render(state.HelpModel.ShortHelpView(state.Keys.ShortHelp())))

	layout = layout.translate(originX, originY)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String()), layout
}

// cardWidths returns the outer width of the card and the width inside its
// border and padding for a terminal of the given width
func cardWidths(termWidth int) (int, int) {
	if termWidth <= 0 {
		termWidth = defaultWidth
	}
	cardWidth := termWidth - 4 // main container padding
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}
	contentWidth := cardWidth - 4 // border and padding
	if contentWidth < 20 {
		contentWidth = 20
	}
	return cardWidth, contentWidth
}

// InputWidth is the number of columns the search box may use on a terminal
// of the given width, leaving room for the prompt, the clear hint and the
// cursor
func InputWidth(termWidth int) int {
	_, contentWidth := cardWidths(termWidth)
	w := contentWidth - lipgloss.Width("⌕ ") - lipgloss.Width(" ctrl+l clear") - 1
	if w < 1 {
		w = 1
	}
	return w
}

func (r *Renderer) renderTip() string {
	return r.styles.Tip.Render("• Tip: If you don't find your result, try starting with ") +
		r.styles.TipKey.Render(`"r"`) +
		r.styles.Tip.Render(" to see more options")
}

// visibleRows picks the window of result rows that fits under the lines
// already used and keeps the cursor in view
func (r *Renderer) visibleRows(state ViewState, used int) (int, int) {
	n := len(state.Results)
	if state.Height <= 0 {
		return 0, n
	}

	// main padding, card border, help line, scroll markers
	available := state.Height - 2 - 2 - 2 - used - 2
	if state.StatusMessage != "" {
		available--
	}
	maxRows := available / rowHeight
	if maxRows < 1 {
		maxRows = 1
	}
	if n <= maxRows {
		return 0, n
	}

	start := 0
	if state.ShowCursor && state.Cursor >= maxRows {
		start = state.Cursor - maxRows + 1
	}
	end := start + maxRows
	if end > n {
		end = n
	}
	return start, end
}

func (l Layout) translate(dx, dy int) Layout {
	out := Layout{
		Gear:        l.Gear.offset(dx, dy),
		Panel:       l.Panel.offset(dx, dy),
		SearchInput: l.SearchInput.offset(dx, dy),
	}
	for _, t := range l.Tabs {
		out.Tabs = append(out.Tabs, TabSpan{ID: t.ID, Rect: t.Rect.offset(dx, dy)})
	}
	for _, p := range l.PanelRows {
		out.PanelRows = append(out.PanelRows, p.offset(dx, dy))
	}
	for _, row := range l.Rows {
		out.Rows = append(out.Rows, RowSpan{Index: row.Index, Rect: row.Rect.offset(dx, dy)})
	}
	return out
}
