package views

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"findbar/internal/domain"
)

// variant renders the category-specific parts of a result row
type variant struct {
	icon   func(item domain.Item, s *Styles) string
	detail func(item domain.Item) string
}

var variants = map[domain.Category]variant{
	domain.CategoryPerson: {icon: personIcon, detail: subtitleDetail},
	domain.CategoryChat:   {icon: glyphIcon("◉", func(s *Styles) lipgloss.Style { return s.Chat }), detail: subtitleDetail},
	domain.CategoryList:   {icon: glyphIcon("≡", func(s *Styles) lipgloss.Style { return s.List }), detail: subtitleDetail},
	domain.CategoryFolder: {icon: glyphIcon("▤", iconStyle), detail: fileDetail},
	domain.CategoryFile:   {icon: glyphIcon("▯", iconStyle), detail: fileDetail},
	domain.CategoryVideo:  {icon: glyphIcon("▶", iconStyle), detail: fileDetail},
}

func iconStyle(s *Styles) lipgloss.Style { return s.Icon }

func glyphIcon(glyph string, style func(*Styles) lipgloss.Style) func(domain.Item, *Styles) string {
	return func(_ domain.Item, s *Styles) string {
		return " " + style(s).Render(glyph) + " "
	}
}

// personIcon is the avatar initial followed by a presence dot when active
func personIcon(item domain.Item, s *Styles) string {
	dot := " "
	if item.Presence == domain.PresenceActive {
		dot = s.Presence.Render("●")
	}
	return s.Avatar.Render(Initial(item.Title)) + dot + " "
}

func subtitleDetail(item domain.Item) string {
	return item.Subtitle
}

func fileDetail(item domain.Item) string {
	var parts []string
	if item.Location != "" {
		parts = append(parts, "in "+item.Location)
	}
	if item.EditedAgo != "" {
		parts = append(parts, "Edited "+item.EditedAgo)
	}
	if item.FileCount > 0 {
		parts = append(parts, fmt.Sprintf("%d Files", item.FileCount))
	}
	return strings.Join(parts, " • ")
}

// Initial returns the upper-cased first letter of a title, or "?"
func Initial(title string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(title))
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// DetailLine returns the secondary line shown under an item's title
func DetailLine(item domain.Item) string {
	if v, ok := variants[item.Category]; ok {
		return v.detail(item)
	}
	return item.Subtitle
}

// ItemRenderer handles rendering of result rows
type ItemRenderer struct {
	styles *Styles
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles) *ItemRenderer {
	return &ItemRenderer{styles: styles}
}

// RenderItem renders an item as two lines: icon and title, then the detail line
func (r *ItemRenderer) RenderItem(item domain.Item, query string, isSelected bool, width int) string {
	icon := "   "
	if v, ok := variants[item.Category]; ok {
		icon = v.icon(item, r.styles)
	}
	indent := strings.Repeat(" ", lipgloss.Width(icon))

	titleStyle := r.styles.ItemTitle
	detailStyle := r.styles.ItemDetail
	if isSelected {
		titleStyle = titleStyle.Inherit(r.styles.SelectionBg)
		detailStyle = detailStyle.Inherit(r.styles.SelectionBg)
	}

	title := r.highlightMatch(truncate(item.Title, width-lipgloss.Width(icon)), query, r.styles.Highlight, titleStyle)
	detail := detailStyle.Render(truncate(DetailLine(item), width-len(indent)))

	lines := []string{icon + title, indent + detail}
	if isSelected && width > 0 {
		bg := r.styles.SelectionBg
		for i, line := range lines {
			if pad := width - lipgloss.Width(line); pad > 0 {
				lines[i] = line + bg.Render(strings.Repeat(" ", pad))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// highlightMatch highlights the first case-insensitive match of query
func (r *ItemRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Case folding that changes byte lengths would misalign the split
	if query == "" || index == -1 || len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Inherit(normalStyle).Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
