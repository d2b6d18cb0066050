package views

import "findbar/internal/domain"

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// TabSpan is the clickable region of one tab label
type TabSpan struct {
	ID domain.TabID
	Rect
}

// RowSpan is the clickable region of one result row
type RowSpan struct {
	Index int
	Rect
}

// Layout records where the last frame put its interactive parts, in
// absolute screen coordinates
type Layout struct {
	Tabs        []TabSpan
	Gear        Rect
	Panel       Rect
	PanelRows   []Rect
	Rows        []RowSpan
	SearchInput Rect
}

// TabAt returns the tab under (x, y)
func (l Layout) TabAt(x, y int) (domain.TabID, bool) {
	for _, t := range l.Tabs {
		if t.Contains(x, y) {
			return t.ID, true
		}
	}
	return "", false
}

// RowAt returns the index of the result row under (x, y)
func (l Layout) RowAt(x, y int) (int, bool) {
	for _, r := range l.Rows {
		if r.Contains(x, y) {
			return r.Index, true
		}
	}
	return -1, false
}

// PanelRowAt returns the settings row under (x, y)
func (l Layout) PanelRowAt(x, y int) (int, bool) {
	for i, r := range l.PanelRows {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}
