package search

import (
	"strings"

	"findbar/internal/domain"
)

// MatchesQuery checks if a title contains the query, ignoring case.
// The empty query matches every title.
func MatchesQuery(title, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(query))
}

// MatchesTab checks if an item passes the category narrowing step.
// Named tabs keep their own categories; "all" defers to the visibility flags.
func MatchesTab(item domain.Item, tab domain.TabID, vis domain.Visibility) bool {
	if tab.IsNamed() {
		return tab.Contains(item.Category)
	}
	return vis.Allows(item.Category)
}

// MatchAll returns the items whose title matches the query, in store order
func MatchAll(items []domain.Item, query string) []domain.Item {
	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if MatchesQuery(item.Title, query) {
			result = append(result, item)
		}
	}
	return result
}

// Filter narrows items by query, then by tab or visibility. The relative
// order of items is preserved.
func Filter(items []domain.Item, query string, tab domain.TabID, vis domain.Visibility) []domain.Item {
	lowerQuery := strings.ToLower(query)

	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if lowerQuery != "" && !strings.Contains(strings.ToLower(item.Title), lowerQuery) {
			continue
		}
		if !MatchesTab(item, tab, vis) {
			continue
		}
		result = append(result, item)
	}
	return result
}
