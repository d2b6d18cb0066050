package search

import "findbar/internal/domain"

// Tab is a countable view over the query-matched items
type Tab struct {
	ID    domain.TabID
	Label string
	Count int
}

// Tabs derives the tab list from the query-matched (not yet category
// filtered) items. Chat and List only appear when their visibility flag is on.
func Tabs(matched []domain.Item, vis domain.Visibility) []Tab {
	var files, people, chats, lists int
	for _, item := range matched {
		switch {
		case item.Category.IsFileLike():
			files++
		case item.Category == domain.CategoryPerson:
			people++
		case item.Category == domain.CategoryChat:
			chats++
		case item.Category == domain.CategoryList:
			lists++
		}
	}

	tabs := []Tab{
		{ID: domain.TabAll, Label: "All", Count: len(matched)},
		{ID: domain.TabFiles, Label: "Files", Count: files},
		{ID: domain.TabPeople, Label: "People", Count: people},
	}
	if vis.Chats {
		tabs = append(tabs, Tab{ID: domain.TabChat, Label: "Chat", Count: chats})
	}
	if vis.Lists {
		tabs = append(tabs, Tab{ID: domain.TabList, Label: "List", Count: lists})
	}
	return tabs
}

// TabVisible reports whether the tab is part of the tab list under vis
func TabVisible(id domain.TabID, vis domain.Visibility) bool {
	switch id {
	case domain.TabAll, domain.TabFiles, domain.TabPeople:
		return true
	case domain.TabChat:
		return vis.Chats
	case domain.TabList:
		return vis.Lists
	default:
		return false
	}
}

// ResolveTab returns id if it is still offered under vis, otherwise TabAll
func ResolveTab(id domain.TabID, vis domain.Visibility) domain.TabID {
	if TabVisible(id, vis) {
		return id
	}
	return domain.TabAll
}

// IndexOf returns the position of id in tabs, or -1
func IndexOf(tabs []Tab, id domain.TabID) int {
	for i, t := range tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
