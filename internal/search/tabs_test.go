package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"findbar/internal/domain"
	"findbar/internal/store"
)

func tabIDs(tabs []Tab) []domain.TabID {
	out := make([]domain.TabID, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, t.ID)
	}
	return out
}

func TestTabsDefaultVisibility(t *testing.T) {
	matched := MatchAll(store.Default().Items(), "r")
	tabs := Tabs(matched, domain.DefaultVisibility())

	assert.Equal(t, []domain.TabID{domain.TabAll, domain.TabFiles, domain.TabPeople}, tabIDs(tabs))
	assert.Equal(t, Tab{ID: domain.TabAll, Label: "All", Count: len(matched)}, tabs[0])
}

func TestTabsCounts(t *testing.T) {
	matched := MatchAll(store.Default().Items(), "")
	tabs := Tabs(matched, domain.Visibility{Files: true, People: true, Chats: true, Lists: true})

	assert.Equal(t, []Tab{
		{ID: domain.TabAll, Label: "All", Count: 8},
		{ID: domain.TabFiles, Label: "Files", Count: 3},
		{ID: domain.TabPeople, Label: "People", Count: 3},
		{ID: domain.TabChat, Label: "Chat", Count: 1},
		{ID: domain.TabList, Label: "List", Count: 1},
	}, tabs)
}

func TestTabsAllCountIgnoresVisibility(t *testing.T) {
	matched := MatchAll(store.Default().Items(), "rudraksh")
	tabs := Tabs(matched, domain.Visibility{})
	assert.Equal(t, 4, tabs[0].Count)
}

func TestTabsEmpty(t *testing.T) {
	tabs := Tabs(nil, domain.DefaultVisibility())
	for _, tab := range tabs {
		assert.Zero(t, tab.Count)
	}
}

func TestResolveTab(t *testing.T) {
	vis := domain.DefaultVisibility()
	assert.Equal(t, domain.TabAll, ResolveTab(domain.TabChat, vis))
	assert.Equal(t, domain.TabAll, ResolveTab(domain.TabList, vis))
	assert.Equal(t, domain.TabPeople, ResolveTab(domain.TabPeople, vis))
	assert.Equal(t, domain.TabAll, ResolveTab(domain.TabID("nope"), vis))

	vis.Chats = true
	assert.Equal(t, domain.TabChat, ResolveTab(domain.TabChat, vis))
}

func TestIndexOf(t *testing.T) {
	tabs := Tabs(nil, domain.DefaultVisibility())
	assert.Equal(t, 2, IndexOf(tabs, domain.TabPeople))
	assert.Equal(t, -1, IndexOf(tabs, domain.TabChat))
}
