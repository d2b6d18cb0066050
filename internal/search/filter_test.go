package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbar/internal/domain"
	"findbar/internal/store"
)

var sampleQueries = []string{"", "r", "R", "rud", "RUDRAKSH", "jhaveri", ".ppt", "o", "folder", "list", "zzz", " ", "_"}

var visibilityCombos = []domain.Visibility{
	domain.DefaultVisibility(),
	{},
	{Files: true, People: true, Chats: true, Lists: true},
	{Chats: true},
	{Files: true, Lists: true},
}

var allTabs = []domain.TabID{domain.TabAll, domain.TabFiles, domain.TabPeople, domain.TabChat, domain.TabList}

func ids(items []domain.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestMatchesQuery(t *testing.T) {
	assert.True(t, MatchesQuery("Secret Folder", ""))
	assert.True(t, MatchesQuery("Secret Folder", "folder"))
	assert.True(t, MatchesQuery("Secret Folder", "CRET F"))
	assert.False(t, MatchesQuery("Secret Folder", "folders"))
	assert.False(t, MatchesQuery("Secret Folder", "sfolder"))
}

func TestFilterWorkedExample(t *testing.T) {
	items := []domain.Item{
		{ID: "ppt", Category: domain.CategoryFile, Title: "rudraksh_jhaveri_presentation.ppt"},
		{ID: "person", Category: domain.CategoryPerson, Title: "Rudraksh Jhaveri"},
	}

	got := Filter(items, "rudraksh", domain.TabAll, domain.DefaultVisibility())
	assert.Equal(t, []string{"ppt", "person"}, ids(got))
}

func TestFilterDefaultDataset(t *testing.T) {
	items := store.Default().Items()

	got := Filter(items, "rudraksh", domain.TabAll, domain.DefaultVisibility())
	assert.Equal(t, []string{"2", "3", "5"}, ids(got), "chat is hidden by default visibility")

	got = Filter(items, "rudraksh", domain.TabFiles, domain.DefaultVisibility())
	assert.Equal(t, []string{"3", "5"}, ids(got))

	got = Filter(items, "rudraksh", domain.TabChat, domain.DefaultVisibility())
	assert.Equal(t, []string{"7"}, ids(got), "named tabs ignore visibility")

	got = Filter(items, "", domain.TabFiles, domain.DefaultVisibility())
	assert.Equal(t, []string{"3", "5", "6"}, ids(got))
}

func TestFilterNarrowing(t *testing.T) {
	items := store.Default().Items()
	for _, vis := range visibilityCombos {
		baseline := map[string]bool{}
		for _, id := range ids(Filter(items, "", domain.TabAll, vis)) {
			baseline[id] = true
		}
		for _, q := range sampleQueries {
			for _, id := range ids(Filter(items, q, domain.TabAll, vis)) {
				assert.True(t, baseline[id], "query %q vis %+v returned %s outside the empty-query baseline", q, vis, id)
			}
		}
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	items := store.Default().Items()
	for _, q := range sampleQueries {
		for _, tab := range allTabs {
			lower := Filter(items, strings.ToLower(q), tab, domain.DefaultVisibility())
			upper := Filter(items, strings.ToUpper(q), tab, domain.DefaultVisibility())
			assert.Equal(t, ids(lower), ids(upper), "query %q tab %s", q, tab)
		}
	}
}

func TestFilterIdempotentAndPure(t *testing.T) {
	items := store.Default().Items()
	before := store.Default().Items()

	for _, q := range sampleQueries {
		for _, tab := range allTabs {
			first := Filter(items, q, tab, domain.DefaultVisibility())
			second := Filter(items, q, tab, domain.DefaultVisibility())
			assert.Equal(t, first, second)
		}
	}
	assert.Equal(t, before, items, "Filter must not mutate its input")
}

func TestFilterPreservesOrder(t *testing.T) {
	items := store.Default().Items()
	position := map[string]int{}
	for i, item := range items {
		position[item.ID] = i
	}

	for _, vis := range visibilityCombos {
		for _, q := range sampleQueries {
			for _, tab := range allTabs {
				got := Filter(items, q, tab, vis)
				for i := 1; i < len(got); i++ {
					require.Less(t, position[got[i-1].ID], position[got[i].ID])
				}
			}
		}
	}
}

func TestFilterNeverFails(t *testing.T) {
	assert.Empty(t, Filter(nil, "", domain.TabAll, domain.DefaultVisibility()))
	assert.Empty(t, Filter(nil, "x", domain.TabPeople, domain.Visibility{}))

	items := store.Default().Items()
	assert.Empty(t, Filter(items, "", domain.TabAll, domain.Visibility{}), "all flags off hides everything on the all tab")
	assert.Empty(t, Filter(items, "no such title", domain.TabAll, domain.DefaultVisibility()))
	assert.Equal(t, ids(Filter(items, "r", domain.TabAll, domain.DefaultVisibility())),
		ids(Filter(items, "r", domain.TabID("bogus"), domain.DefaultVisibility())), "unknown tabs behave as all")
}

func TestMatchAll(t *testing.T) {
	items := store.Default().Items()
	assert.Len(t, MatchAll(items, ""), 8)
	assert.Equal(t, []string{"2", "3", "5", "7"}, ids(MatchAll(items, "Rudraksh")))
}
