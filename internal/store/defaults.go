package store

import "findbar/internal/domain"

// DefaultItems returns the built-in dataset
func DefaultItems() []domain.Item {
	return []domain.Item{
		{
			ID:       "1",
			Category: domain.CategoryPerson,
			Title:    "HR",
			Subtitle: "Unactivated",
			Avatar:   "ironman",
			Presence: domain.PresenceOffline,
		},
		{
			ID:          "2",
			Category:    domain.CategoryPerson,
			Title:       "Rudraksh Jhaveri",
			Subtitle:    "Active 1 min ago",
			Avatar:      "spiderman",
			Presence:    domain.PresenceOffline,
			PresenceAge: "1w ago",
		},
		{
			ID:        "3",
			Category:  domain.CategoryFile,
			Title:     "rudraksh_jhaveri_presentation.ppt",
			Location:  "Presentations",
			EditedAgo: "12 min ago",
		},
		{
			ID:          "4",
			Category:    domain.CategoryPerson,
			Title:       "Manager",
			Subtitle:    "Active 1 hr ago",
			Avatar:      "ben",
			Presence:    domain.PresenceOffline,
			PresenceAge: "1w ago",
		},
		{
			ID:        "5",
			Category:  domain.CategoryVideo,
			Title:     "rudraksh_video.mp4",
			Location:  "Videos",
			EditedAgo: "1y ago",
		},
		{
			ID:        "6",
			Category:  domain.CategoryFolder,
			Title:     "Secret Folder",
			Subtitle:  "12 Files",
			Location:  "Projects",
			EditedAgo: "2m ago",
			FileCount: 12,
		},
		{
			ID:       "7",
			Category: domain.CategoryChat,
			Title:    "Rudraksh Jhaveri Chat",
			Subtitle: "Last message 2h ago",
		},
		{
			ID:       "8",
			Category: domain.CategoryList,
			Title:    "Project List",
		},
	}
}

// Default returns a store over the built-in dataset
func Default() *MemoryStore {
	s, err := NewMemoryStore(DefaultItems())
	if err != nil {
		// the built-in records are fixed; failing here is a programming error
		panic(err)
	}
	return s
}
