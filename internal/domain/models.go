package domain

import (
	"fmt"
	"strings"
)

// Category classifies a searchable item
type Category string

const (
	CategoryPerson Category = "person"
	CategoryFolder Category = "folder"
	CategoryFile   Category = "file"
	CategoryVideo  Category = "video"
	CategoryChat   Category = "chat"
	CategoryList   Category = "list"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryPerson,
	CategoryFolder,
	CategoryFile,
	CategoryVideo,
	CategoryChat,
	CategoryList,
}

// ParseCategory converts a lower-case category name into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// IsFileLike reports whether the category belongs to the files group
func (c Category) IsFileLike() bool {
	return c == CategoryFile || c == CategoryVideo || c == CategoryFolder
}

// Presence is the online status of a person
type Presence string

const (
	PresenceNone    Presence = ""
	PresenceActive  Presence = "active"
	PresenceOffline Presence = "offline"
)

// Item is a single searchable record
type Item struct {
	ID          string   `toml:"id" yaml:"id" json:"id"`
	Category    Category `toml:"category" yaml:"category" json:"category"`
	Title       string   `toml:"title" yaml:"title" json:"title"`
	Subtitle    string   `toml:"subtitle,omitempty" yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Avatar      string   `toml:"avatar,omitempty" yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Presence    Presence `toml:"presence,omitempty" yaml:"presence,omitempty" json:"presence,omitempty"`
	PresenceAge string   `toml:"presence_age,omitempty" yaml:"presence_age,omitempty" json:"presence_age,omitempty"`
	FileCount   int      `toml:"file_count,omitempty" yaml:"file_count,omitempty" json:"file_count,omitempty"`
	Location    string   `toml:"location,omitempty" yaml:"location,omitempty" json:"location,omitempty"`
	EditedAgo   string   `toml:"edited_ago,omitempty" yaml:"edited_ago,omitempty" json:"edited_ago,omitempty"`
}

// VisibilityGroup names a settings toggle
type VisibilityGroup string

const (
	GroupFiles  VisibilityGroup = "files"
	GroupPeople VisibilityGroup = "people"
	GroupChats  VisibilityGroup = "chats"
	GroupLists  VisibilityGroup = "lists"
)

// VisibilityGroups lists the toggles in settings panel order
var VisibilityGroups = []VisibilityGroup{GroupFiles, GroupPeople, GroupChats, GroupLists}

// Visibility controls which categories take part in the "all" tab
type Visibility struct {
	Files  bool `toml:"files" json:"files"`
	People bool `toml:"people" json:"people"`
	Chats  bool `toml:"chats" json:"chats"`
	Lists  bool `toml:"lists" json:"lists"`
}

// DefaultVisibility enables files and people only
func DefaultVisibility() Visibility {
	return Visibility{Files: true, People: true}
}

// Enabled reports the flag for a group
func (v Visibility) Enabled(g VisibilityGroup) bool {
	switch g {
	case GroupFiles:
		return v.Files
	case GroupPeople:
		return v.People
	case GroupChats:
		return v.Chats
	case GroupLists:
		return v.Lists
	default:
		return false
	}
}

// Toggle returns a copy with the group's flag flipped
func (v Visibility) Toggle(g VisibilityGroup) Visibility {
	switch g {
	case GroupFiles:
		v.Files = !v.Files
	case GroupPeople:
		v.People = !v.People
	case GroupChats:
		v.Chats = !v.Chats
	case GroupLists:
		v.Lists = !v.Lists
	}
	return v
}

// Allows reports whether items of the category pass the "all" tab
func (v Visibility) Allows(c Category) bool {
	switch {
	case c.IsFileLike():
		return v.Files
	case c == CategoryPerson:
		return v.People
	case c == CategoryChat:
		return v.Chats
	case c == CategoryList:
		return v.Lists
	default:
		return false
	}
}

// TabID identifies a category tab
type TabID string

const (
	TabAll    TabID = "all"
	TabFiles  TabID = "files"
	TabPeople TabID = "people"
	TabChat   TabID = "chat"
	TabList   TabID = "list"
)

// ParseTab converts a tab name into a TabID
func ParseTab(s string) (TabID, error) {
	switch t := TabID(strings.ToLower(strings.TrimSpace(s))); t {
	case TabAll, TabFiles, TabPeople, TabChat, TabList:
		return t, nil
	case "":
		return TabAll, nil
	default:
		return "", fmt.Errorf("unknown tab %q", s)
	}
}

// Contains reports whether a named tab shows items of the category.
// TabAll is not a category set and always reports false.
func (t TabID) Contains(c Category) bool {
	switch t {
	case TabFiles:
		return c.IsFileLike()
	case TabPeople:
		return c == CategoryPerson
	case TabChat:
		return c == CategoryChat
	case TabList:
		return c == CategoryList
	default:
		return false
	}
}

// IsNamed reports whether the tab narrows to a category set
func (t TabID) IsNamed() bool {
	switch t {
	case TabFiles, TabPeople, TabChat, TabList:
		return true
	default:
		return false
	}
}
