package store

import (
	"fmt"
	"strings"

	"findbar/internal/domain"
)

// ResultStore provides read-only access to the searchable dataset
type ResultStore interface {
	Items() []domain.Item
	Get(id string) (domain.Item, bool)
	Len() int
}

// MemoryStore is an immutable in-memory ResultStore.
// Items keep the order they were given in.
type MemoryStore struct {
	items []domain.Item
	index map[string]int
}

// NewMemoryStore validates items and stores a private copy of them
func NewMemoryStore(items []domain.Item) (*MemoryStore, error) {
	s := &MemoryStore{
		items: make([]domain.Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}

	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return nil, fmt.Errorf("item %d: missing id", i)
		}
		if _, dup := s.index[item.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, item.ID)
		}
		if strings.TrimSpace(item.Title) == "" {
			return nil, fmt.Errorf("item %q: missing title", item.ID)
		}
		category, err := domain.ParseCategory(string(item.Category))
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item.ID, err)
		}
		item.Category = category

		switch item.Presence {
		case domain.PresenceNone, domain.PresenceActive, domain.PresenceOffline:
		default:
			return nil, fmt.Errorf("item %q: unknown presence %q", item.ID, item.Presence)
		}

		s.index[item.ID] = len(s.items)
		s.items = append(s.items, item)
	}

	return s, nil
}

// Items returns a copy of the dataset in its original order
func (s *MemoryStore) Items() []domain.Item {
	result := make([]domain.Item, len(s.items))
	copy(result, s.items)
	return result
}

// Get looks an item up by id
func (s *MemoryStore) Get(id string) (domain.Item, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.Item{}, false
	}
	return s.items[i], true
}

// Len returns the number of items
func (s *MemoryStore) Len() int {
	return len(s.items)
}
