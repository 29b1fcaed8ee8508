package registry

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps the catalog in memory for tests. The mutex makes
// Acquire an atomic compare-and-set like the Postgres conditional UPDATE.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]*Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*Item)}
}

func (s *MemoryStore) FindByName(_ context.Context, name string) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[name]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *MemoryStore) Insert(_ context.Context, item *Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.Name]; ok {
		return ErrDuplicate
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	copied := *item
	s.items[item.Name] = &copied
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]*Item, 0, len(s.items))
	for _, item := range s.items {
		copied := *item
		items = append(items, &copied)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *MemoryStore) Acquire(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[name]
	if !ok {
		return ErrNotFound
	}
	if !item.IsAvailable {
		return ErrNotAvailable
	}
	item.IsAvailable = false
	return nil
}

func (s *MemoryStore) Release(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[name]
	if !ok {
		return ErrNotFound
	}
	item.IsAvailable = true
	return nil
}
