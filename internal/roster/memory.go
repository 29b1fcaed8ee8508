package roster

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps child projections in memory for tests.
type MemoryStore struct {
	mu       sync.RWMutex
	children map[uuid.UUID]*Child
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{children: make(map[uuid.UUID]*Child)}
}

func (s *MemoryStore) Insert(_ context.Context, child *Child) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if child.Email != "" {
		for _, existing := range s.children {
			if existing.Email == child.Email {
				return ErrDuplicateEmail
			}
		}
	}

	now := time.Now().UTC()
	child.CreatedAt = now
	child.UpdatedAt = now
	child.Version = 1
	copied := *child
	s.children[child.ID] = &copied
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	child, ok := s.children[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *child
	return &copied, nil
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, child := range s.children {
		if child.Email == email {
			copied := *child
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Update(_ context.Context, child *Child) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.children[child.ID]
	if !ok {
		return ErrNotFound
	}
	child.Version = existing.Version + 1
	child.UpdatedAt = time.Now().UTC()
	copied := *child
	s.children[child.ID] = &copied
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]*Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	children := make([]*Child, 0, len(s.children))
	for _, child := range s.children {
		copied := *child
		children = append(children, &copied)
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
	return children, nil
}
