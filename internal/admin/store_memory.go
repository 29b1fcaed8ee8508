package admin

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps admin accounts in memory for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	admins map[string]*Admin
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{admins: make(map[string]*Admin)}
}

func (s *MemoryStore) Insert(_ context.Context, a *Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[a.Email]; ok {
		return ErrDuplicate
	}
	a.CreatedAt = time.Now().UTC()
	copied := *a
	s.admins[a.Email] = &copied
	return nil
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.admins[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *a
	return &copied, nil
}
