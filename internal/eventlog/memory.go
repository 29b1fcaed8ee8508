package eventlog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps the event log in memory. It favors clarity over
// performance and backs the unit tests.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Append(_ context.Context, event *Event) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.ID = s.nextID
	s.nextID++
	s.events = append(s.events, *event)
	return event.ID, nil
}

func (s *MemoryStore) ByChild(_ context.Context, childID uuid.UUID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Event
	for _, e := range s.events {
		if e.ChildID == childID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryStore) MostRecentOfType(_ context.Context, childID uuid.UUID, eventType Type) (*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *Event
	for i := range s.events {
		e := s.events[i]
		if e.ChildID != childID || e.Type != eventType {
			continue
		}
		if found == nil || !e.Timestamp.Before(found.Timestamp) {
			copied := e
			found = &copied
		}
	}
	return found, nil
}

func (s *MemoryStore) CountSince(_ context.Context, childID uuid.UUID, eventType Type, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, e := range s.events {
		if e.ChildID == childID && e.Type == eventType && !e.Timestamp.Before(since) {
			count++
		}
	}
	return count, nil
}
