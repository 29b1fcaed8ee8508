package eventlog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store is the append-only event log. Implementations assign the event ID
// and, when the caller left it zero, the timestamp.
type Store interface {
	// Append stores the event verbatim and returns its assigned ID.
	Append(ctx context.Context, event *Event) (int64, error)
	// ByChild returns all events for a child in insertion order.
	ByChild(ctx context.Context, childID uuid.UUID) ([]Event, error)
	// MostRecentOfType returns the latest event of the given type for a
	// child, or nil when none exists.
	MostRecentOfType(ctx context.Context, childID uuid.UUID, eventType Type) (*Event, error)
	// CountSince counts events of a type for a child with a timestamp at or
	// after since.
	CountSince(ctx context.Context, childID uuid.UUID, eventType Type, since time.Time) (int, error)
}
