// internal/lifecycle/service.go
package lifecycle

import (
	"context"

	"github.com/google/uuid"

	"playroster/internal/eventlog"
	"playroster/internal/roster"
)

// Service is the lifecycle engine boundary. All child state transitions go
// through it; every precondition violation comes back as a typed rejection
// with no partial mutation applied.
type Service interface {
	// SubmitEvent records one event intent for a child and returns the
	// primary appended event.
	SubmitEvent(ctx context.Context, childID uuid.UUID, eventType eventlog.Type, label string) (*eventlog.Event, error)
	// TakeItem grants custody of a cataloged item to the child.
	TakeItem(ctx context.Context, childID uuid.UUID, itemName string) (*roster.Child, error)
	// ReturnItem ends the child's current loan.
	ReturnItem(ctx context.Context, childID uuid.UUID) (*roster.Child, error)
}
