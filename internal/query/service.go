// internal/query/service.go
package query

import (
	"context"

	"github.com/google/uuid"

	"playroster/internal/eventlog"
	"playroster/internal/roster"
)

// ChildDetail pairs a child's materialized state with its event history.
type ChildDetail struct {
	Child  *roster.Child   `json:"child"`
	Events []eventlog.Event `json:"events"`
}

// Service is the read side: projections only, no business rules. Child
// state is materialized (restriction lazily expired) before it is returned.
type Service interface {
	ListChildren(ctx context.Context) ([]*roster.Child, error)
	ListPublicChildren(ctx context.Context) ([]roster.PublicChild, error)
	GetChild(ctx context.Context, id uuid.UUID) (*ChildDetail, error)
	ListEvents(ctx context.Context, childID uuid.UUID) ([]eventlog.Event, error)
}
