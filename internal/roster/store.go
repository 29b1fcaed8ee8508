package roster

import (
	"context"

	"github.com/google/uuid"

	"playroster/pkg/rejection"
)

var (
	ErrNotFound       = rejection.New(rejection.KindNotFound, "child not found")
	ErrDuplicateEmail = rejection.New(rejection.KindConflict, "email already registered")
)

// Store is the keyed record store for child projections. No business rules
// live here; the lifecycle engine owns all state transitions.
type Store interface {
	Insert(ctx context.Context, child *Child) error
	Get(ctx context.Context, id uuid.UUID) (*Child, error)
	FindByEmail(ctx context.Context, email string) (*Child, error)
	// Update persists the full record and bumps its version.
	Update(ctx context.Context, child *Child) error
	List(ctx context.Context) ([]*Child, error)
}
