package registry

import (
	"context"

	"playroster/pkg/rejection"
)

var (
	// ErrNotFound keeps storage-specific lookups consistent across the
	// Postgres and in-memory implementations.
	ErrNotFound = rejection.New(rejection.KindNotFound, "item not found")
	// ErrNotAvailable is returned by Acquire when the flag is already down.
	ErrNotAvailable = rejection.New(rejection.KindConflict, "item not available")
	// ErrDuplicate is returned by Insert when the name is already cataloged.
	ErrDuplicate = rejection.New(rejection.KindConflict, "item already exists")
)

// Store is the keyed record store for the item catalog. Acquire and Release
// flip the availability flag; Acquire is a compare-and-set so two racing
// loans for the same item cannot both succeed.
type Store interface {
	FindByName(ctx context.Context, name string) (*Item, error)
	Insert(ctx context.Context, item *Item) error
	List(ctx context.Context) ([]*Item, error)
	// Acquire flips available -> unavailable. Returns ErrNotFound for an
	// unknown name and ErrNotAvailable when the item is already held.
	Acquire(ctx context.Context, name string) error
	// Release flips the flag back to available. Releasing an already
	// available item is a no-op; an unknown name returns ErrNotFound.
	Release(ctx context.Context, name string) error
}
