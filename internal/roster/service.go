// internal/roster/service.go
package roster

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the roster registration and authentication surface.
type Service interface {
	// Register creates a child with login credentials. New children start
	// absent, unrestricted and item-free.
	Register(ctx context.Context, name, email, password string) (*Child, error)
	// Create adds a child to the roster without credentials.
	Create(ctx context.Context, name string) (*Child, error)
	// Authenticate verifies credentials and returns the child principal.
	Authenticate(ctx context.Context, email, password string) (*Child, error)
	Get(ctx context.Context, id uuid.UUID) (*Child, error)
}
