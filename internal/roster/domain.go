// internal/roster/domain.go
package roster

import (
	"time"

	"github.com/google/uuid"
)

// Presence is a child's check-in state.
type Presence string

const (
	Present Presence = "present"
	Absent  Presence = "absent"
)

// Child is the current-state projection for one child. It is mutated only
// by the lifecycle engine; the event log is the durable history.
type Child struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Status       Presence  `json:"status"`
	IsRestricted bool      `json:"is_restricted"`
	// RestrictedUntil bounds the restriction window; nil means indefinite
	// while IsRestricted is set, absent otherwise.
	RestrictedUntil *time.Time `json:"restricted_until,omitempty"`
	// CurrentItem names the held item; empty means none.
	CurrentItem string    `json:"current_item,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// PublicChild is the roster projection safe for unauthenticated consumers.
// It must never carry email or credential fields.
type PublicChild struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Status      Presence  `json:"status"`
	CurrentItem string    `json:"current_item,omitempty"`
}

// Public returns the restricted-to-public-fields view of the child.
func (c *Child) Public() PublicChild {
	return PublicChild{
		ID:          c.ID,
		Name:        c.Name,
		Status:      c.Status,
		CurrentItem: c.CurrentItem,
	}
}
