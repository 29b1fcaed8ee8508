// internal/registry/domain.go
package registry

import "time"

// Item is a loanable item in the shared catalog. The availability flag is
// the single source of truth for custody: at most one child holds an item
// at a time.
type Item struct {
	Name        string    `json:"name"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
