// Package admin manages supervisor accounts for the roster, kept in a
// separate collection from children.
package admin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"playroster/pkg/rejection"
)

var (
	ErrNotFound  = rejection.New(rejection.KindNotFound, "admin not found")
	ErrDuplicate = rejection.New(rejection.KindConflict, "admin already exists")
)

// Admin is a supervisor account.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store is the keyed record store for admin accounts.
type Store interface {
	Insert(ctx context.Context, a *Admin) error
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}
