// internal/registry/implementation.go
package registry

import (
	"context"
	"strings"

	"playroster/pkg/rejection"
)

// service implements the Service interface.
type service struct {
	store Store
}

// NewService creates a new registry service instance.
func NewService(store Store) Service {
	return &service{store: store}
}

// AddItem catalogs a new loanable item, initially available.
func (s *service) AddItem(ctx context.Context, name string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, rejection.New(rejection.KindInvalidInput, "item name is required")
	}

	item := &Item{Name: name, IsAvailable: true}
	if err := s.store.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem returns a single cataloged item.
func (s *service) GetItem(ctx context.Context, name string) (*Item, error) {
	return s.store.FindByName(ctx, name)
}

// ListItems returns the full catalog.
func (s *service) ListItems(ctx context.Context) ([]*Item, error) {
	return s.store.List(ctx)
}
