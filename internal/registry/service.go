// internal/registry/service.go
package registry

import "context"

// Service defines the catalog administration surface.
type Service interface {
	AddItem(ctx context.Context, name string) (*Item, error)
	GetItem(ctx context.Context, name string) (*Item, error)
	ListItems(ctx context.Context) ([]*Item, error)
}
