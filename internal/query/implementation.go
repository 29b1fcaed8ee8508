// internal/query/implementation.go
package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"playroster/internal/eventlog"
	"playroster/internal/lifecycle"
	"playroster/internal/roster"
)

// service implements the Service interface.
type service struct {
	children roster.Store
	log      eventlog.Store
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a new query service instance.
func NewService(children roster.Store, log eventlog.Store, loc *time.Location) Service {
	if loc == nil {
		loc = time.Local
	}
	return &service{
		children: children,
		log:      log,
		loc:      loc,
		now:      time.Now,
	}
}

// ListChildren returns the full roster with credentials stripped by the
// serialization tags and restriction state materialized.
func (s *service) ListChildren(ctx context.Context) ([]*roster.Child, error) {
	children, err := s.children.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	for _, child := range children {
		s.materialize(ctx, child, now)
	}
	return children, nil
}

// ListPublicChildren returns only name, presence and held item per child.
func (s *service) ListPublicChildren(ctx context.Context) ([]roster.PublicChild, error) {
	children, err := s.ListChildren(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]roster.PublicChild, 0, len(children))
	for _, child := range children {
		public = append(public, child.Public())
	}
	return public, nil
}

// GetChild returns one child plus its event history.
func (s *service) GetChild(ctx context.Context, id uuid.UUID) (*ChildDetail, error) {
	detail := &ChildDetail{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		child, err := s.children.Get(gctx, id)
		if err != nil {
			return err
		}
		s.materialize(gctx, child, s.now().In(s.loc))
		detail.Child = child
		return nil
	})
	g.Go(func() error {
		events, err := s.log.ByChild(gctx, id)
		if err != nil {
			return err
		}
		detail.Events = events
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// ListEvents returns a child's event history in insertion order.
func (s *service) ListEvents(ctx context.Context, childID uuid.UUID) ([]eventlog.Event, error) {
	if _, err := s.children.Get(ctx, childID); err != nil {
		return nil, err
	}
	return s.log.ByChild(ctx, childID)
}

// materialize lazily expires the restriction window and persists the
// cleared flag, so reads after expiry observe an unrestricted child.
func (s *service) materialize(ctx context.Context, child *roster.Child, now time.Time) {
	if lifecycle.MaterializeChild(child, now) {
		// Best effort: a failed persist still returns the corrected view.
		_ = s.children.Update(ctx, child)
	}
}
