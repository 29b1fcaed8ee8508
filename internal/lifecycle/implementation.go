// internal/lifecycle/implementation.go
package lifecycle

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"playroster/internal/eventlog"
	"playroster/internal/metrics"
	"playroster/internal/registry"
	"playroster/internal/roster"
	"playroster/pkg/rejection"
)

// Engine evaluates event intents against the current child and item state,
// appends the resulting events and updates both projections.
type Engine struct {
	children roster.Store
	items    registry.Store
	log      eventlog.Store
	metrics  *metrics.Metrics
	loc      *time.Location
	locks    *keyedLocks
	tracer   trace.Tracer
	now      func() time.Time
}

// NewEngine creates the lifecycle engine. All collaborators are injected;
// metrics may be nil. loc defines the calendar day for the punishment
// threshold and restriction expiry; nil means time.Local.
func NewEngine(children roster.Store, items registry.Store, eventLog eventlog.Store, m *metrics.Metrics, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{
		children: children,
		items:    items,
		log:      eventLog,
		metrics:  m,
		loc:      loc,
		locks:    newKeyedLocks(),
		tracer:   otel.Tracer("playroster/lifecycle"),
		now:      time.Now,
	}
}

// SubmitEvent records one event intent for a child.
func (e *Engine) SubmitEvent(ctx context.Context, childID uuid.UUID, eventType eventlog.Type, label string) (*eventlog.Event, error) {
	_, events, err := e.process(ctx, childID, Intent{Type: eventType, Label: label})
	if err != nil {
		return nil, err
	}
	return &events[0], nil
}

// TakeItem grants custody of an item to the child.
func (e *Engine) TakeItem(ctx context.Context, childID uuid.UUID, itemName string) (*roster.Child, error) {
	child, _, err := e.process(ctx, childID, Intent{Type: eventlog.TypeLoanStart, Label: itemName})
	if err != nil {
		if e.metrics != nil {
			e.metrics.LoansDenied.WithLabelValues(string(rejection.KindOf(err))).Inc()
		}
		return nil, err
	}
	if e.metrics != nil {
		e.metrics.LoansGranted.Inc()
	}
	return child, nil
}

// ReturnItem ends the child's current loan.
func (e *Engine) ReturnItem(ctx context.Context, childID uuid.UUID) (*roster.Child, error) {
	child, _, err := e.process(ctx, childID, Intent{Type: eventlog.TypeLoanEnd})
	return child, err
}

// MaterializeChild applies the lazy restriction-expiry step to a child
// projection in place and reports whether it changed. Read paths call this
// before returning state and persist the cleared flag.
func MaterializeChild(child *roster.Child, now time.Time) bool {
	before := StateOf(child)
	after := Materialize(before, now)
	if after == before {
		return false
	}
	WriteState(child, after)
	return true
}

// process runs one event intent as an isolated unit of work for one child.
func (e *Engine) process(ctx context.Context, childID uuid.UUID, intent Intent) (*roster.Child, []eventlog.Event, error) {
	ctx, span := e.tracer.Start(ctx, "lifecycle.process",
		trace.WithAttributes(
			attribute.String("child.id", childID.String()),
			attribute.String("intent.type", string(intent.Type)),
		),
	)
	defer span.End()

	unlock := e.locks.lock("child/" + childID.String())
	defer unlock()

	child, err := e.children.Get(ctx, childID)
	if err != nil {
		return nil, nil, err
	}

	now := e.now().In(e.loc)
	intent.Now = now

	// Lazy restriction expiry is persisted on access regardless of whether
	// the intent itself succeeds.
	if MaterializeChild(child, now) {
		if err := e.children.Update(ctx, child); err != nil {
			return nil, nil, err
		}
	}

	facts, err := e.resolveFacts(ctx, childID, intent)
	if err != nil {
		return nil, nil, err
	}

	eff, err := Decide(StateOf(child), intent, facts)
	if err != nil {
		span.SetAttributes(attribute.String("rejection.kind", string(rejection.KindOf(err))))
		return nil, nil, err
	}

	if err := e.apply(ctx, child, eff); err != nil {
		return nil, nil, err
	}

	if e.metrics != nil {
		for _, ev := range eff.Events {
			e.metrics.EventsAppended.WithLabelValues(string(ev.Type)).Inc()
		}
		if eff.RestrictionTriggered {
			e.metrics.RestrictionsTriggered.Inc()
		}
	}

	return child, eff.Events, nil
}

// resolveFacts loads the log- and registry-derived inputs for the decision.
func (e *Engine) resolveFacts(ctx context.Context, childID uuid.UUID, intent Intent) (Facts, error) {
	var facts Facts

	switch intent.Type {
	case eventlog.TypePunishEnd:
		lastStart, err := e.log.MostRecentOfType(ctx, childID, eventlog.TypePunishStart)
		if err != nil {
			return facts, err
		}
		lastEnd, err := e.log.MostRecentOfType(ctx, childID, eventlog.TypePunishEnd)
		if err != nil {
			return facts, err
		}
		if lastStart != nil && (lastEnd == nil || lastEnd.Timestamp.Before(lastStart.Timestamp)) {
			ts := lastStart.Timestamp
			facts.OpenPunishStart = &ts
		}

		count, err := e.log.CountSince(ctx, childID, eventlog.TypePunishEnd, startOfDay(intent.Now))
		if err != nil {
			return facts, err
		}
		facts.PunishEndsToday = count

	case eventlog.TypeLoanStart:
		if intent.Label == "" {
			return facts, nil
		}
		item, err := e.items.FindByName(ctx, intent.Label)
		if err != nil {
			if errors.Is(err, registry.ErrNotFound) {
				return facts, nil
			}
			return facts, err
		}
		facts.ItemExists = true
		facts.ItemAvailable = item.IsAvailable
	}

	return facts, nil
}

// apply commits an effect: custody is won at the registry compare-and-set,
// then events are appended and the projection updated. Later failures
// compensate the earlier flag flip, in that order, so a rejected or failed
// intent leaves no observable partial state.
func (e *Engine) apply(ctx context.Context, child *roster.Child, eff Effect) error {
	if eff.AcquireItem != "" {
		if err := e.items.Acquire(ctx, eff.AcquireItem); err != nil {
			return err
		}
	}

	for i := range eff.Events {
		eff.Events[i].ChildID = child.ID
		if _, err := e.log.Append(ctx, &eff.Events[i]); err != nil {
			e.compensateAcquire(ctx, eff.AcquireItem)
			return err
		}
	}

	WriteState(child, eff.State)
	if err := e.children.Update(ctx, child); err != nil {
		e.compensateAcquire(ctx, eff.AcquireItem)
		return err
	}

	if eff.ReleaseItem != "" {
		if err := e.items.Release(ctx, eff.ReleaseItem); err != nil && !errors.Is(err, registry.ErrNotFound) {
			return err
		}
	}

	return nil
}

func (e *Engine) compensateAcquire(ctx context.Context, itemName string) {
	if itemName == "" {
		return
	}
	log.Printf("Compensating failed loan: rolling back availability for item %s", itemName)
	if err := e.items.Release(ctx, itemName); err != nil {
		log.Printf("Failed to compensate item availability: %v", err)
	}
}
