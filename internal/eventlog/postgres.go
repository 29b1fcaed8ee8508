package eventlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"playroster/pkg/rejection"
)

// PostgresStore persists the event log in an append-only events table.
type PostgresStore struct {
	db     *sql.DB
	tracer trace.Tracer
}

// NewPostgresStore creates a Postgres-backed event log.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db:     db,
		tracer: otel.Tracer("playroster/eventlog"),
	}
}

// Append stores a single event and returns its assigned ID.
func (s *PostgresStore) Append(ctx context.Context, event *Event) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "eventlog.append",
		trace.WithAttributes(
			attribute.String("child.id", event.ChildID.String()),
			attribute.String("event.type", string(event.Type)),
		),
	)
	defer span.End()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO events (child_id, type, timestamp, label, duration_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, event.ChildID, event.Type, event.Timestamp, event.Label, event.DurationMinutes).Scan(&id)
	if err != nil {
		return 0, rejection.Wrap(rejection.KindUnavailable, "append event", err)
	}

	event.ID = id
	span.SetAttributes(attribute.Int64("event.id", id))
	return id, nil
}

// ByChild returns all events for a child in insertion order.
func (s *PostgresStore) ByChild(ctx context.Context, childID uuid.UUID) ([]Event, error) {
	ctx, span := s.tracer.Start(ctx, "eventlog.by_child",
		trace.WithAttributes(attribute.String("child.id", childID.String())),
	)
	defer span.End()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, child_id, type, timestamp, label, duration_minutes
		FROM events
		WHERE child_id = $1
		ORDER BY id ASC
	`, childID)
	if err != nil {
		return nil, rejection.Wrap(rejection.KindUnavailable, "query events", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.ChildID, &event.Type, &event.Timestamp, &event.Label, &event.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	span.SetAttributes(attribute.Int("events.loaded", len(events)))
	return events, nil
}

// MostRecentOfType returns the latest event of a type for a child, or nil.
func (s *PostgresStore) MostRecentOfType(ctx context.Context, childID uuid.UUID, eventType Type) (*Event, error) {
	ctx, span := s.tracer.Start(ctx, "eventlog.most_recent_of_type",
		trace.WithAttributes(
			attribute.String("child.id", childID.String()),
			attribute.String("event.type", string(eventType)),
		),
	)
	defer span.End()

	var event Event
	err := s.db.QueryRowContext(ctx, `
		SELECT id, child_id, type, timestamp, label, duration_minutes
		FROM events
		WHERE child_id = $1 AND type = $2
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	`, childID, eventType).Scan(&event.ID, &event.ChildID, &event.Type, &event.Timestamp, &event.Label, &event.DurationMinutes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, rejection.Wrap(rejection.KindUnavailable, "query most recent event", err)
	}

	return &event, nil
}

// CountSince counts events of a type for a child at or after since.
func (s *PostgresStore) CountSince(ctx context.Context, childID uuid.UUID, eventType Type, since time.Time) (int, error) {
	ctx, span := s.tracer.Start(ctx, "eventlog.count_since",
		trace.WithAttributes(
			attribute.String("child.id", childID.String()),
			attribute.String("event.type", string(eventType)),
		),
	)
	defer span.End()

	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM events
		WHERE child_id = $1 AND type = $2 AND timestamp >= $3
	`, childID, eventType, since).Scan(&count)
	if err != nil {
		return 0, rejection.Wrap(rejection.KindUnavailable, "count events", err)
	}

	span.SetAttributes(attribute.Int("events.counted", count))
	return count, nil
}
