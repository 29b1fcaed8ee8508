package registry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"playroster/pkg/rejection"
)

// PostgresStore persists the item catalog. The availability flip is a
// conditional UPDATE so the row's affected count decides the race.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByName(ctx context.Context, name string) (*Item, error) {
	item := &Item{}
	err := s.db.QueryRowContext(ctx, `
		SELECT name, is_available, created_at
		FROM items
		WHERE name = $1
	`, name).Scan(&item.Name, &item.IsAvailable, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, rejection.Wrap(rejection.KindUnavailable, "query item", err)
	}
	return item, nil
}

func (s *PostgresStore) Insert(ctx context.Context, item *Item) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (name, is_available)
		VALUES ($1, $2)
	`, item.Name, item.IsAvailable)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicate
		}
		return rejection.Wrap(rejection.KindUnavailable, "insert item", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, is_available, created_at
		FROM items
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, rejection.Wrap(rejection.KindUnavailable, "list items", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.Name, &item.IsAvailable, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) Acquire(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE items
		SET is_available = FALSE
		WHERE name = $1 AND is_available = TRUE
	`, name)
	if err != nil {
		return rejection.Wrap(rejection.KindUnavailable, "acquire item", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return rejection.Wrap(rejection.KindUnavailable, "acquire item", err)
	}
	if affected == 0 {
		// Lost the race or unknown name; distinguish the two.
		if _, err := s.FindByName(ctx, name); err != nil {
			return err
		}
		return ErrNotAvailable
	}
	return nil
}

func (s *PostgresStore) Release(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE items
		SET is_available = TRUE
		WHERE name = $1
	`, name)
	if err != nil {
		return rejection.Wrap(rejection.KindUnavailable, "release item", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return rejection.Wrap(rejection.KindUnavailable, "release item", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
