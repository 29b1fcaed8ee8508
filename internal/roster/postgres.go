package roster

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"playroster/pkg/rejection"
)

// PostgresStore persists child projections in the children table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const childColumns = `id, name, email, password_hash, salt, status, is_restricted, restricted_until, current_item, created_at, updated_at, version`

func scanChild(row interface{ Scan(...any) error }) (*Child, error) {
	child := &Child{}
	var email, passwordHash, salt sql.NullString
	var restrictedUntil sql.NullTime
	err := row.Scan(
		&child.ID,
		&child.Name,
		&email,
		&passwordHash,
		&salt,
		&child.Status,
		&child.IsRestricted,
		&restrictedUntil,
		&child.CurrentItem,
		&child.CreatedAt,
		&child.UpdatedAt,
		&child.Version,
	)
	if err != nil {
		return nil, err
	}
	child.Email = email.String
	child.PasswordHash = passwordHash.String
	child.Salt = salt.String
	if restrictedUntil.Valid {
		t := restrictedUntil.Time
		child.RestrictedUntil = &t
	}
	return child, nil
}

func (s *PostgresStore) Insert(ctx context.Context, child *Child) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO children (id, name, email, password_hash, salt, status, is_restricted, restricted_until, current_item, version)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, 1)
	`, child.ID, child.Name, child.Email, child.PasswordHash, child.Salt,
		child.Status, child.IsRestricted, child.RestrictedUntil, child.CurrentItem)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return rejection.Wrap(rejection.KindUnavailable, "insert child", err)
	}
	child.Version = 1
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*Child, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+childColumns+` FROM children WHERE id = $1`, id)
	child, err := scanChild(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, rejection.Wrap(rejection.KindUnavailable, "get child", err)
	}
	return child, nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*Child, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+childColumns+` FROM children WHERE email = $1`, email)
	child, err := scanChild(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, rejection.Wrap(rejection.KindUnavailable, "find child by email", err)
	}
	return child, nil
}

func (s *PostgresStore) Update(ctx context.Context, child *Child) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE children
		SET status = $1, is_restricted = $2, restricted_until = $3, current_item = $4,
		    version = version + 1, updated_at = NOW()
		WHERE id = $5
	`, child.Status, child.IsRestricted, child.RestrictedUntil, child.CurrentItem, child.ID)
	if err != nil {
		return rejection.Wrap(rejection.KindUnavailable, "update child", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return rejection.Wrap(rejection.KindUnavailable, "update child", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	child.Version++
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*Child, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+childColumns+` FROM children ORDER BY name ASC`)
	if err != nil {
		return nil, rejection.Wrap(rejection.KindUnavailable, "list children", err)
	}
	defer rows.Close()

	var children []*Child
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		children = append(children, child)
	}
	return children, rows.Err()
}
