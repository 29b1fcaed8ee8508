package query

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playroster/internal/eventlog"
	"playroster/internal/roster"
	"playroster/pkg/rejection"
)

func setup(t *testing.T) (*roster.MemoryStore, *eventlog.MemoryStore, *service) {
	t.Helper()
	children := roster.NewMemoryStore()
	log := eventlog.NewMemoryStore()
	svc := NewService(children, log, time.UTC).(*service)
	return children, log, svc
}

func TestListPublicChildrenHidesPrivateFields(t *testing.T) {
	ctx := context.Background()
	children, _, svc := setup(t)

	child := &roster.Child{
		ID:           uuid.New(),
		Name:         "Alice Johnson",
		Email:        "alice@test.com",
		PasswordHash: "secret-hash",
		Salt:         "secret-salt",
		Status:       roster.Present,
		CurrentItem:  "Basketball",
	}
	require.NoError(t, children.Insert(ctx, child))

	public, err := svc.ListPublicChildren(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)

	raw, err := json.Marshal(public)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "alice@test.com")
	assert.NotContains(t, string(raw), "secret-hash")
	assert.NotContains(t, string(raw), "secret-salt")
	assert.Contains(t, string(raw), "Alice Johnson")
	assert.Contains(t, string(raw), "Basketball")
}

func TestReadMaterializesExpiredRestriction(t *testing.T) {
	ctx := context.Background()
	children, _, svc := setup(t)

	past := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	child := &roster.Child{
		ID:              uuid.New(),
		Name:            "Charlie",
		Status:          roster.Present,
		IsRestricted:    true,
		RestrictedUntil: &past,
	}
	require.NoError(t, children.Insert(ctx, child))

	detail, err := svc.GetChild(ctx, child.ID)
	require.NoError(t, err)
	assert.False(t, detail.Child.IsRestricted)
	assert.Nil(t, detail.Child.RestrictedUntil)

	// The cleared flag is persisted, not just reported.
	stored, err := children.Get(ctx, child.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsRestricted)
}

func TestGetChildIncludesHistory(t *testing.T) {
	ctx := context.Background()
	children, log, svc := setup(t)

	child := &roster.Child{ID: uuid.New(), Name: "Alice", Status: roster.Absent}
	require.NoError(t, children.Insert(ctx, child))
	_, err := log.Append(ctx, &eventlog.Event{ChildID: child.ID, Type: eventlog.TypeCheckIn})
	require.NoError(t, err)
	_, err = log.Append(ctx, &eventlog.Event{ChildID: child.ID, Type: eventlog.TypeCheckOut})
	require.NoError(t, err)

	detail, err := svc.GetChild(ctx, child.ID)
	require.NoError(t, err)
	require.Len(t, detail.Events, 2)
	assert.Equal(t, eventlog.TypeCheckIn, detail.Events[0].Type)
}

func TestListEventsUnknownChild(t *testing.T) {
	_, _, svc := setup(t)

	_, err := svc.ListEvents(context.Background(), uuid.New())
	assert.True(t, rejection.HasKind(err, rejection.KindNotFound))
}
