package eventlog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAssignsIDAndTimestamp(t *testing.T) {
	store := NewMemoryStore()
	childID := uuid.New()

	event := &Event{ChildID: childID, Type: TypeCheckIn}
	id, err := store.Append(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, int64(1), id)
	assert.Equal(t, id, event.ID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestAppendKeepsExplicitTimestamp(t *testing.T) {
	store := NewMemoryStore()
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	event := &Event{ChildID: uuid.New(), Type: TypePunishStart, Timestamp: ts}
	_, err := store.Append(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, ts, event.Timestamp)
}

func TestByChildReturnsInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	childID := uuid.New()
	other := uuid.New()

	for _, typ := range []Type{TypeCheckIn, TypeLoanStart, TypeLoanEnd, TypeCheckOut} {
		_, err := store.Append(ctx, &Event{ChildID: childID, Type: typ})
		require.NoError(t, err)
	}
	_, err := store.Append(ctx, &Event{ChildID: other, Type: TypeCheckIn})
	require.NoError(t, err)

	events, err := store.ByChild(ctx, childID)
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, TypeCheckIn, events[0].Type)
	assert.Equal(t, TypeCheckOut, events[3].Type)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].ID, events[i-1].ID)
	}
}

func TestMostRecentOfType(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	childID := uuid.New()

	none, err := store.MostRecentOfType(ctx, childID, TypePunishStart)
	require.NoError(t, err)
	assert.Nil(t, none)

	early := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	_, err = store.Append(ctx, &Event{ChildID: childID, Type: TypePunishStart, Timestamp: early})
	require.NoError(t, err)
	_, err = store.Append(ctx, &Event{ChildID: childID, Type: TypePunishStart, Timestamp: late})
	require.NoError(t, err)

	found, err := store.MostRecentOfType(ctx, childID, TypePunishStart)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, late, found.Timestamp)
}

func TestCountSince(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	childID := uuid.New()

	dayStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	yesterday := dayStart.Add(-2 * time.Hour)
	morning := dayStart.Add(9 * time.Hour)
	noon := dayStart.Add(12 * time.Hour)

	for _, ts := range []time.Time{yesterday, morning, noon} {
		_, err := store.Append(ctx, &Event{ChildID: childID, Type: TypePunishEnd, Timestamp: ts})
		require.NoError(t, err)
	}

	count, err := store.CountSince(ctx, childID, TypePunishEnd, dayStart)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
