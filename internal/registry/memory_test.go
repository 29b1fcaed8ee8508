package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRelease(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Insert(ctx, &Item{Name: "Basketball", IsAvailable: true}))

	require.NoError(t, store.Acquire(ctx, "Basketball"))

	item, err := store.FindByName(ctx, "Basketball")
	require.NoError(t, err)
	assert.False(t, item.IsAvailable)

	assert.ErrorIs(t, store.Acquire(ctx, "Basketball"), ErrNotAvailable)

	require.NoError(t, store.Release(ctx, "Basketball"))
	item, err = store.FindByName(ctx, "Basketball")
	require.NoError(t, err)
	assert.True(t, item.IsAvailable)

	// Release is idempotent.
	require.NoError(t, store.Release(ctx, "Basketball"))
}

func TestAcquireUnknownItem(t *testing.T) {
	store := NewMemoryStore()
	assert.ErrorIs(t, store.Acquire(context.Background(), "Unicycle"), ErrNotFound)
	assert.ErrorIs(t, store.Release(context.Background(), "Unicycle"), ErrNotFound)
}

func TestInsertDuplicate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Insert(ctx, &Item{Name: "Rope", IsAvailable: true}))
	assert.ErrorIs(t, store.Insert(ctx, &Item{Name: "Rope", IsAvailable: true}), ErrDuplicate)
}

func TestConcurrentAcquireSingleWinner(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Insert(ctx, &Item{Name: "Football", IsAvailable: true}))

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Acquire(ctx, "Football"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes, "only one concurrent acquire should succeed")
}

func TestServiceAddItem(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	item, err := svc.AddItem(ctx, "  Tennis Ball ")
	require.NoError(t, err)
	assert.Equal(t, "Tennis Ball", item.Name)
	assert.True(t, item.IsAvailable)

	_, err = svc.AddItem(ctx, "")
	assert.Error(t, err)
}
