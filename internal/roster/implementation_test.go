package roster

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playroster/pkg/rejection"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), nil)

	child, err := svc.Register(ctx, "Alice Johnson", "alice@test.com", "child123")
	require.NoError(t, err)
	assert.Equal(t, Absent, child.Status)
	assert.False(t, child.IsRestricted)
	assert.Nil(t, child.RestrictedUntil)
	assert.Empty(t, child.CurrentItem)
	assert.NotEmpty(t, child.PasswordHash)
	assert.NotEqual(t, "child123", child.PasswordHash)

	authed, err := svc.Authenticate(ctx, "alice@test.com", "child123")
	require.NoError(t, err)
	assert.Equal(t, child.ID, authed.ID)

	_, err = svc.Authenticate(ctx, "alice@test.com", "wrong")
	assert.True(t, rejection.HasKind(err, rejection.KindUnauthorized))

	_, err = svc.Authenticate(ctx, "nobody@test.com", "child123")
	assert.True(t, rejection.HasKind(err, rejection.KindUnauthorized))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore(), nil)

	_, err := svc.Register(ctx, "Bob Smith", "bob@test.com", "child123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Bobby Smith", "bob@test.com", "other456")
	assert.True(t, rejection.HasKind(err, rejection.KindConflict))
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)

	_, err := svc.Register(context.Background(), "", "x@test.com", "pw")
	assert.True(t, rejection.HasKind(err, rejection.KindInvalidInput))

	_, err = svc.Create(context.Background(), "   ")
	assert.True(t, rejection.HasKind(err, rejection.KindInvalidInput))
}

func TestChildSerializationHidesCredentials(t *testing.T) {
	child := &Child{Name: "Alice", Email: "alice@test.com", PasswordHash: "h", Salt: "s"}

	raw, err := json.Marshal(child)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "h\"")
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "salt")
}

func TestPublicProjectionOmitsEmail(t *testing.T) {
	child := &Child{Name: "Alice", Email: "alice@test.com", Status: Present, CurrentItem: "Rope"}

	raw, err := json.Marshal(child.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "alice@test.com")
	assert.Contains(t, string(raw), "Rope")
}
