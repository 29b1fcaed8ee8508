package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playroster/pkg/rejection"
)

func TestCreateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	a, err := svc.Create(ctx, "Admin@WDM.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "admin@wdm.com", a.Email)
	assert.NotEqual(t, "password", a.PasswordHash)

	authed, err := svc.Authenticate(ctx, "admin@wdm.com", "password")
	require.NoError(t, err)
	assert.Equal(t, a.ID, authed.ID)

	_, err = svc.Authenticate(ctx, "admin@wdm.com", "nope")
	assert.True(t, rejection.HasKind(err, rejection.KindUnauthorized))
}

func TestCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	_, err := svc.Create(ctx, "admin@wdm.com", "password")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "admin@wdm.com", "password")
	assert.True(t, rejection.HasKind(err, rejection.KindConflict))
}
