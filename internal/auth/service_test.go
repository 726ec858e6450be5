package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stockroomhq/stockroom/internal/storage"
	"github.com/stockroomhq/stockroom/pkg/model"
)

func setupService(t *testing.T) (*Service, *storage.Store) {
	t.Helper()
	store, err := storage.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store, zap.NewNop()), store
}

func TestSaveUserAndAuthenticate(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	u := &model.User{
		Username: "admin",
		Email:    "admin@example.com",
		Role:     model.RoleAdmin,
		Active:   true,
	}
	require.NoError(t, svc.SaveUser(ctx, u, "s3cret"))
	require.Greater(t, u.ID, int64(0))

	got, err := svc.Authenticate(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, model.RoleAdmin, got.Role)

	_, err = svc.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.Authenticate(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSaveUserRequiresPasswordOnCreate(t *testing.T) {
	svc, _ := setupService(t)

	u := &model.User{Username: "clerk", Role: model.RoleUser, Active: true}
	err := svc.SaveUser(context.Background(), u, "")
	assert.ErrorIs(t, err, model.ErrValidation)
}

// Updating a user without a new password keeps the old credential.
func TestSaveUserKeepsPasswordOnUpdate(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	u := &model.User{Username: "clerk", Role: model.RoleUser, Active: true}
	require.NoError(t, svc.SaveUser(ctx, u, "original"))

	u.FullName = "Store Clerk"
	require.NoError(t, svc.SaveUser(ctx, u, ""))

	got, err := svc.Authenticate(ctx, "clerk", "original")
	require.NoError(t, err)
	assert.Equal(t, "Store Clerk", got.FullName)

	require.NoError(t, svc.SaveUser(ctx, u, "rotated"))
	_, err = svc.Authenticate(ctx, "clerk", "original")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = svc.Authenticate(ctx, "clerk", "rotated")
	assert.NoError(t, err)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	u := &model.User{Username: "former", Role: model.RoleUser, Active: true}
	require.NoError(t, svc.SaveUser(ctx, u, "s3cret"))
	require.NoError(t, svc.DeactivateUser(ctx, u.ID))

	_, err := svc.Authenticate(ctx, "former", "s3cret")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
