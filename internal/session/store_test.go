package session

import (
	"context"
	"testing"
	"time"

	"bloodlink-api/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLifecycle(t *testing.T) {
	store := NewStore(mocks.NewMockRedis())
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.StoreAccessToken(ctx, userID, "tok-1", time.Minute))
	require.NoError(t, store.StoreRefreshToken(ctx, userID, "ref-1", time.Hour))

	valid, err := store.AccessTokenValid(ctx, userID, "tok-1")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = store.AccessTokenValid(ctx, userID, "tok-unknown")
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = store.RefreshTokenValid(ctx, userID, "ref-1")
	require.NoError(t, err)
	assert.True(t, valid)

	require.NoError(t, store.DeleteRefreshToken(ctx, userID, "ref-1"))
	valid, err = store.RefreshTokenValid(ctx, userID, "ref-1")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestIdentityRoundTrip(t *testing.T) {
	store := NewStore(mocks.NewMockRedis())
	ctx := context.Background()
	userID := uuid.New()

	identity, err := store.Identity(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, identity)

	require.NoError(t, store.SaveIdentity(ctx, userID, "donor", "john@example.com", time.Hour))

	identity, err = store.Identity(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "donor", identity.Role)
	assert.Equal(t, "john@example.com", identity.Email)
}

func TestRevokeRemovesPairAndIdentity(t *testing.T) {
	store := NewStore(mocks.NewMockRedis())
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.StoreAccessToken(ctx, userID, "tok-1", time.Minute))
	require.NoError(t, store.StoreRefreshToken(ctx, userID, "ref-1", time.Hour))
	require.NoError(t, store.SaveIdentity(ctx, userID, "donor", "john@example.com", time.Hour))

	require.NoError(t, store.Revoke(ctx, userID, "tok-1", "ref-1"))

	valid, err := store.AccessTokenValid(ctx, userID, "tok-1")
	require.NoError(t, err)
	assert.False(t, valid)

	identity, err := store.Identity(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestRevokeAllClearsEverySession(t *testing.T) {
	store := NewStore(mocks.NewMockRedis())
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	require.NoError(t, store.StoreAccessToken(ctx, userID, "tok-1", time.Minute))
	require.NoError(t, store.StoreAccessToken(ctx, userID, "tok-2", time.Minute))
	require.NoError(t, store.StoreRefreshToken(ctx, userID, "ref-1", time.Hour))
	require.NoError(t, store.SaveIdentity(ctx, userID, "donor", "john@example.com", time.Hour))

	// Another user's session must survive.
	require.NoError(t, store.StoreAccessToken(ctx, otherID, "tok-3", time.Minute))

	require.NoError(t, store.RevokeAll(ctx, userID))

	for _, tokenID := range []string{"tok-1", "tok-2"} {
		valid, err := store.AccessTokenValid(ctx, userID, tokenID)
		require.NoError(t, err)
		assert.False(t, valid)
	}
	valid, err := store.RefreshTokenValid(ctx, userID, "ref-1")
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = store.AccessTokenValid(ctx, otherID, "tok-3")
	require.NoError(t, err)
	assert.True(t, valid)
}
