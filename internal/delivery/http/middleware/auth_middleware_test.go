package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bloodlink-api/config"
	"bloodlink-api/internal/mocks"
	"bloodlink-api/internal/session"
	"bloodlink-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) (*AuthMiddleware, *jwt.JWTService, *session.Store) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret-key",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
	sessions := session.NewStore(mocks.NewMockRedis())
	return NewAuthMiddleware(jwtService, sessions), jwtService, sessions
}

func okHandler(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true

		userID, ok := GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.NotEqual(t, uuid.Nil, userID)

		role, ok := GetRoleFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "donor", role)

		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	mw, jwtService, sessions := newTestAuth(t)
	userID := uuid.New()

	token, tokenID, err := jwtService.GenerateAccessToken(userID, "john@example.com", "donor")
	require.NoError(t, err)
	require.NoError(t, sessions.StoreAccessToken(context.Background(), userID, tokenID, time.Minute))

	called := false
	req := httptest.NewRequest(http.MethodGet, "/api/v1/donations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.Authenticate(okHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAuthenticateRejectsRevokedToken(t *testing.T) {
	mw, jwtService, _ := newTestAuth(t)
	userID := uuid.New()

	// Valid signature, but the token was never stored (or was revoked).
	token, _, err := jwtService.GenerateAccessToken(userID, "john@example.com", "donor")
	require.NoError(t, err)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/api/v1/donations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.Authenticate(okHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	mw, jwtService, sessions := newTestAuth(t)
	userID := uuid.New()

	token, tokenID, err := jwtService.GenerateRefreshToken(userID, "john@example.com", "donor")
	require.NoError(t, err)
	require.NoError(t, sessions.StoreRefreshToken(context.Background(), userID, tokenID, time.Hour))

	called := false
	req := httptest.NewRequest(http.MethodGet, "/api/v1/donations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.Authenticate(okHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	mw, _, _ := newTestAuth(t)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/api/v1/donations", nil)
	rec := httptest.NewRecorder()

	mw.Authenticate(okHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	handler := RequireHospital(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", nil)
	req = req.WithContext(context.WithValue(req.Context(), RoleKey, "donor"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
