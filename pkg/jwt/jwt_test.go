package jwt

import (
	"testing"
	"time"

	"bloodlink-api/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "donor@example.com", "donor")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "donor@example.com", claims.Email)
	assert.Equal(t, "donor", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenCarriesType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "hospital@example.com", "hospital")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
	assert.Equal(t, "hospital", claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "a@b.c", "donor")
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := testService().ValidateToken("not-a-token")
	assert.Error(t, err)
}
