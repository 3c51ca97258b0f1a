package jwt

import (
	"testing"
	"time"

	"go-vet-clinic/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, access time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  access,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("secret", time.Minute)
	userID := uuid.New()

	access, accessID, err := svc.GenerateAccessToken(userID, "vet@clinic.ph", 2)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "vet@clinic.ph", claims.Email)
	assert.Equal(t, 2, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, accessID, claims.TokenID)

	refresh, refreshID, err := svc.GenerateRefreshToken(userID, "vet@clinic.ph", 2)
	require.NoError(t, err)
	assert.NotEqual(t, accessID, refreshID)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newService("secret", time.Minute).GenerateAccessToken(uuid.New(), "a@b.ph", 1)
	require.NoError(t, err)

	_, err = newService("other", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newService("secret", -time.Minute)
	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.ph", 1)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
