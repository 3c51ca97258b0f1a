package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenKeys(t *testing.T) {
	userID := uuid.MustParse("5f0c7d1e-8a52-4d8e-9a55-3f1b2c4d5e6f")

	assert.Equal(t, "access_token:5f0c7d1e-8a52-4d8e-9a55-3f1b2c4d5e6f:abc", AccessTokenKey(userID, "abc"))
	assert.Equal(t, "refresh_token:5f0c7d1e-8a52-4d8e-9a55-3f1b2c4d5e6f:*", RefreshTokenKey(userID, "*"))
	assert.Equal(t, "email_verification:tok", VerificationKey("tok"))
}
