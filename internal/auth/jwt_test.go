package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refearn/config"
)

func testJWTConfig(expiry time.Duration) *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", Expiry: expiry, Issuer: "refearn"}
}

func TestTokenRoundtrip(t *testing.T) {
	cfg := testJWTConfig(time.Hour)
	token, err := GenerateToken(cfg, "u_abc123")
	require.NoError(t, err)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "u_abc123", claims.UserID)
	assert.Equal(t, "refearn", claims.Issuer)
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testJWTConfig(-time.Minute)
	token, err := GenerateToken(cfg, "u_abc123")
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken(testJWTConfig(time.Hour), "u_abc123")
	require.NoError(t, err)

	other := &config.JWTConfig{Secret: "other-secret", Expiry: time.Hour, Issuer: "refearn"}
	_, err = ParseToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	_, err := ParseToken(testJWTConfig(time.Hour), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
