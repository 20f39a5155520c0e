package auth

import (
	"testing"
	"time"

	"lokerhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 168 * time.Hour,
		Issuer:        "lokerhub",
	}
}

func TestAccessTokenRoundtrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateAccessToken(cfg, 42, "seeker@example.com", "JOBSEEKER")
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "seeker@example.com", claims.Email)
	assert.Equal(t, "JOBSEEKER", claims.Role)
	assert.Equal(t, "lokerhub", claims.Issuer)
}

func TestParseAccessTokenRejects(t *testing.T) {
	cfg := testJWTConfig()

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseAccessToken(cfg, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := testJWTConfig()
		other.AccessSecret = "some-other-secret"
		token, err := GenerateAccessToken(other, 1, "a@b.c", "COMPANY")
		require.NoError(t, err)
		_, err = ParseAccessToken(cfg, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		short := testJWTConfig()
		short.AccessExpiry = -time.Minute
		token, err := GenerateAccessToken(short, 1, "a@b.c", "JOBSEEKER")
		require.NoError(t, err)
		_, err = ParseAccessToken(cfg, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		token, err := GenerateRefreshToken(cfg, 42)
		require.NoError(t, err)
		_, err = ParseAccessToken(cfg, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
