package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-123", secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseJWTRejectsBadInput(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateJWT("user-123", secret)
		require.NoError(t, err)

		_, err = ParseJWT(token, "some-other-secret")
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := ParseJWT("not.a.token", secret)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		// Sign a token that expired an hour ago
		claims := Claims{
			UserID: "user-123",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})
}
