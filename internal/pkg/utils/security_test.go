package utils

import (
	"net/http"
	"sehatnama-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWT(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", time.Now().Add(time.Hour))
	require.NoError(t, err)

	sessionID, err := ParseSessionJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)

	t.Run("Wrong Secret", func(t *testing.T) {
		_, err := ParseSessionJWT(token, "other")
		assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCode(err))
	})

	t.Run("Expired", func(t *testing.T) {
		expired, err := GenerateSessionJWT("session-1", "secret", time.Now().Add(-time.Minute))
		require.NoError(t, err)
		_, err = ParseSessionJWT(expired, "secret")
		assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCode(err))
	})

	t.Run("Foreign Issuer", func(t *testing.T) {
		foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
			SessionID:        "session-1",
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = ParseSessionJWT(foreign, "secret")
		assert.Error(t, err)
	})

	t.Run("Unsigned Token", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{SessionID: "session-1"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = ParseSessionJWT(unsigned, "secret")
		assert.Error(t, err)
	})
}

func TestPasswordHash(t *testing.T) {
	hashed, err := HashPassword("Secret#123")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("Secret#123", hashed))
	assert.False(t, CheckPasswordHash("secret#123", hashed))
}
