//go:build unit

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps the user id", func(t *testing.T) {
		svc := NewService("secret", time.Hour)

		token, err := svc.GenerateAccessToken("alice")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.UserID)
		assert.Equal(t, "alice", claims.Subject)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, err := svc.GenerateAccessToken("alice")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("secret", time.Hour).GenerateAccessToken("alice")
		require.NoError(t, err)

		_, err = NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
