//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"room-booking/internal/pkg/jwt"
	"room-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	validator := usecase.NewTokenValidator(svc)

	t.Run("valid token yields user id", func(t *testing.T) {
		token, err := svc.GenerateAccessToken("alice")
		require.NoError(t, err)

		userID, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", userID)
	})

	t.Run("token without user id", func(t *testing.T) {
		token, err := svc.GenerateAccessToken("")
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("foreign token", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateAccessToken("alice")
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.Error(t, err)
	})
}
