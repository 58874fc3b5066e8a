//go:build unit

package authtest

import (
	"testing"
	"time"

	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessTokenDuration)
	token, err := service.GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string) string {
	t.Helper()
	// Negative lifetime: the token is expired the moment it is signed.
	service := jwt.NewService(h.cfg.Secret, -time.Minute)
	token, err := service.GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}
