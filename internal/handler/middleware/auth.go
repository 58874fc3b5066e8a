package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/cookie"
	"room-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey = "user_id"
	codeAuth     = "unauthorized"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithCode(c, http.StatusUnauthorized, errMissingToken, codeAuth, "Access token required", nil)
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithCode(c, http.StatusUnauthorized, err, codeAuth, "Invalid or expired token", nil)
			return
		}

		SetUserID(c, userID)
		c.Next()
	}
}

// cookie first, then Authorization: Bearer
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func SetUserID(c *gin.Context, userID string) {
	c.Set(ctxUserIDKey, userID)
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}
