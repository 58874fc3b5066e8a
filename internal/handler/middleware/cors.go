package middleware

import (
	"log/slog"
	"slices"

	"room-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	// Browsers must be able to read and resend the request id for log correlation.
	allowHeaders := cfg.AllowHeaders
	if !slices.Contains(allowHeaders, HeaderRequestID) {
		allowHeaders = append(slices.Clone(allowHeaders), HeaderRequestID)
	}
	exposeHeaders := cfg.ExposeHeaders
	if !slices.Contains(exposeHeaders, HeaderRequestID) {
		exposeHeaders = append(slices.Clone(exposeHeaders), HeaderRequestID)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    exposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_credentials", cfg.AllowCredentials)
	return cors.New(corsCfg)
}
