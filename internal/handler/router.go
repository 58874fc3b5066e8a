package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/metrics"
	"room-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Resource *api.ResourceHandler
}

func NewHandlers(auth *api.AuthHandler, booking *api.BookingHandler, resource *api.ResourceHandler) Handlers {
	return Handlers{Auth: auth, Booking: booking, Resource: resource}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, httpMetrics *metrics.HTTPMetrics, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, httpMetrics)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, httpMetrics *metrics.HTTPMetrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(httpMetrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: requireAuth},
		})

		addRoutes(apiGroup.Group("/resources"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Resource.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Resource.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Resource.Availability},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: requireAuth},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get, Mw: requireAuth},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw[:len(r.Mw):len(r.Mw)], r.Handler)...)
		}
		g.Handle(r.Method, r.Path, h)
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
