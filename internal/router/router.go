// Package router assembles the middleware chain and route tree.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bellezapura/salon-api/config"
	authhandler "github.com/bellezapura/salon-api/internal/handler/auth"
	bookinghandler "github.com/bellezapura/salon-api/internal/handler/booking"
	calendarhandler "github.com/bellezapura/salon-api/internal/handler/calendar"
	cataloghandler "github.com/bellezapura/salon-api/internal/handler/catalog"
	notificationhandler "github.com/bellezapura/salon-api/internal/handler/notification"
	reporthandler "github.com/bellezapura/salon-api/internal/handler/report"
	userhandler "github.com/bellezapura/salon-api/internal/handler/user"

	"github.com/bellezapura/salon-api/internal/handler"
	"github.com/bellezapura/salon-api/internal/middleware"
	"github.com/bellezapura/salon-api/internal/model"
	authservice "github.com/bellezapura/salon-api/internal/service/auth"
	"github.com/bellezapura/salon-api/pkg/logger"
	"github.com/bellezapura/salon-api/pkg/metrics"
)

type Handlers struct {
	Auth         *authhandler.Handler
	Catalog      *cataloghandler.Handler
	Booking      *bookinghandler.Handler
	User         *userhandler.Handler
	Calendar     *calendarhandler.Handler
	Report       *reporthandler.Handler
	Notification *notificationhandler.Handler
}

// New builds the engine. Three tiers: public (login, catalog reads),
// authenticated (booking flows, own profile), admin (management, reports,
// reminders, calendar).
func New(cfg *config.Config, log *logger.Logger, m *metrics.Metrics, authSvc *authservice.Service, h Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	handler.RegisterValidators()
	engine := gin.New()

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.Metrics(m),
		middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: middleware.DefaultCORSConfig().AllowedMethods,
			AllowedHeaders: middleware.DefaultCORSConfig().AllowedHeaders,
		}),
		middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware(),
		middleware.Timeout(cfg.Server.RequestTimeout),
	)

	engine.GET("/health/live", handler.LivenessCheck)
	engine.GET("/health/ready", handler.ReadinessCheck)
	engine.GET("/metrics", handler.MetricsHandler())

	api := engine.Group("/api/v1")

	public := api.Group("")
	h.Auth.RegisterRoutes(public.Group("/auth"))
	h.Catalog.RegisterPublicRoutes(public)

	authed := api.Group("", middleware.Auth(authSvc))
	h.Booking.RegisterRoutes(authed)
	h.User.RegisterRoutes(authed)

	admin := api.Group("/admin", middleware.Auth(authSvc), middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
	h.Catalog.RegisterAdminRoutes(admin)
	h.Booking.RegisterAdminRoutes(admin)
	h.User.RegisterAdminRoutes(admin)
	h.Calendar.RegisterRoutes(admin)
	h.Report.RegisterRoutes(admin)
	h.Notification.RegisterRoutes(admin)

	return engine
}
