package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/config"
	"github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/http/middleware"
	"github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/http/routes"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"

	_ "github.com/Harekrushna7138/ticket-service-backend/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log.Named("http")))
	r.engine.Use(middleware.Recovery(r.log.Named("http")))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/", r.hdlrs.systemHandler.Root)
	r.engine.GET("/health", r.hdlrs.systemHandler.Health)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	guard := r.guard()

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler: r.hdlrs.userHandler,
		Guard:       guard,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.hdlrs.ticketHandler,
		Guard:         guard,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.hdlrs.notificationHandler,
		Guard:               guard,
	})
}

// guard requires a token and a matching policy when auth.enforce is on.
// Otherwise a bearer token is parsed when present and nothing is rejected.
func (r *Router) guard() routes.Guard {
	var guard routes.Guard

	if r.permissionMiddleware != nil {
		guard.Authenticate = r.authMiddleware.RequireAuth()
		guard.Authorize = r.permissionMiddleware.RequirePermission
	} else {
		guard.Authenticate = r.authMiddleware.OptionalAuth()
	}

	if r.rateLimiter != nil {
		guard.Throttle = r.rateLimiter.Limit
	}

	return guard
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
