package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notificationApp "github.com/Harekrushna7138/ticket-service-backend/internal/application/notification"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/auth"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/config"
	"github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/http/middleware"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and handlers.
// It wires everything together and provides Shutdown() for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares; permissionMiddleware and rateLimiter are nil when disabled
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Credentials and notifications
	hasher     *auth.Argon2PasswordHasher
	jwtSvc     *auth.JWTService
	dispatcher *notificationApp.Dispatcher
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Credentials
	c.initInfrastructure()

	// Section 2: Notifications - Templates, Sink, Dispatcher
	if err := c.initNotifications(); err != nil {
		return nil, err
	}

	// Section 3: Middlewares - Auth, Policies, Throttling
	if err := c.initMiddlewares(); err != nil {
		return nil, err
	}

	// Section 4: Use Cases
	c.initUseCases()

	// Section 5: Handlers
	if err := c.initHandlers(); err != nil {
		return nil, err
	}

	return c, nil
}

// Shutdown waits for queued notifications and releases the Redis client.
func (c *Container) Shutdown() {
	if c.dispatcher != nil {
		c.dispatcher.Wait()
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
