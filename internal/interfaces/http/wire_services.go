package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	notificationApp "github.com/Harekrushna7138/ticket-service-backend/internal/application/notification"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/auth"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/config"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/email"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/permission"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/pubsub"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/ratelimit"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/template"
	"github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/http/middleware"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/goroutine"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/services/markdown"
)

const redisPingTimeout = 3 * time.Second

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Credentials
// ============================================================

func (c *Container) initInfrastructure() {
	cfg := c.cfg

	if needsRedis(cfg) {
		c.redis = initRedis(cfg, c.log)
	}

	c.repos = newRepositories(c.db, c.log)

	c.hasher = auth.NewArgon2PasswordHasherFromConfig(cfg.Auth.Password.Argon2)
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.TTL())
	if cfg.Auth.JWT.Ephemeral {
		c.log.Warnw("auth.jwt.secret is not set, using a per-process secret; tokens will not survive a restart")
	}
}

func needsRedis(cfg *config.Config) bool {
	return cfg.Notification.Sink == pubsub.SinkNameRedis || cfg.RateLimit.Enabled
}

// initRedis connects lazily; an unreachable server only degrades the features using it.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis", "addr", cfg.Redis.GetAddr(), "error", err)
		return redisClient
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient
}

// ============================================================
// Section 2: Notifications - Templates, Sink, Dispatcher
// ============================================================

func (c *Container) initNotifications() error {
	cfg := c.cfg.Notification

	loader := template.NewNotificationTemplateLoader(cfg.TemplatesPath, c.log.Named("templates"))
	if err := loader.Load(); err != nil {
		return fmt.Errorf("failed to load notification templates: %w", err)
	}

	sink, err := newNotificationSink(c.cfg, c.redis, c.log.Named("notification"))
	if err != nil {
		return err
	}

	var opts []notificationApp.DispatcherOption
	if cfg.Async {
		opts = append(opts, notificationApp.WithAsync(goroutine.NewGroup(c.log)))
	}
	if cfg.Record {
		opts = append(opts, notificationApp.WithRecorder(c.repos.notificationRepo))
	}

	c.dispatcher = notificationApp.NewDispatcher(sink, loader, c.log.Named("notification"), opts...)
	c.log.Infow("notification dispatcher ready",
		"sink", sink.Name(),
		"async", cfg.Async,
		"record", cfg.Record,
	)
	return nil
}

// newNotificationSink picks the delivery backend named by notification.sink.
func newNotificationSink(cfg *config.Config, redisClient *redis.Client, log logger.Interface) (notification.Sink, error) {
	switch cfg.Notification.Sink {
	case email.SinkNameLog, "":
		return email.NewLogSink(log), nil
	case email.SinkNameSMTP:
		return email.NewSMTPSink(email.SMTPConfigFrom(cfg.Email), markdown.NewMarkdownService()), nil
	case pubsub.SinkNameRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("notification sink %q needs a redis client", cfg.Notification.Sink)
		}
		return pubsub.NewRedisNotificationSink(redisClient, cfg.Notification.RedisChannel, log), nil
	default:
		return nil, fmt.Errorf("unknown notification sink %q", cfg.Notification.Sink)
	}
}

// ============================================================
// Section 3: Middlewares - Auth, Policies, Throttling
// ============================================================

func (c *Container) initMiddlewares() error {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log.Named("auth"))

	if c.cfg.Auth.Enforce {
		enforcer, err := permission.NewEnforcer(c.db, c.cfg.Auth.PolicyPath, c.log.Named("permission"))
		if err != nil {
			return fmt.Errorf("failed to create permission enforcer: %w", err)
		}
		if err := permission.InitDefaultPermissions(enforcer, c.log.Named("permission")); err != nil {
			return fmt.Errorf("failed to seed default permissions: %w", err)
		}
		c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log.Named("permission"))
	}

	if c.cfg.RateLimit.Enabled {
		budget := ratelimit.Budget{
			PerMinute: c.cfg.RateLimit.PerMinute,
			PerHour:   c.cfg.RateLimit.PerHour,
		}
		c.rateLimiter = middleware.NewRateLimiter(ratelimit.NewRedisRateLimiter(c.redis), budget, c.log.Named("ratelimit"))
	}

	return nil
}
