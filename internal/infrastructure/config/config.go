package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/Harekrushna7138/ticket-service-backend/internal/shared/config"
)

const envPrefix = "TICKET"

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Tickets      sharedConfig.TicketConfig       `mapstructure:"tickets"`
	Notification sharedConfig.NotificationConfig `mapstructure:"notification"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	RateLimit    sharedConfig.RateLimitConfig    `mapstructure:"ratelimit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml when present, then environment variables.
// configFile, when set, replaces the search paths. A missing config file is not an error.
func Load(env, configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := applyLegacyEnv(v); err != nil {
		return nil, err
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := resolveJWTSecret(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// applyLegacyEnv honours the unprefixed variables used by existing deployments.
// Prefixed variables win when both are set.
func applyLegacyEnv(v *viper.Viper) error {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" && os.Getenv(envPrefix+"_DATABASE_DSN") == "" {
		v.Set("database.dsn", dsn)
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" && os.Getenv(envPrefix+"_AUTH_JWT_SECRET") == "" {
		v.Set("auth.jwt.secret", secret)
	}
	if port := os.Getenv("PORT"); port != "" && os.Getenv(envPrefix+"_SERVER_PORT") == "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return fmt.Errorf("invalid PORT %q", port)
		}
		v.Set("server.port", p)
	}
	return nil
}

// resolveJWTSecret refuses to start a release server without a signing secret.
// Other modes get a random per-process secret.
func resolveJWTSecret(config *Config) error {
	if config.Auth.JWT.Secret != "" {
		return nil
	}
	if config.Server.IsProduction() {
		return fmt.Errorf("auth.jwt.secret must be set in %s mode", config.Server.Mode)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("failed to generate jwt secret: %w", err)
	}
	config.Auth.JWT.Secret = hex.EncodeToString(buf)
	config.Auth.JWT.Ephemeral = true
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "postgresql://localhost/support_ticketing_system")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.migration_tool", "goose")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.source_level", "warn")

	// Auth defaults; the jwt secret deliberately has none
	v.SetDefault("auth.jwt.secret", "")
	v.SetDefault("auth.jwt.expiration_hours", 24)
	v.SetDefault("auth.password.argon2.memory", 19*1024)
	v.SetDefault("auth.password.argon2.iterations", 2)
	v.SetDefault("auth.password.argon2.parallelism", 1)
	v.SetDefault("auth.enforce", false)
	v.SetDefault("auth.policy_path", "")

	v.SetDefault("tickets.enforce_transitions", false)

	// Notification defaults
	v.SetDefault("notification.sink", "log")
	v.SetDefault("notification.async", false)
	v.SetDefault("notification.record", false)
	v.SetDefault("notification.templates_path", "")
	v.SetDefault("notification.redis_channel", "ticket:notifications")

	// Email defaults
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "support@ticketing.local")
	v.SetDefault("email.from_name", "Support Desk")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Rate limit defaults
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.per_minute", 10)
	v.SetDefault("ratelimit.per_hour", 100)
}
