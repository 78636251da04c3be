package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the server runs in gin release mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Mode == "release"
}

type DatabaseConfig struct {
	// Driver is one of postgres, mysql, sqlite
	Driver          string `mapstructure:"driver"`
	DSN             string `mapstructure:"dsn"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	// MigrationTool is goose or golang-migrate; only used for postgres
	MigrationTool string `mapstructure:"migration_tool"`
}

func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Minute
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	// SourceLevel is the lowest level that gets a source location attached
	SourceLevel string `mapstructure:"source_level"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
	// Ephemeral is set when Secret was generated at startup
	Ephemeral bool `mapstructure:"-"`
}

func (j *JWTConfig) TTL() time.Duration {
	return time.Duration(j.ExpirationHours) * time.Hour
}

type Argon2Config struct {
	Memory      uint32 `mapstructure:"memory"`
	Iterations  uint32 `mapstructure:"iterations"`
	Parallelism uint8  `mapstructure:"parallelism"`
}

type PasswordConfig struct {
	Argon2 Argon2Config `mapstructure:"argon2"`
}

type AuthConfig struct {
	JWT      JWTConfig      `mapstructure:"jwt"`
	Password PasswordConfig `mapstructure:"password"`
	// Enforce requires a bearer token and a policy match on protected routes
	Enforce    bool   `mapstructure:"enforce"`
	PolicyPath string `mapstructure:"policy_path"`
}

type TicketConfig struct {
	EnforceTransitions bool `mapstructure:"enforce_transitions"`
}

type NotificationConfig struct {
	// Sink is one of log, smtp, redis
	Sink          string `mapstructure:"sink"`
	Async         bool   `mapstructure:"async"`
	Record        bool   `mapstructure:"record"`
	TemplatesPath string `mapstructure:"templates_path"`
	RedisChannel  string `mapstructure:"redis_channel"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	PerMinute int  `mapstructure:"per_minute"`
	PerHour   int  `mapstructure:"per_hour"`
}
