package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Audit       AuditConfig       `yaml:"audit"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Request-Id,Retry-After"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"campus-collab"`
	PasswordHashCost int    `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	// PublicPrefixesRaw lists comma-separated path prefixes that bypass the auth gate.
	PublicPrefixesRaw string `yaml:"public_prefixes" env:"AUTH_PUBLIC_PREFIXES" env-default:"/api/auth/,/api/files/"`
}

// PublicPrefixes returns the parsed bypass prefixes.
func (c AuthConfig) PublicPrefixes() []string {
	return splitList(c.PublicPrefixesRaw)
}

// AuditConfig holds settings of the asynchronous audit writer.
type AuditConfig struct {
	QueueSize     int           `yaml:"queue_size"     env:"AUDIT_QUEUE_SIZE"     env-default:"1024"`
	MaxRetries    int           `yaml:"max_retries"    env:"AUDIT_MAX_RETRIES"    env-default:"3"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"AUDIT_RETRY_DELAY"    env-default:"100ms"`
	MaxRetryDelay time.Duration `yaml:"max_retry_delay" env:"AUDIT_MAX_RETRY_DELAY" env-default:"2s"`
	WriteTimeout  time.Duration `yaml:"write_timeout"  env:"AUDIT_WRITE_TIMEOUT"  env-default:"5s"`
	DrainTimeout  time.Duration `yaml:"drain_timeout"  env:"AUDIT_DRAIN_TIMEOUT"  env-default:"10s"`
}

// MaintenanceConfig holds settings of periodic cleanup jobs.
type MaintenanceConfig struct {
	// Schedule is a standard 5-field cron spec; empty disables the in-process scheduler.
	Schedule           string `yaml:"schedule"             env:"MAINTENANCE_SCHEDULE"             env-default:"0 3 * * *"`
	AuditRetentionDays int    `yaml:"audit_retention_days" env:"MAINTENANCE_AUDIT_RETENTION_DAYS" env-default:"365"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	// RequestsPerMinute of 0 disables rate limiting.
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"   env-default:"300"`
	Burst             int `yaml:"burst"               env:"RATE_LIMIT_BURST" env-default:"50"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
