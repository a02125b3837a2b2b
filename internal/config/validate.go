package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	for _, p := range c.Auth.PublicPrefixes() {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("auth.public_prefixes: %q must start with /", p)
		}
	}

	if err := c.Audit.validate(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	if err := c.Maintenance.validate(); err != nil {
		return fmt.Errorf("maintenance: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 when rate limiting is enabled (got %d)", c.RateLimit.Burst)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (a AuditConfig) validate() error {
	if a.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", a.QueueSize)
	}
	if a.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", a.MaxRetries)
	}
	if a.RetryDelay <= 0 {
		return fmt.Errorf("retry_delay must be > 0 (got %v)", a.RetryDelay)
	}
	if a.MaxRetryDelay < a.RetryDelay {
		return fmt.Errorf("max_retry_delay (%v) must be >= retry_delay (%v)", a.MaxRetryDelay, a.RetryDelay)
	}
	return nil
}

func (m MaintenanceConfig) validate() error {
	if m.AuditRetentionDays < 0 {
		return fmt.Errorf("audit_retention_days must be >= 0 (got %d)", m.AuditRetentionDays)
	}
	if m.Schedule == "" {
		return nil
	}
	if _, err := cron.ParseStandard(m.Schedule); err != nil {
		return fmt.Errorf("schedule %q: %w", m.Schedule, err)
	}
	return nil
}
