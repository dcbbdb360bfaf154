// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SessionSecret string `env:"RACKLINE_SESSION_SECRET,required"`
	ServerHost    string `env:"RACKLINE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"RACKLINE_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"RACKLINE_ENV" envDefault:"development"`
	LogLevel      string `env:"RACKLINE_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL     string `env:"RACKLINE_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"RACKLINE_CACHE_PREFIX" envDefault:"rkl:"`    // Redis key prefix
	CacheTTL     int    `env:"RACKLINE_CACHE_TTL" envDefault:"3600"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"RACKLINE_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// GeoIP configuration
	GeoIPDBPath string `env:"RACKLINE_GEOIP_DB_PATH"` // Path to GeoLite2-Country.mmdb file

	// Backup configuration
	BackupSchedule string `env:"RACKLINE_BACKUP_SCHEDULE" envDefault:"0 3 * * *"` // Cron expression for snapshot backups

	// Rate limiting
	RateLimitRPS   float64 `env:"RACKLINE_RATE_LIMIT_RPS" envDefault:"10"` // Sustained requests per second per client
	RateLimitBurst int     `env:"RACKLINE_RATE_LIMIT_BURST" envDefault:"20"`

	// AI content drafting
	OpenAIAPIKey string `env:"RACKLINE_OPENAI_API_KEY"` // Optional; disables drafting when empty
	OpenAIModel  string `env:"RACKLINE_OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Bootstrap admin credentials, applied once on an empty store.
	AdminUsername string `env:"RACKLINE_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"RACKLINE_ADMIN_PASSWORD"`

	// Seeding configuration
	DoSeed bool `env:"RACKLINE_DO_SEED" envDefault:"false"` // Enable demo data seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// GeoIPEnabled returns true if GeoIP database is configured.
func (c Config) GeoIPEnabled() bool {
	return c.GeoIPDBPath != ""
}

// AIEnabled returns true if OpenAI drafting is configured.
func (c Config) AIEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("RACKLINE_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("RACKLINE_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("RACKLINE_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
