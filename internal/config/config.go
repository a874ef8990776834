// Package config provides application configuration management.
// Configuration is loaded from environment variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8000"`

	// Database (PostgreSQL). DatabaseURL wins over the individual parts when set.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      int    `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD" envDefault:""`
	DBName      string `env:"DB_NAME" envDefault:"contact_db"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`

	// Connection pool bounds
	DBPoolMin int32 `env:"DB_POOL_MIN" envDefault:"1"`
	DBPoolMax int32 `env:"DB_POOL_MAX" envDefault:"20"`

	// Redis stream for contact events. Empty disables publishing.
	RedisURL string `env:"REDIS_URL"`

	// The single frontend origin allowed to call the API.
	CORSAllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:   "/" + c.DBName,
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.DBSSLMode}}.Encode()
	}

	return u.String()
}

// AllowedOrigins returns the configured CORS origin as a list.
func (c *Config) AllowedOrigins() []string {
	origin := strings.TrimSpace(c.CORSAllowedOrigin)
	if origin == "" {
		return nil
	}
	return []string{origin}
}

// Validate checks cross-field constraints env tags cannot express.
func (c *Config) Validate() error {
	if c.DBPoolMin < 0 {
		return errors.New("DB_POOL_MIN must not be negative")
	}
	if c.DBPoolMax < 1 {
		return errors.New("DB_POOL_MAX must be at least 1")
	}
	if c.DBPoolMin > c.DBPoolMax {
		return fmt.Errorf("DB_POOL_MIN (%d) exceeds DB_POOL_MAX (%d)", c.DBPoolMin, c.DBPoolMax)
	}
	return nil
}

// Load reads an optional .env file, parses environment variables and returns a Config.
// Variables already present in the environment take precedence over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// A missing file is fine; the environment alone is a valid source.
		_ = godotenv.Load(f)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
