package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServiceEnvironment string        `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	HTTPAddr           string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	PostgresDSN             string        `envconfig:"POSTGRES_DSN" required:"true"`
	PostgresMaxOpenConns    int           `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"20"`
	PostgresMaxIdleConns    int           `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"10"`
	PostgresConnMaxLifetime time.Duration `envconfig:"POSTGRES_CONN_MAX_LIFETIME" default:"30m"`
	RunMigrations           bool          `envconfig:"RUN_MIGRATIONS" default:"true"`

	// AnalyticsAPIKey is the shared bearer secret of the public analytics endpoints.
	AnalyticsAPIKey  string        `envconfig:"ANALYTICS_API_KEY" required:"true"`
	SessionJWTSecret string        `envconfig:"SESSION_JWT_SECRET" required:"true"`
	SessionTokenTTL  time.Duration `envconfig:"SESSION_TOKEN_TTL" default:"24h"`

	// AnalyticsTimezone is used to read hour/day/week fields when bucketing.
	AnalyticsTimezone string `envconfig:"ANALYTICS_TIMEZONE" default:"UTC"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.AnalyticsTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYTICS_TIMEZONE %q: %w", c.AnalyticsTimezone, err)
	}
	return loc, nil
}

func (c *Config) IsProduction() bool {
	return c.ServiceEnvironment == "production"
}
