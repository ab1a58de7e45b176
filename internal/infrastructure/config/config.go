package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process-wide configuration. It is constructed once
// at startup and passed by reference; nothing mutates it afterwards.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	HashSecret     string `env:"HASH_SECRET"`
	HashIterations int    `env:"HASH_ITERATIONS, default=10000"`

	MySQL        MySQLConfig
	Notification NotificationConfig
}

type MySQLConfig struct {
	DSN string `env:"MYSQL_DSN, default=root:root@tcp(localhost:3306)/accounts?parseTime=true"`
}

type NotificationConfig struct {
	Endpoint string        `env:"NOTIFICATION_ENDPOINT"`
	Timeout  time.Duration `env:"NOTIFICATION_TIMEOUT, default=5s"`
	Workers  int           `env:"NOTIFICATION_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the settings the core cannot run without. A missing
// secret is a startup-time fatal condition, not a per-call error.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.HashSecret == "" {
		return errors.New("config: HASH_SECRET is required")
	}
	if c.Notification.Endpoint == "" {
		return errors.New("config: NOTIFICATION_ENDPOINT is required")
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
