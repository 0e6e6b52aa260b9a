package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-secret-change-me"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	Admin   AdminConfig
	Catalog CatalogConfig
	Redis   RedisConfig
}

// AdminConfig holds the single static credential checked at login. It is
// fixed for the life of the process.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
}

type CatalogConfig struct {
	BaseURL  string        `env:"CATALOG_BASE_URL,  default=https://dummyjson.com"`
	Timeout  time.Duration `env:"CATALOG_TIMEOUT,   default=10s"`
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL, default=5m"`
}

type RedisConfig struct {
	// Addr left empty disables the catalog cache entirely.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Production reports whether the deployment environment is production.
// Session cookies only carry the Secure flag there.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
