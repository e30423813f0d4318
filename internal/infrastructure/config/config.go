package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// DevJWTSecret is the signing key used when JWT_SECRET is unset. It exists so
// the API runs out of the box for local client testing; operators must
// override it anywhere that matters. Startup logs a warning when it is in use.
const DevJWTSecret = "dev_secret_change_me"

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev_secret_change_me"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UsingDevSecret reports whether the known-insecure development signing key
// is in effect.
func (c *Config) UsingDevSecret() bool {
	return c.JWTSecret == DevJWTSecret
}
