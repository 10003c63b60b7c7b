package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-driven client configuration, read from
// HISTORIAL_* variables by NewFromEnv.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://historial.example.com".
	BaseURL string `envconfig:"BASE_URL" required:"true"`

	// HTTPTimeout bounds each request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// SessionFile, when set, persists the session across restarts.
	// Empty means in-memory only.
	SessionFile string `envconfig:"SESSION_FILE"`

	// Debug enables HTTP request/response dumping.
	Debug bool `envconfig:"DEBUG"`
}

// NewFromEnv builds a Client from HISTORIAL_* environment variables.
// Explicit options are applied after the environment-derived ones, so they
// win on conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := envconfig.Process("historial", &cfg); err != nil {
		return nil, err
	}

	envOpts := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.SessionFile != "" {
		envOpts = append(envOpts, WithSessionFile(cfg.SessionFile))
	}
	if cfg.Debug {
		envOpts = append(envOpts, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, append(envOpts, opts...)...)
}
