package labsync

import (
	"log/slog"
	"time"
)

// Config controls the pass runner.
type Config struct {
	MaxRetries    int           // Maximum retries for fetching rows (default: 3)
	RetryInterval time.Duration // Base interval for exponential backoff (default: 1s)
	Logger        *slog.Logger  // Structured logger (default: slog.Default())
}

func (c *Config) withDefaults() Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	if out.MaxRetries <= 0 {
		out.MaxRetries = 3
	}
	if out.RetryInterval <= 0 {
		out.RetryInterval = 1 * time.Second
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return out
}
