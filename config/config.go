// Package config manages application configuration.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrAPIKeyMissing indicates no YouTube Data API key was found in the
// environment or a .env file.
var ErrAPIKeyMissing = errors.New("config: YOUTUBE_API_KEY is not set")

// Config holds the settings read from the environment. Flag values layer on
// top of it in the CLI.
type Config struct {
	// APIKey authenticates YouTube Data API calls
	APIKey string
	// UserAgent for page and caption requests (empty = built-in browser agent)
	UserAgent string
	// Timeout is the per-call network timeout
	Timeout time.Duration
	// RateLimit is the shared request budget in calls per second
	RateLimit float64
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		Timeout:   10 * time.Second,
		RateLimit: 5,
	}
}

// Load reads configuration from the environment, consulting a .env file in
// the working directory first. A missing .env is fine; a missing API key is
// not.
func Load() (*Config, error) {
	// Harmless when no .env exists
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	c.APIKey = os.Getenv("YOUTUBE_API_KEY")

	if v := os.Getenv("YTSCRIBE_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("YTSCRIBE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	if v := os.Getenv("YTSCRIBE_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RateLimit = f
		}
	}
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyMissing
	}
	return nil
}
