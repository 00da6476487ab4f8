// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration for comment harvesting runs.
type Config struct {
	// ClientSecretFile is the OAuth client JSON downloaded from the API console
	ClientSecretFile string `json:"client_secret_file"`
	// TokenCacheFile stores granted OAuth tokens across runs
	TokenCacheFile string `json:"token_cache_file"`
	// OutputFile receives the JSON comment export
	OutputFile string `json:"output_file"`
	// LookupBaseURL is the handle resolution endpoint
	LookupBaseURL string `json:"lookup_base_url"`

	// RequestsPerSecond caps the Data API request pacing
	RequestsPerSecond float64 `json:"requests_per_second"`
	// HTTPTimeout bounds individual handle lookup requests
	HTTPTimeout time.Duration `json:"http_timeout"`

	// MaxRetries is the maximum number of retries for failed requests
	MaxRetries int `json:"max_retries"`
	// InitialBackoff is the initial backoff duration for retries
	InitialBackoff time.Duration `json:"initial_backoff"`
	// MaxBackoff is the maximum backoff duration for retries
	MaxBackoff time.Duration `json:"max_backoff"`
	// BackoffMultiplier is the multiplier for exponential backoff (must be > 1)
	BackoffMultiplier float64 `json:"backoff_multiplier"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		ClientSecretFile:  "client_secret.json",
		TokenCacheFile:    "tokencache.json",
		OutputFile:        "comments.json",
		LookupBaseURL:     "https://yt.lemnoslife.com",
		RequestsPerSecond: 5.0,
		HTTPTimeout:       30 * time.Second,
		MaxRetries:        5,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// Load loads configuration from environment variables, config file, and applies defaults.
// Priority: env vars > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Config file is optional
	if err := cfg.loadFromFile(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from ytcomb.json in the current directory
// or the user's config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytcomb.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytcomb", "ytcomb.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YTCOMB_CLIENT_SECRET"); v != "" {
		c.ClientSecretFile = v
	}
	if v := os.Getenv("YTCOMB_TOKEN_CACHE"); v != "" {
		c.TokenCacheFile = v
	}
	if v := os.Getenv("YTCOMB_OUTPUT"); v != "" {
		c.OutputFile = v
	}
	if v := os.Getenv("YTCOMB_LOOKUP_URL"); v != "" {
		c.LookupBaseURL = v
	}
	if v := os.Getenv("YTCOMB_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RequestsPerSecond = f
		}
	}
	if v := os.Getenv("YTCOMB_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTPTimeout = d
		}
	}
	if v := os.Getenv("YTCOMB_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("YTCOMB_INITIAL_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.InitialBackoff = d
		}
	}
	if v := os.Getenv("YTCOMB_MAX_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.MaxBackoff = d
		}
	}
}

// Validate checks that configuration values are valid and consistent.
// It returns an error if any configuration value is invalid.
func (c *Config) Validate() error {
	if c.ClientSecretFile == "" {
		return fmt.Errorf("client_secret_file must not be empty")
	}
	if c.TokenCacheFile == "" {
		return fmt.Errorf("token_cache_file must not be empty")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file must not be empty")
	}
	if c.LookupBaseURL == "" {
		return fmt.Errorf("lookup_base_url must not be empty")
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative")
	}
	if c.InitialBackoff <= 0 {
		return fmt.Errorf("initial_backoff must be positive")
	}
	if c.MaxBackoff < c.InitialBackoff {
		return fmt.Errorf("max_backoff must be >= initial_backoff")
	}
	if c.BackoffMultiplier <= 1 {
		return fmt.Errorf("backoff_multiplier must be > 1")
	}
	return nil
}
