// Package config provides configuration loading and validation for the
// extraction pipeline and its delivery layers.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when neither the config file nor the environment
// provides a value.
const (
	DefaultPort            = 8080
	DefaultCountryCode     = "fr"
	DefaultStrategyTimeout = 10 * time.Second
	DefaultPrimaryEndpoint = "https://app.scrapingbee.com/api/v1/"
)

// Config represents the pipeline configuration. All fields are optional;
// missing values use defaults. Keyword tables and relay lists are fixed
// data injected at construction elsewhere, not configuration.
type Config struct {
	// Primary rendering fetch service
	PrimaryEndpoint string `json:"primary_endpoint,omitempty"` // Rendering API base URL
	PrimaryAPIKey   string `json:"primary_api_key,omitempty"`  // Rendering API key
	CountryCode     string `json:"country_code,omitempty"`     // Geo hint for the rendering proxy

	// Behavior
	UseBrowser     bool `json:"use_browser,omitempty"`     // Enable local headless rendering strategy
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // Per-strategy timeout

	// Persistence and delivery
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL; empty uses the in-memory store
	Port        int    `json:"port,omitempty"`         // HTTP listen port for serve mode
}

// Load reads configuration from an optional JSON file, then overlays
// environment variables. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BRANDSCOPE_PRIMARY_API_KEY"); v != "" {
		c.PrimaryAPIKey = v
	}
	if v := os.Getenv("BRANDSCOPE_PRIMARY_ENDPOINT"); v != "" {
		c.PrimaryEndpoint = v
	}
	if v := os.Getenv("BRANDSCOPE_COUNTRY_CODE"); v != "" {
		c.CountryCode = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("BRANDSCOPE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("BRANDSCOPE_USE_BROWSER"); v != "" {
		c.UseBrowser = v == "1" || v == "true"
	}
}

func (c *Config) applyDefaults() {
	if c.PrimaryEndpoint == "" {
		c.PrimaryEndpoint = DefaultPrimaryEndpoint
	}
	if c.CountryCode == "" {
		c.CountryCode = DefaultCountryCode
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = int(DefaultStrategyTimeout / time.Second)
	}
}

// StrategyTimeout returns the per-strategy timeout as a duration.
func (c *Config) StrategyTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}
