// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/VWIP/price-checker/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains catalog source configuration
	Catalog CatalogConfig `json:"catalog"`

	// Order contains order defaults
	Order OrderConfig `json:"order"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig describes where the price catalog comes from
type CatalogConfig struct {
	// Path is a local catalog file (csv, json or hcl)
	Path string `json:"path,omitempty"`

	// URL is a published sheet URL serving CSV rows
	URL string `json:"url,omitempty"`

	// Format forces a format instead of inferring from the path extension
	Format string `json:"format,omitempty"`

	// FetchTimeoutSeconds bounds the URL fetch
	FetchTimeoutSeconds int `json:"fetch_timeout_seconds"`
}

// OrderConfig contains order-entry defaults
type OrderConfig struct {
	// DefaultTaxPercent is the tax rate preselected for a new session
	DefaultTaxPercent float64 `json:"default_tax_percent"`

	// DiscountPresets are the flat discount amounts offered by the UI
	DiscountPresets []float64 `json:"discount_presets"`

	// Currency is the display currency
	Currency string `json:"currency"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// NoColor disables ANSI colors
	NoColor bool `json:"no_color"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// SessionTTLSeconds is how long an idle order session is kept
	SessionTTLSeconds int `json:"session_ttl_seconds"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	catalogPath := filepath.Join(homeDir, ".price-checker", "catalog.csv")

	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Path:                catalogPath,
			FetchTimeoutSeconds: 15,
		},
		Order: OrderConfig{
			DefaultTaxPercent: 2.7,
			DiscountPresets:   []float64{10, 15, 20},
			Currency:          "USD",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Server: ServerConfig{
			Addr:              ":8080",
			SessionTTLSeconds: 1800,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
