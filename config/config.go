// Package config loads application configuration with cleanenv
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Amadeus AmadeusConfig `yaml:"amadeus"`
	Server  ServerConfig  `yaml:"server"`
}

// AmadeusConfig holds the provider credentials and base URL. The base URL
// defaults to the provider's test environment; key and secret have no
// default and missing either is a fatal startup condition.
type AmadeusConfig struct {
	APIBase   string `yaml:"api_base" env:"AMADEUS_API_BASE" env-default:"https://test.api.amadeus.com"`
	APIKey    string `yaml:"api_key" env:"AMADEUS_API_KEY"`
	APISecret string `yaml:"api_secret" env:"AMADEUS_API_SECRET"`
}

// ServerConfig holds the server-side knobs
type ServerConfig struct {
	DataDir  string `yaml:"data_dir" env:"FLIGHTDESK_DATA_DIR" env-default:"data"`
	LogLevel string `yaml:"log_level" env:"FLIGHTDESK_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from config.yaml and environment variables.
// Priority: Env Vars > Config File > Defaults.
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, otherwise fall back to env vars only
	if err := cleanenv.ReadConfig("config.yaml", &cfg); err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}

// Validate enforces the required credentials
func (c *Config) Validate() error {
	if c.Amadeus.APIKey == "" {
		return fmt.Errorf("AMADEUS_API_KEY is required")
	}
	if c.Amadeus.APISecret == "" {
		return fmt.Errorf("AMADEUS_API_SECRET is required")
	}
	return nil
}
