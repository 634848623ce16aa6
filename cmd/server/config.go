// Package main provides the PeopleMover server CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
}

// ServerConfig contains HTTP server settings. Durations are Go duration
// strings ("15s", "1m").
type ServerConfig struct {
	Address        string   `yaml:"address"`         // HTTP listen address (default: :8080)
	DBPath         string   `yaml:"db_path"`         // SQLite database path (default: peoplemover.db)
	AllowedOrigins []string `yaml:"allowed_origins"` // CORS origins for the frontend
	ReadTimeout    string   `yaml:"read_timeout"`    // Request read timeout (default: 15s)
	WriteTimeout   string   `yaml:"write_timeout"`   // Response write timeout (default: 15s)
}

// AuthConfig contains JWT settings. Auth is off unless a secret is set.
type AuthConfig struct {
	Secret        string `yaml:"secret"`         // HMAC signing secret; empty disables auth
	TokenLifetime string `yaml:"token_lifetime"` // Token validity (default: 24h)
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// setDefaults sets default values for missing config fields.
func (c *Config) setDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Server.DBPath == "" {
		c.Server.DBPath = "peoplemover.db"
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "15s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "15s"
	}
	if c.Auth.TokenLifetime == "" {
		c.Auth.TokenLifetime = "24h"
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}
	if c.Server.DBPath == "" {
		return fmt.Errorf("server.db_path is required")
	}
	if _, err := time.ParseDuration(c.Server.ReadTimeout); err != nil {
		return fmt.Errorf("invalid server.read_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.Server.WriteTimeout); err != nil {
		return fmt.Errorf("invalid server.write_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.Auth.TokenLifetime); err != nil {
		return fmt.Errorf("invalid auth.token_lifetime: %w", err)
	}
	if c.Auth.Secret != "" && len(c.Auth.Secret) < 16 {
		return fmt.Errorf("auth.secret must be at least 16 characters")
	}
	return nil
}

// ReadTimeoutDuration returns the parsed read timeout. Call after Validate.
func (c *Config) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Server.ReadTimeout)
	return d
}

// WriteTimeoutDuration returns the parsed write timeout. Call after Validate.
func (c *Config) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Server.WriteTimeout)
	return d
}

// TokenLifetimeDuration returns the parsed token lifetime. Call after Validate.
func (c *Config) TokenLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.Auth.TokenLifetime)
	return d
}
