// Package config provides configuration management for the API server
// and the page driver.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"meigu/internal/listing"
)

// Configuration validation errors.
var (
	ErrMissingServerAddr  = errors.New("server.addr is required")
	ErrMissingDatabaseDSN = errors.New("database host, user and name are required")
	ErrMissingBaseURL     = errors.New("client.base_url is required")
	ErrInvalidTimeout     = errors.New("client.timeout_sec must be at least 1")
	ErrInvalidVariant     = errors.New("site.variant must be 'public' or 'admin'")
	ErrInvalidPageSize    = errors.New("site.page_size must be at least 1")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Client   ClientConfig   `yaml:"client"`
	Site     SiteConfig     `yaml:"site"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig contains API server settings.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// DatabaseConfig contains the MySQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// DSN builds the MySQL connection string.
func (d *DatabaseConfig) DSN() string {
	port := d.Port
	if port == 0 {
		port = 3306
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, port, d.Name)
}

// ClientConfig contains the data service settings for the page driver.
type ClientConfig struct {
	BaseURL    string `yaml:"base_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// SiteConfig contains page rendering settings.
type SiteConfig struct {
	Variant  string `yaml:"variant"`
	PageSize int    `yaml:"page_size"`
}

// IsAdmin reports whether the configured audience is the admin one.
func (s *SiteConfig) IsAdmin() bool {
	return s.Variant == "admin"
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{
		Server: ServerConfig{Addr: ":8080"},
		Client: ClientConfig{BaseURL: "http://localhost:8080"},
	}
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyDefaults() {
	if c.Client.TimeoutSec == 0 {
		c.Client.TimeoutSec = 10
	}

	if c.Site.Variant == "" {
		c.Site.Variant = "public"
	}

	if c.Site.PageSize == 0 {
		c.Site.PageSize = listing.ListingPageSize
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return ErrMissingServerAddr
	}

	if c.Client.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if c.Client.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Site.Variant != "public" && c.Site.Variant != "admin" {
		return ErrInvalidVariant
	}

	if c.Site.PageSize < 1 {
		return ErrInvalidPageSize
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// ValidateDatabase checks the settings the API server additionally
// needs. The page driver never touches the database, so these are not
// part of Validate.
func (c *Config) ValidateDatabase() error {
	if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Addr: %s, BaseURL: %s, Variant: %s, PageSize: %d}",
		c.Server.Addr,
		c.Client.BaseURL,
		c.Site.Variant,
		c.Site.PageSize,
	)
}
