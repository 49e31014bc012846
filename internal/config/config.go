// Package config loads the front end configuration from an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBackendURL = errors.New("backend.base_url is required")
	ErrInvalidBackendURL = errors.New("backend.base_url must be an absolute http(s) URL")
	ErrMissingAddr       = errors.New("server.addr is required")
	ErrInvalidMode       = errors.New("server.mode must be one of: debug, release, test")
	ErrNegativeTimeout   = errors.New("backend.request_timeout must be non-negative")
)

const (
	DefaultBackendURL = "http://127.0.0.1:5002"
	DefaultAddr       = ":8080"
	DefaultMode       = "release"
)

// Config represents the complete front end configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
}

// ServerConfig controls the web front end listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"`
}

// BackendConfig points at the competitor API.
type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
	// RequestTimeout bounds JSON calls only. Scan streams are never timed out.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: DefaultAddr,
			Mode: DefaultMode,
		},
		Backend: BackendConfig{
			BaseURL: DefaultBackendURL,
		},
	}
}

// Load reads the YAML file at path (if path is non-empty), applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("COMPETITOR_API_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing REQUEST_TIMEOUT: %w", err)
		}
		c.Backend.RequestTimeout = d
	}
	return nil
}

// Validate checks the configuration for missing or malformed values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return ErrMissingBackendURL
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBackendURL
	}
	if c.Backend.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}
	if c.Server.Addr == "" {
		return ErrMissingAddr
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return ErrInvalidMode
	}
	return nil
}
