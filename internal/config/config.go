package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the server
type Config struct {
	Listmonk ListmonkConfig `yaml:"listmonk"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ListmonkConfig holds the remote listmonk API settings
type ListmonkConfig struct {
	BaseURL    string `yaml:"base_url"`
	Username   string `yaml:"username"`
	APIKey     string `yaml:"api_key"`
	TimeoutMs  int64  `yaml:"timeout_ms"`
	RetryCount int    `yaml:"retry_count"`
}

// ConfigurationError reports the first missing or invalid required setting.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %s", e.Field, e.Reason)
}

// Validate checks the required fields in declaration order and returns a
// *ConfigurationError for the first one that is missing or out of range.
func (c ListmonkConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.BaseURL) == "":
		return &ConfigurationError{Field: "base_url", Reason: "cannot be blank"}
	case strings.TrimSpace(c.Username) == "":
		return &ConfigurationError{Field: "username", Reason: "cannot be blank"}
	case strings.TrimSpace(c.APIKey) == "":
		return &ConfigurationError{Field: "api_key", Reason: "cannot be blank"}
	case c.TimeoutMs <= 0:
		return &ConfigurationError{Field: "timeout_ms", Reason: "must be positive"}
	case c.RetryCount < 0:
		return &ConfigurationError{Field: "retry_count", Reason: "must be non-negative"}
	}
	return nil
}

// NormalizedBaseURL returns the base URL without trailing slashes
func (c ListmonkConfig) NormalizedBaseURL() string {
	return strings.TrimRight(c.BaseURL, "/")
}

// Timeout returns the configured timeout as a duration
func (c ListmonkConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Transport modes for serving MCP.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// ServerConfig holds MCP serving configuration
type ServerConfig struct {
	Transport      string   `yaml:"transport"`
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Validate checks the transport selection.
func (c ServerConfig) Validate() error {
	switch c.Transport {
	case TransportStdio:
		return nil
	case TransportHTTP:
		if strings.TrimSpace(c.Addr) == "" {
			return &ConfigurationError{Field: "server.addr", Reason: "cannot be blank for http transport"}
		}
		return nil
	default:
		return &ConfigurationError{Field: "server.transport", Reason: fmt.Sprintf("must be %q or %q", TransportStdio, TransportHTTP)}
	}
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level     string `yaml:"level"`
	RedactPII *bool  `yaml:"redact_pii"`
}

// Validate runs every section's validation.
func (c *Config) Validate() error {
	if err := c.Listmonk.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// Load reads and parses the configuration file. A blank path or a missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	// retry_count may legitimately be 0, so its default is seeded before
	// decoding instead of being patched afterwards.
	cfg := Config{Listmonk: ListmonkConfig{RetryCount: 3}}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Listmonk.Username == "" {
		cfg.Listmonk.Username = "api"
	}
	if cfg.Listmonk.TimeoutMs == 0 {
		cfg.Listmonk.TimeoutMs = 30000
	}
	if cfg.Server.Transport == "" {
		cfg.Server.Transport = TransportStdio
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = "127.0.0.1:8080"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars.
// Unparsable numeric variables leave the file/default value in place.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("LISTMONK_BASE_URL"); v != "" {
		cfg.Listmonk.BaseURL = v
	}
	if v := os.Getenv("LISTMONK_USERNAME"); v != "" {
		cfg.Listmonk.Username = v
	}
	if v := os.Getenv("LISTMONK_API_KEY"); v != "" {
		cfg.Listmonk.APIKey = v
	}
	if v, err := strconv.ParseInt(os.Getenv("LISTMONK_TIMEOUT"), 10, 64); err == nil {
		cfg.Listmonk.TimeoutMs = v
	}
	if v, err := strconv.Atoi(os.Getenv("LISTMONK_RETRY_COUNT")); err == nil {
		cfg.Listmonk.RetryCount = v
	}

	if v := os.Getenv("MCP_TRANSPORT"); v != "" {
		cfg.Server.Transport = v
	}
	if v := os.Getenv("MCP_HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("MCP_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
