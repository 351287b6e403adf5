// Package config loads server settings from a TOML file with environment
// overrides. Every setting has a default, so the file is optional.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no path is given and CONFIG_PATH is unset.
const DefaultPath = "configs/config.toml"

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port int `toml:"port"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// AuthConfig configures token signing.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	TokenTTL  string `toml:"token_ttl"` // Go duration, e.g. "24h"
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Log      LogConfig      `toml:"log"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Path: "./data/tableround.db"},
		Auth:     AuthConfig{JWTSecret: "dev-secret-change-me", TokenTTL: "24h"},
		Log:      LogConfig{Level: "info"},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the TOML file at path on top of the defaults and applies the
// PORT, DB_PATH, JWT_SECRET, TOKEN_TTL and LOG_LEVEL environment overrides.
// An empty path means CONFIG_PATH or DefaultPath; a missing default file is
// not an error, a missing explicit one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = getEnv("CONFIG_PATH", DefaultPath)
		explicit = os.Getenv("CONFIG_PATH") != ""
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = n
	}
	cfg.Database.Path = getEnv("DB_PATH", cfg.Database.Path)
	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.TokenTTL = getEnv("TOKEN_TTL", cfg.Auth.TokenTTL)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail at startup.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("jwt secret is required")
	}
	if _, err := c.TokenDuration(); err != nil {
		return err
	}
	return nil
}

// TokenDuration parses Auth.TokenTTL.
func (c *Config) TokenDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Auth.TokenTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid token_ttl %q: %w", c.Auth.TokenTTL, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("token_ttl must be positive, got %s", d)
	}
	return d, nil
}
