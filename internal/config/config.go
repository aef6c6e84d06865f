// Package config loads runtime settings from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Storage selects the persistence backend
type Storage string

// Storage backends
const (
	StorageSQLite Storage = "sqlite"
	StorageRedis  Storage = "redis"
)

// Log levels accepted by RPG_SHEET_LOG_LEVEL
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config holds every setting the CLI reads from the environment
type Config struct {
	Storage       Storage `env:"RPG_SHEET_STORAGE" envDefault:"sqlite"`
	SQLitePath    string  `env:"RPG_SHEET_SQLITE_PATH" envDefault:"rpg-sheet.db"`
	RedisAddr     string  `env:"RPG_SHEET_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string  `env:"RPG_SHEET_REDIS_PASSWORD"`
	RedisDB       int     `env:"RPG_SHEET_REDIS_DB" envDefault:"0"`
	StorageKey    string  `env:"RPG_SHEET_STORAGE_KEY" envDefault:"dnd-character-sheet-v2"`
	LogLevel      string  `env:"RPG_SHEET_LOG_LEVEL" envDefault:"warn"`
}

// Parse reads the environment without validating it, so callers can apply
// overrides before calling Validate
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return cfg, nil
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for the selected backend
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("storage", string(c.Storage), []string{string(StorageSQLite), string(StorageRedis)}, vb)
	errors.ValidateRequired("storage_key", c.StorageKey, vb)

	switch c.Storage {
	case StorageSQLite:
		errors.ValidateRequired("sqlite_path", c.SQLitePath, vb)
	case StorageRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
		if c.RedisDB < 0 {
			vb.InvalidField("redis_db", "must not be negative")
		}
	}

	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		vb.InvalidField("log_level", "must be debug, info, warn or error")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto slog, falling back to warn
func (c *Config) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return slog.LevelWarn
}
