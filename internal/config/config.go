package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	APITimeout     time.Duration `yaml:"timeout"`
	DatabasePath   string        `yaml:"database_path"`
	StaticDir      string        `yaml:"static_dir"`
	LogLevel       string        `yaml:"log_level"`
	MigrateOnStart bool          `yaml:"migrate_on_start"`
}

// LoadConfig builds the configuration from environment variables (a .env file in
// the working directory is honoured when present) and then overlays the YAML file
// at path, if any.
func LoadConfig(path string) (*Config, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()

	addr := getEnv("JOHNLINK_ADDR", "")
	if addr == "" {
		addr = ":" + getEnv("PORT", "3000")
	}

	cfg := &Config{
		Addr:           addr,
		APITimeout:     15 * time.Second,
		DatabasePath:   getEnv("JOHNLINK_DATABASE_PATH", "data/johnlink.db"),
		StaticDir:      getEnv("JOHNLINK_STATIC_DIR", "public"),
		LogLevel:       getEnv("JOHNLINK_LOG_LEVEL", "info"),
		MigrateOnStart: true,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Validate fills zero values with defaults and rejects settings the server
// cannot start with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return errors.New("database_path must not be empty")
	}
	if c.APITimeout <= 0 {
		c.APITimeout = 15 * time.Second
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
