// Package config loads the phishtrack configuration. Resolution order:
// built-in defaults, then ~/.phishtrack/config.yaml if present, then
// PHISHTRACK_* environment variables (a local .env file is loaded
// first so overrides can live next to the project).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	DatabasePath string `yaml:"database_path"`
	TrackingHost string `yaml:"tracking_host"`
	MailDir      string `yaml:"mail_dir"`
	ExportDir    string `yaml:"export_dir"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the built-in configuration. The database lives under
// ~/.phishtrack, and tracking links point at the fixed loopback host.
func Default() *Config {
	cfg := &Config{
		TrackingHost: "localhost:8080",
		MailDir:      "emails",
		ExportDir:    ".",
		LogLevel:     "info",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DatabasePath = filepath.Join(home, ".phishtrack", "phishtrack.db")
	} else {
		cfg.DatabasePath = "phishtrack.db"
	}
	return cfg
}

// DefaultPath returns the path of the user config file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".phishtrack", "config.yaml"), nil
}

// Load resolves the effective configuration. A missing config file is
// not an error; a malformed one is.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom resolves the effective configuration using the given config
// file path.
func LoadFrom(path string) (*Config, error) {
	// Best-effort: a .env in the working directory may supply overrides.
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PHISHTRACK_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("PHISHTRACK_TRACKING_HOST"); v != "" {
		cfg.TrackingHost = v
	}
	if v := os.Getenv("PHISHTRACK_MAIL_DIR"); v != "" {
		cfg.MailDir = v
	}
	if v := os.Getenv("PHISHTRACK_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("PHISHTRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
