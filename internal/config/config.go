// Package config handles the configuration management for the namedlock CLI.
// It provides functionality to load, save, and manage tool configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the namedlock CLI configuration
type Config struct {
	// LockDir overrides the directory lock files are created in. Empty
	// means the platform default ($TMPDIR or /tmp). Ignored on Windows,
	// where locks are named mutex objects rather than files.
	LockDir string `yaml:"lock_dir"`
	// PollInterval is how often a bounded wait re-probes a busy lock
	PollInterval time.Duration `yaml:"poll_interval"`
	// DefaultWait is the wait bound used when --wait is given no value;
	// zero means block indefinitely
	DefaultWait time.Duration `yaml:"default_wait"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LockDir:      "",
		PollInterval: 100 * time.Millisecond,
		DefaultWait:  0,
	}
}

// DefaultPath returns the default config file location
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "namedlock", "config.yaml"), nil
}

// LoadConfig loads configuration from file or returns default
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		return cfg, nil
	}

	cleanPath := filepath.Clean(configPath)

	if _, err := os.Stat(cleanPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, configPath string) error {
	cleanPath := filepath.Clean(configPath)

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
