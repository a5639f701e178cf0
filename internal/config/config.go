// Package config provides configuration management for the journal CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	apperrors "trade-journal/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Trading TradingConfig `mapstructure:"trading"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	Path string `mapstructure:"path"` // SQLite database file
}

// TradingConfig holds journal defaults applied when flags are omitted.
type TradingConfig struct {
	DefaultRisk float64 `mapstructure:"default_risk"` // percent of capital
	DefaultPair string  `mapstructure:"default_pair"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/trade-journal"
	}
	return filepath.Join(home, ".config", "trade-journal")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetDefault("storage.path", filepath.Join(configDir, "journal.db"))
	v.SetDefault("trading.default_risk", 1.0)
	v.SetDefault("trading.default_pair", "")
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", true)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.yaml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: storage.path must not be empty", apperrors.ErrConfigInvalid)
	}
	if c.Trading.DefaultRisk <= 0 {
		return fmt.Errorf("%w: trading.default_risk must be greater than zero", apperrors.ErrConfigInvalid)
	}
	return nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir(configDir string) error {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	return os.MkdirAll(configDir, 0755)
}
