// Package config loads the uilift configuration: defaults, an optional
// uilift.yaml, and UILIFT_ environment overrides, in ascending precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config carries the runtime settings shared by the CLI and the library
// entry points.
type Config struct {
	CacheDir      string `json:"cache_dir" mapstructure:"cache_dir"`
	DefaultTarget string `json:"default_target" mapstructure:"default_target"`
	LogLevel      string `json:"log_level" mapstructure:"log_level"`
	LogFormat     string `json:"log_format" mapstructure:"log_format"`
	Workers       int    `json:"workers" mapstructure:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CacheDir:  defaultCacheDir(),
		LogLevel:  "info",
		LogFormat: "text",
		Workers:   4,
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".uilift"
	}
	return filepath.Join(home, ".uilift")
}

// Load reads the configuration. An explicit path must exist; otherwise
// uilift.yaml is searched in $UILIFT_CONFIG_DIR and the working directory,
// and a missing file falls back to defaults. Environment variables with the
// UILIFT_ prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("cache_dir", defaults.CacheDir)
	v.SetDefault("default_target", defaults.DefaultTarget)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("workers", defaults.Workers)

	v.SetEnvPrefix("UILIFT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("uilift")
		v.SetConfigType("yaml")
		if dir := os.Getenv("UILIFT_CONFIG_DIR"); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// TemplatesDir returns the directory templates are exported to.
func (c *Config) TemplatesDir() string {
	return filepath.Join(c.CacheDir, "templates")
}
