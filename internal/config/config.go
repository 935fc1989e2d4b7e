// Package config loads recruit-tracker configuration from defaults, an
// optional YAML file and RECRUIT_TRACKER_* environment variables, in that
// order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/recruit-tracker/internal/model"
)

// Config holds all recruit-tracker configuration.
type Config struct {
	// DBPath is the SQLite file that backs the key-value store.
	DBPath string `yaml:"db_path" env:"RECRUIT_TRACKER_DB"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"RECRUIT_TRACKER_LOG_LEVEL"`

	// Defaults apply to settings that have never been saved.
	Defaults DefaultsConfig `yaml:"defaults"`
}

// DefaultsConfig holds the fallback values for the free-text settings.
type DefaultsConfig struct {
	BrandName string `yaml:"brand_name" env:"RECRUIT_TRACKER_BRAND_NAME"`
	BotName   string `yaml:"bot_name" env:"RECRUIT_TRACKER_BOT_NAME"`
	ReelPlan  string `yaml:"reel_plan" env:"RECRUIT_TRACKER_REEL_PLAN"`
}

// Settings converts the defaults to model settings.
func (d DefaultsConfig) Settings() model.Settings {
	return model.Settings{BrandName: d.BrandName, BotName: d.BotName, ReelPlan: d.ReelPlan}
}

// Dir returns the per-user data directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".recruit-tracker")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DBPath:   filepath.Join(Dir(), "tracker.db"),
		LogLevel: "warn",
		Defaults: DefaultsConfig{
			BrandName: model.DefaultSettings.BrandName,
			BotName:   model.DefaultSettings.BotName,
			ReelPlan:  model.DefaultSettings.ReelPlan,
		},
	}
}

// Load reads configuration from path. A missing file yields the defaults.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Marshal returns the YAML encoding of c.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
