package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "FOCUSDAY"

// Config is the merged runtime configuration.
type Config struct {
	DBPath    string          `mapstructure:"db_path"`
	LogPath   string          `mapstructure:"log_path"`
	LogLevel  string          `mapstructure:"log_level"`
	Lifecycle LifecycleConfig `mapstructure:"lifecycle"`
	Sectors   []SectorSlot    `mapstructure:"sectors"`
}

// LifecycleConfig tunes the daily reset and review prompt.
type LifecycleConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
	ResetHour    int           `mapstructure:"reset_hour"`
	ResetWindow  time.Duration `mapstructure:"reset_window"`
	ReviewHour   int           `mapstructure:"review_hour"`
}

// DefaultConfig returns the built-in configuration. Paths live under the
// user's config directory when it can be resolved.
func DefaultConfig() *Config {
	cfg := &Config{
		LogLevel: "info",
		Lifecycle: LifecycleConfig{
			TickInterval: time.Minute,
			ResetHour:    0,
			ResetWindow:  5 * time.Minute,
			ReviewHour:   20,
		},
		Sectors: DefaultSchedule(),
	}
	if dir, err := Dir(); err == nil {
		cfg.DBPath = filepath.Join(dir, "focusday.db")
		cfg.LogPath = filepath.Join(dir, "focusday.log")
	}
	return cfg
}

// Dir returns ~/.config/focusday (or the platform equivalent).
func Dir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "focusday"), nil
}

// DefaultPath is the config file consulted when no path is given.
func DefaultPath() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load merges defaults, the YAML file at path (if it exists) and
// FOCUSDAY_* environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("log_path", cfg.LogPath)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("lifecycle.tick_interval", cfg.Lifecycle.TickInterval)
	v.SetDefault("lifecycle.reset_hour", cfg.Lifecycle.ResetHour)
	v.SetDefault("lifecycle.reset_window", cfg.Lifecycle.ResetWindow)
	v.SetDefault("lifecycle.review_hour", cfg.Lifecycle.ReviewHour)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	// A configured schedule replaces the default one instead of merging slot by slot.
	if v.IsSet("sectors") {
		cfg.Sectors = nil
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks lifecycle bounds and the sector schedule.
func (c *Config) Validate() error {
	l := c.Lifecycle
	if l.TickInterval <= 0 {
		return fmt.Errorf("lifecycle.tick_interval must be positive, got %s", l.TickInterval)
	}
	if l.ResetHour < 0 || l.ResetHour > 23 {
		return fmt.Errorf("lifecycle.reset_hour out of range: %d", l.ResetHour)
	}
	if l.ResetWindow <= 0 || l.ResetWindow >= time.Hour {
		return fmt.Errorf("lifecycle.reset_window must be within (0, 1h), got %s", l.ResetWindow)
	}
	if l.ReviewHour < 0 || l.ReviewHour > 23 {
		return fmt.Errorf("lifecycle.review_hour out of range: %d", l.ReviewHour)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := ValidateSchedule(c.Sectors); err != nil {
		return fmt.Errorf("sectors: %w", err)
	}
	return nil
}

// SlogLevel returns the configured log level, info when unparseable.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
