// Package config handles configuration loading and management for pacer.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for pacer.
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	ETA     ETAConfig     `mapstructure:"eta"`
	Run     RunConfig     `mapstructure:"run"`
	History HistoryConfig `mapstructure:"history"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	RefreshRate time.Duration `mapstructure:"refresh_rate"`
	// ASCII disables Unicode status glyphs for terminals that can't
	// render them.
	ASCII bool `mapstructure:"ascii"`
}

// ETAConfig holds ETA estimation settings.
type ETAConfig struct {
	// BufferSize is the sample window capacity. Zero means the
	// library default.
	BufferSize int `mapstructure:"buffer_size"`
}

// RunConfig holds step execution settings.
type RunConfig struct {
	// Shell is the shell manifest commands run through.
	Shell string `mapstructure:"shell"`
	// LogFile receives debug output during runs. Empty disables it.
	LogFile string `mapstructure:"log_file"`
}

// HistoryConfig holds run history settings.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Path overrides the default database location.
	Path string `mapstructure:"path"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (PACER_*)
// 2. Project config (.pacer.yaml in current directory or parent)
// 3. User config (~/.config/pacer/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Load user config from XDG path
	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Load project config if present
	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			// Merge project config (takes precedence)
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	// Environment variable overrides
	v.SetEnvPrefix("pacer")
	v.AutomaticEnv()
	v.BindEnv("run.shell", "PACER_SHELL")
	v.BindEnv("history.path", "PACER_HISTORY_PATH")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.History.Path = os.ExpandEnv(cfg.History.Path)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.History.Path = os.ExpandEnv(cfg.History.Path)

	return cfg, nil
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("tui.refresh_rate", "100ms")
	v.SetDefault("tui.ascii", false)

	v.SetDefault("eta.buffer_size", 0)

	v.SetDefault("run.shell", "sh")
	v.SetDefault("run.log_file", "")

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "")
}

// getUserConfigDir returns the XDG config directory for pacer.
func getUserConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "pacer")
	}

	// Fall back to ~/.config/pacer
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "pacer")
	}
	return filepath.Join(home, ".config", "pacer")
}

// findProjectConfig searches for .pacer.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".pacer.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			RefreshRate: 100 * time.Millisecond,
		},
		ETA: ETAConfig{
			BufferSize: 0,
		},
		Run: RunConfig{
			Shell: "sh",
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}
