// Package config loads logsift configuration from files and the
// environment. Configuration only supplies defaults; explicit CLI flags
// always win.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Color controls styled output: auto, always or never.
	Color string `mapstructure:"color"`

	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Color:   "auto",
		Quiet:   false,
		Verbose: false,
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.logsift.yaml or ./.logsift.yml
// 2. ~/.logsift.yaml or ~/.logsift.yml
// 3. $XDG_CONFIG_HOME/logsift/config.yaml (or ~/.config/logsift/config.yaml)
// 4. /etc/logsift/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		v := viper.New()
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// File returns the path to the config file that would be loaded, or ""
// if none exists.
func File() string {
	return findConfigFile()
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".logsift.yaml", ".logsift.yml", "logsift.yaml", "logsift.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	var searchPaths []string

	// 1. Current directory
	cwd, err := os.Getwd()
	if err == nil {
		searchPaths = append(searchPaths, cwd)
	}

	// 2. Home directory
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}

	// 3. Config directory (e.g., ~/.config/logsift/)
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "logsift"))
	}

	// 4. System config
	searchPaths = append(searchPaths, "/etc/logsift")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOGSIFT_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("LOGSIFT_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("LOGSIFT_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
}
