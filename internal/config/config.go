// Copyright (c) 2026 Neoscout Team
// Neoscout - NASA/JPL near-Earth object explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists the Neoscout configuration. Precedence,
// lowest to highest: defaults, config file, environment (NEOSCOUT_*), CLI
// flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset" mapstructure:"dataset"`
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
	Language string         `yaml:"language" mapstructure:"language"`
}

// DatasetConfig points at the local dataset snapshots.
type DatasetConfig struct {
	NEOPath string `yaml:"neo_path" mapstructure:"neo_path"`
	CADPath string `yaml:"cad_path" mapstructure:"cad_path"`
}

// DatabaseConfig configures the optional snapshot database.
type DatabaseConfig struct {
	Type string `yaml:"type" mapstructure:"type"`
	Dsn  string `yaml:"dsn" mapstructure:"dsn"`
}

// LoggingConfig configures optional rotating file output.
type LoggingConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// Defaults returns the baseline configuration values keyed by viper path.
func Defaults() map[string]any {
	return map[string]any{
		"dataset.neo_path": "data/neos.csv",
		"dataset.cad_path": "data/cad.json",
		"database.type":    "sqlite",
		"database.dsn":     "./neoscout.db",
		"logging.file":     "",
		"language":         "en",
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Neoscout")
		default: // Linux, macOS, etc.
			configDir = "/etc/neoscout"
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, "neoscout")
	}

	return filepath.Join(configDir, "neoscout.yaml"), nil
}

// Load builds a Config from defaults, config files, environment variables
// and the command's flags. explicitPath, when non-nil, names a config file
// that takes precedence over the search paths.
func Load(cmd *cobra.Command, defaults map[string]any, explicitPath *string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("neoscout")
	v.SetConfigType("yaml")

	if explicitPath != nil && *explicitPath != "" {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// Missing config files are fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("neoscout")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// WriteFile persists the configuration as YAML to the user (or system)
// config path, creating the directory if needed.
func WriteFile(c *Config, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	return os.WriteFile(path, data, 0o644)
}
