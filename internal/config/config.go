// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads pwgator settings from defaults, a YAML file, the
// environment and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full set of persisted settings.
type Config struct {
	Language string         `mapstructure:"language" yaml:"language"`
	Color    string         `mapstructure:"color" yaml:"color"`
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate"`
	Check    CheckConfig    `mapstructure:"check" yaml:"check"`
}

// GenerateConfig holds the defaults of the word command.
type GenerateConfig struct {
	Length     int    `mapstructure:"length" yaml:"length"`
	Characters string `mapstructure:"characters" yaml:"characters"`
	Number     int    `mapstructure:"number" yaml:"number"`
	Similar    bool   `mapstructure:"similar" yaml:"similar"`
	Ambiguous  bool   `mapstructure:"ambiguous" yaml:"ambiguous"`
	Letter     bool   `mapstructure:"letter" yaml:"letter"`
}

// CheckConfig holds the defaults of the check command.
type CheckConfig struct {
	Minimum int `mapstructure:"minimum" yaml:"minimum"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default password lengths of the two entry points.
const (
	DefaultLength   = 8
	PassGatorLength = 4
)

// Defaults returns the built-in settings as viper keys.
func Defaults() map[string]any {
	return map[string]any{
		"language":            "en",
		"color":               ColorAuto,
		"generate.length":     DefaultLength,
		"generate.characters": "snlu",
		"generate.number":     1,
		"generate.similar":    false,
		"generate.ambiguous":  false,
		"generate.letter":     false,
		"check.minimum":       1,
	}
}

// PassGatorDefaults returns Defaults with the shorter password length of the
// pass-gator entry point.
func PassGatorDefaults() map[string]any {
	d := Defaults()
	d["generate.length"] = PassGatorLength
	return d
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "pwgator")
		default: // Linux, macOS, etc.
			configDir = "/etc/pwgator"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "pwgator")
	}

	return filepath.Join(configDir, "pwgator.yaml"), nil
}

// LoadConfig resolves T from defaults, the first pwgator.yaml found (or the
// explicit file), PWGATOR_* environment variables and the flags of cmd.
// flagKeys maps config keys to flag names for flags whose name differs from
// the key. When no config file exists the resolved config is returned
// together with a viper.ConfigFileNotFoundError.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string, flagKeys map[string]string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("pwgator")
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix("pwgator")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return c, err
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile stores c as YAML in the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0644)
}
