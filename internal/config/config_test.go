// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/pwgator/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	return tmp
}

func TestLoadConfig_NoFileReturnsDefaultsAndNotFound(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil, nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Generate.Length != 8 || got.Generate.Characters != "snlu" || got.Check.Minimum != 1 {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if got.Color != cfg.ColorAuto || got.Language != "en" {
		t.Fatalf("defaults not applied: %+v", got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	yaml := "language: de\ngenerate:\n  length: 24\n  characters: lu\n  letter: true\ncheck:\n  minimum: 12\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file, nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" || got.Generate.Length != 24 || got.Generate.Characters != "lu" || !got.Generate.Letter {
		t.Fatalf("unexpected config: %+v", got)
	}
	if got.Check.Minimum != 12 {
		t.Fatalf("expected minimum 12, got %d", got.Check.Minimum)
	}
	// untouched keys keep their defaults
	if got.Generate.Number != 1 {
		t.Fatalf("expected default number 1, got %d", got.Generate.Number)
	}
}

func TestLoadConfig_EnvironmentOverridesDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("PWGATOR_GENERATE_LENGTH", "40")

	got, _ := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil, nil)
	if got.Generate.Length != 40 {
		t.Fatalf("expected env override 40, got %d", got.Generate.Length)
	}
}

func TestLoadConfig_ChangedFlagWins(t *testing.T) {
	isolate(t)
	t.Setenv("PWGATOR_GENERATE_LENGTH", "40")

	cmd := &cobra.Command{}
	cmd.Flags().IntP("length", "l", 8, "")
	if err := cmd.Flags().Parse([]string{"--length", "64"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	got, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil, map[string]string{"generate.length": "length"})
	if got.Generate.Length != 64 {
		t.Fatalf("expected flag value 64, got %d", got.Generate.Length)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "en", Color: cfg.ColorNever}
	c.Generate.Length = 16

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path, nil)
	if err != nil {
		t.Fatalf("reload failed: %v\n%s", err, data)
	}
	if got.Generate.Length != 16 || got.Color != cfg.ColorNever {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestPassGatorDefaults_ShorterLength(t *testing.T) {
	isolate(t)

	got, _ := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.PassGatorDefaults(), nil, nil)
	if got.Generate.Length != cfg.PassGatorLength {
		t.Fatalf("expected length %d, got %d", cfg.PassGatorLength, got.Generate.Length)
	}
	if cfg.Defaults()["generate.length"] != cfg.DefaultLength {
		t.Fatalf("PassGatorDefaults must not modify Defaults")
	}
}
