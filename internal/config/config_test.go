package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded defaults = %+v\nexpected %+v", cfg, DefaultGameConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("rise:\n  percent_step: 0.2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rise.PercentStep != 0.2 {
		t.Errorf("PercentStep = %v, expected 0.2", cfg.Rise.PercentStep)
	}
	if cfg.Rise.PercentStart != 0.5 || cfg.Tower.BlockHeight != 28 {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("rise: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Error("with no files the embedded defaults should be used")
	}

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "textordie.yaml"), []byte("toast:\n  duration: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Toast.Duration != 3 {
		t.Errorf("local config not used, toast.duration = %v", cfg.Toast.Duration)
	}

	if err := os.MkdirAll(filepath.Join(home, AppDir), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, AppDir, "config.yaml"), []byte("toast:\n  duration: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Toast.Duration != 4 {
		t.Errorf("user config should win over local, toast.duration = %v", cfg.Toast.Duration)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero anim duration", func(c *GameConfig) { c.Water.AnimDuration = 0 }},
		{"zero percent start", func(c *GameConfig) { c.Rise.PercentStart = 0 }},
		{"negative step", func(c *GameConfig) { c.Rise.PercentStep = -0.1 }},
		{"zero block height", func(c *GameConfig) { c.Tower.BlockHeight = 0 }},
		{"negative baseline", func(c *GameConfig) { c.Tower.BaselineOffset = -1 }},
		{"zero toast", func(c *GameConfig) { c.Toast.Duration = 0 }},
		{"follow factor too big", func(c *GameConfig) { c.Camera.FollowFactor = 1.5 }},
		{"volume too loud", func(c *GameConfig) { c.Audio.Volume = 2 }},
		{"unknown source", func(c *GameConfig) { c.Words.Source = "web" }},
		{"bad log level", func(c *GameConfig) { c.Log.Level = "chatty" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	normal := RiseForPreset(DifficultyNormal)
	if normal.PercentStart != 0.50 || normal.PercentStep != 0.10 {
		t.Errorf("normal preset = %+v, expected 0.50/0.10", normal)
	}

	easy, hard := RiseForPreset(DifficultyEasy), RiseForPreset(DifficultyHard)
	if easy.PercentStart >= normal.PercentStart || hard.PercentStart <= normal.PercentStart {
		t.Error("presets should be ordered easy < normal < hard")
	}

	cfg := DefaultGameConfig()
	cfg.Rise.PercentStep = 0.3
	ApplyPreset(&cfg, "")
	if cfg.Rise.PercentStep != 0.3 {
		t.Error("empty preset should leave rise untouched")
	}
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Rise != hard {
		t.Errorf("Rise = %+v, expected %+v", cfg.Rise, hard)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", ""} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset should be ErrInvalid, got %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, expected string
	}{
		{"~/.textordie/words", filepath.Join(home, ".textordie", "words")},
		{"~", home},
		{"/tmp/x", "/tmp/x"},
		{"relative/~/x", "relative/~/x"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := ExpandHome(tc.in); got != tc.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
