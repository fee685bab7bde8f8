// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty presets for Text or Die.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Word sources.
const (
	SourceFiles = "files" // embedded defaults merged with a directory of word files
	SourceDB    = "db"    // SQLite word bank
)

// GameConfig contains all configuration for a game of Text or Die.
type GameConfig struct {
	Water  WaterConfig  `yaml:"water"`
	Rise   RiseConfig   `yaml:"rise"`
	Tower  TowerConfig  `yaml:"tower"`
	Toast  ToastConfig  `yaml:"toast"`
	Camera CameraConfig `yaml:"camera"`
	Words  WordsConfig  `yaml:"words"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

// WaterConfig defines the water animation.
type WaterConfig struct {
	AnimDuration float64 `yaml:"anim_duration"` // Seconds per rise
}

// RiseConfig defines how much the water rises each round.
type RiseConfig struct {
	PercentStart float64 `yaml:"percent_start"` // Fraction of the average word length on round 1
	PercentStep  float64 `yaml:"percent_step"`  // Added to the fraction every round
}

// TowerConfig defines block geometry in world units.
type TowerConfig struct {
	BlockHeight    float64 `yaml:"block_height"`
	BaselineOffset float64 `yaml:"baseline_offset"` // Gap between lowered water and the first block
}

// ToastConfig defines feedback messages.
type ToastConfig struct {
	Duration float64 `yaml:"duration"`
}

// CameraConfig defines how the view follows the tower.
type CameraConfig struct {
	FollowFactor float64 `yaml:"follow_factor"` // Share of the distance covered per 60 Hz frame
}

// WordsConfig defines where categories come from.
type WordsConfig struct {
	Source string `yaml:"source"` // "files" or "db"
	Dir    string `yaml:"dir"`
	DB     string `yaml:"db"`
}

// AudioConfig defines background music and cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Music   string  `yaml:"music"`
	Volume  float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
}

// LogConfig defines the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate reports the first setting that would break the game.
func (c GameConfig) Validate() error {
	switch {
	case c.Water.AnimDuration <= 0:
		return fmt.Errorf("%w: water.anim_duration must be positive", ErrInvalid)
	case c.Rise.PercentStart <= 0:
		return fmt.Errorf("%w: rise.percent_start must be positive", ErrInvalid)
	case c.Rise.PercentStep < 0:
		return fmt.Errorf("%w: rise.percent_step must not be negative", ErrInvalid)
	case c.Tower.BlockHeight <= 0:
		return fmt.Errorf("%w: tower.block_height must be positive", ErrInvalid)
	case c.Tower.BaselineOffset < 0:
		return fmt.Errorf("%w: tower.baseline_offset must not be negative", ErrInvalid)
	case c.Toast.Duration <= 0:
		return fmt.Errorf("%w: toast.duration must be positive", ErrInvalid)
	case c.Camera.FollowFactor <= 0 || c.Camera.FollowFactor > 1:
		return fmt.Errorf("%w: camera.follow_factor must be in (0, 1]", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1]", ErrInvalid)
	case c.Words.Source != SourceFiles && c.Words.Source != SourceDB:
		return fmt.Errorf("%w: words.source must be %q or %q", ErrInvalid, SourceFiles, SourceDB)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}
