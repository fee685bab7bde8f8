package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets, easiest first.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag value into a preset. An empty string means
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (use easy, normal or hard)", ErrInvalid, s)
}

// RiseForPreset returns the rise constants of a preset.
func RiseForPreset(preset DifficultyPreset) RiseConfig {
	switch preset {
	case DifficultyEasy:
		return RiseConfig{PercentStart: 0.40, PercentStep: 0.05}
	case DifficultyHard:
		return RiseConfig{PercentStart: 0.60, PercentStep: 0.15}
	default:
		return RiseConfig{PercentStart: 0.50, PercentStep: 0.10}
	}
}

// ApplyPreset overwrites the rise constants with the preset's. An empty
// preset leaves the configuration untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Rise = RiseForPreset(preset)
}
