package config

import (
	_ "embed"
)

//go:embed defaults/textordie.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration. It mirrors the
// embedded defaults/textordie.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Water: WaterConfig{
			AnimDuration: 0.9,
		},
		Rise: RiseConfig{
			PercentStart: 0.50,
			PercentStep:  0.10,
		},
		Tower: TowerConfig{
			BlockHeight:    28,
			BaselineOffset: 30,
		},
		Toast: ToastConfig{
			Duration: 2.0,
		},
		Camera: CameraConfig{
			FollowFactor: 0.12,
		},
		Words: WordsConfig{
			Source: SourceFiles,
			Dir:    "~/.textordie/words",
			DB:     "~/.textordie/words.db",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.textordie/textordie.log",
		},
	}
}
