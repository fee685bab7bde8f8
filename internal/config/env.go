package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvLogLevel    = "TOD_LOG_LEVEL"
	EnvLogFile     = "TOD_LOG_FILE"
	EnvWordsSource = "TOD_WORDS_SOURCE"
	EnvWordsDir    = "TOD_WORDS_DIR"
	EnvWordsDB     = "TOD_WORDS_DB"
	EnvAudio       = "TOD_AUDIO"
	EnvMusic       = "TOD_MUSIC"
	EnvVolume      = "TOD_VOLUME"
	EnvDifficulty  = "TOD_DIFFICULTY"
)

// LookupFunc finds an environment value.
type LookupFunc func(key string) (string, bool)

// ReadDotEnv reads the given .env files without touching the process
// environment. Missing files are skipped; later files win.
func ReadDotEnv(files ...string) (map[string]string, error) {
	out := make(map[string]string)
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		for k, v := range vals {
			out[k] = v
		}
	}
	return out, nil
}

// EnvLookup checks the process environment first and falls back to the
// values read from .env files.
func EnvLookup(dotenv map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// ApplyEnv overrides cfg with every TOD_* variable that lookup finds.
// It returns the difficulty preset named by TOD_DIFFICULTY, if any.
func ApplyEnv(cfg *GameConfig, lookup LookupFunc) (DifficultyPreset, error) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str(EnvLogLevel, &cfg.Log.Level)
	str(EnvLogFile, &cfg.Log.File)
	str(EnvWordsSource, &cfg.Words.Source)
	str(EnvWordsDir, &cfg.Words.Dir)
	str(EnvWordsDB, &cfg.Words.DB)
	str(EnvMusic, &cfg.Audio.Music)

	if v, ok := lookup(EnvAudio); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "", fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvAudio, v, err)
		}
		cfg.Audio.Enabled = b
	}
	if v, ok := lookup(EnvVolume); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvVolume, v, err)
		}
		cfg.Audio.Volume = f
	}

	var preset DifficultyPreset
	if v, ok := lookup(EnvDifficulty); ok {
		p, err := ParsePreset(v)
		if err != nil {
			return "", err
		}
		preset = p
	}
	return preset, nil
}
