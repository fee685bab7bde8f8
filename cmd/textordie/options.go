package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/text-or-die/internal/config"
	"github.com/vovakirdan/text-or-die/internal/game"
)

// sessionOptions maps the file configuration onto session tuning.
func sessionOptions(cfg config.GameConfig, category string, seed int64, logger *log.Logger) game.Options {
	return game.Options{
		PercentStart:   cfg.Rise.PercentStart,
		PercentStep:    cfg.Rise.PercentStep,
		BlockHeight:    cfg.Tower.BlockHeight,
		BaselineOffset: cfg.Tower.BaselineOffset,
		RiseDuration:   cfg.Water.AnimDuration,
		ToastDuration:  cfg.Toast.Duration,
		FollowFactor:   cfg.Camera.FollowFactor,
		Category:       category,
		Seed:           seed,
		Logger:         logger,
	}
}
