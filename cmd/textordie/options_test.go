package main

import (
	"testing"

	"github.com/vovakirdan/text-or-die/internal/config"
	"github.com/vovakirdan/text-or-die/internal/game"
)

func TestSessionOptionsFromDefaults(t *testing.T) {
	opts := sessionOptions(config.DefaultGameConfig(), "fruits", 7, nil)
	def := game.DefaultOptions()

	if opts.PercentStart != def.PercentStart || opts.PercentStep != def.PercentStep {
		t.Errorf("rise = %v/%v, expected %v/%v", opts.PercentStart, opts.PercentStep, def.PercentStart, def.PercentStep)
	}
	if opts.BlockHeight != def.BlockHeight || opts.BaselineOffset != def.BaselineOffset {
		t.Errorf("tower = %v/%v, expected %v/%v", opts.BlockHeight, opts.BaselineOffset, def.BlockHeight, def.BaselineOffset)
	}
	if opts.RiseDuration != def.RiseDuration || opts.ToastDuration != def.ToastDuration {
		t.Errorf("durations = %v/%v", opts.RiseDuration, opts.ToastDuration)
	}
	if opts.FollowFactor != def.FollowFactor {
		t.Errorf("follow factor = %v, expected %v", opts.FollowFactor, def.FollowFactor)
	}
	if opts.Category != "fruits" || opts.Seed != 7 {
		t.Errorf("category/seed = %q/%d", opts.Category, opts.Seed)
	}
}

func TestSessionOptionsFollowPreset(t *testing.T) {
	cfg := config.DefaultGameConfig()
	config.ApplyPreset(&cfg, config.DifficultyHard)

	opts := sessionOptions(cfg, "", 1, nil)
	if opts.PercentStart != 0.60 || opts.PercentStep != 0.15 {
		t.Errorf("hard rise = %v/%v, expected 0.60/0.15", opts.PercentStart, opts.PercentStep)
	}
}
