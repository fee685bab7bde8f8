package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/text-or-die/internal/config"
	"github.com/vovakirdan/text-or-die/internal/storage"
	"github.com/vovakirdan/text-or-die/internal/words"
)

// app bundles what every subcommand needs.
type app struct {
	cfg    config.GameConfig
	preset config.DifficultyPreset
	logger *log.Logger
}

// setup loads the configuration in precedence order (file, .env and
// TOD_* variables, then flags) and builds the logger.
func setup() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	dotenv, err := config.ReadDotEnv(".env")
	if err != nil {
		return nil, err
	}
	preset, err := config.ApplyEnv(&cfg, config.EnvLookup(dotenv))
	if err != nil {
		return nil, err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	cfg = cfg.Expand()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := log.ParseLevel(cfg.Log.Level)
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "textordie",
		Level:           level,
	})

	return &app{cfg: cfg, preset: preset, logger: logger}, nil
}

// logToFile redirects the logger to the configured log file so the alt
// screen stays clean. The returned func closes the file.
func (a *app) logToFile() func() {
	path := a.cfg.Log.File
	if path == "" {
		return func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		a.logger.Warn("cannot create log directory, logging to stderr", "err", err)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		a.logger.Warn("cannot open log file, logging to stderr", "path", path, "err", err)
		return func() {}
	}

	a.logger.SetOutput(f)
	return func() {
		a.logger.SetOutput(os.Stderr)
		_ = f.Close()
	}
}

// openStore opens the word bank, seeding it with the built-in categories
// the first time.
func (a *app) openStore() (*storage.Store, error) {
	store, err := storage.Open(a.cfg.Words.DB, a.logger)
	if err != nil {
		return nil, err
	}

	stats, err := store.Stats()
	if err != nil {
		store.Close()
		return nil, err
	}
	if len(stats) == 0 {
		def, err := words.DefaultPack()
		if err != nil {
			store.Close()
			return nil, err
		}
		res, err := store.ImportPack(def)
		if err != nil {
			store.Close()
			return nil, err
		}
		a.logger.Info("seeded word bank", "path", a.cfg.Words.DB, "categories", res.Categories, "words", res.Added)
	}
	return store, nil
}

// provider returns the configured word source as an in-memory catalog.
func (a *app) provider() (*words.Catalog, error) {
	switch a.cfg.Words.Source {
	case config.SourceDB:
		store, err := a.openStore()
		if err != nil {
			return nil, err
		}
		defer store.Close()

		c, err := store.Catalog()
		if err != nil {
			return nil, err
		}
		words.WarnEmpty(c, a.logger)
		return c, nil

	case config.SourceFiles:
		return words.LoadCatalog(a.cfg.Words.Dir, a.logger)
	}
	return nil, fmt.Errorf("%w: unknown word source %q", config.ErrInvalid, a.cfg.Words.Source)
}
