package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/text-or-die/internal/audio"
	"github.com/vovakirdan/text-or-die/internal/config"
	"github.com/vovakirdan/text-or-die/internal/core"
	"github.com/vovakirdan/text-or-die/internal/game"
	"github.com/vovakirdan/text-or-die/internal/platform/tui"
	"github.com/vovakirdan/text-or-die/internal/words"
)

var (
	flagDifficulty string
	flagWordsDir   string
	flagDB         string
	flagNoAudio    bool
	flagMusic      string
)

var playCmd = &cobra.Command{
	Use:   "play [category]",
	Short: "Play a game",
	Long: `Start playing. Without a category a picker menu is shown; its first
entry picks a random category on every start and restart.

Controls:
  Letters     - Type the answer
  Enter       - Submit
  Backspace   - Erase
  R           - Restart (after game over)
  Q/Esc       - Quit

Difficulty options:
  easy   - Water rises 40% of the average word, +5% per round
  normal - Water rises 50% of the average word, +10% per round
  hard   - Water rises 60% of the average word, +15% per round

Examples:
  textordie play
  textordie play car_brands
  textordie play fruits --difficulty easy
  textordie play --words-dir ./my-words --no-audio
  textordie play --db ~/.textordie/words.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagWordsDir, "words-dir", "", "Directory of .txt/.yaml word files")
	playCmd.Flags().StringVar(&flagDB, "db", "", "Play from the SQLite word bank at this path")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable music and sound cues")
	playCmd.Flags().StringVar(&flagMusic, "music", "", "Background music file (mp3 or wav)")
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if preset == "" {
		preset = a.preset
	}
	config.ApplyPreset(&a.cfg, preset)

	if flagWordsDir != "" {
		a.cfg.Words.Source = config.SourceFiles
		a.cfg.Words.Dir = config.ExpandHome(flagWordsDir)
	}
	if flagDB != "" {
		a.cfg.Words.Source = config.SourceDB
		a.cfg.Words.DB = config.ExpandHome(flagDB)
	}
	if flagNoAudio {
		a.cfg.Audio.Enabled = false
	}
	if flagMusic != "" {
		a.cfg.Audio.Music = config.ExpandHome(flagMusic)
	}

	// Load words before the alt screen so warnings stay visible.
	provider, err := a.provider()
	if err != nil {
		return err
	}

	category := ""
	if len(args) == 1 {
		category = words.Normalize(args[0])
		if _, ok := provider.Lookup(category); !ok {
			return fmt.Errorf("%q: %w (run 'textordie categories')", category, words.ErrUnknownCategory)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	restore := a.logToFile()
	defer restore()

	player := audio.New(audio.Options{
		Enabled: a.cfg.Audio.Enabled,
		Volume:  a.cfg.Audio.Volume,
		Logger:  a.logger,
	})
	defer player.Close()

	if a.cfg.Audio.Music != "" {
		if err := player.PlayMusic(a.cfg.Audio.Music); err != nil {
			a.logger.Warn("music unavailable", "path", a.cfg.Audio.Music, "err", err)
		}
	}

	if category != "" {
		return playSession(a, provider, player, cfg, category)
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(provider, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsBrowser {
			goBack, err := tui.RunBrowser(provider, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if err := playSession(a, provider, player, cfg, menuResult.Category); err != nil {
			return err
		}
		// Loop back to menu
	}
}

// playSession runs one game until the player quits. An empty category
// picks a random one on start and on every restart.
func playSession(a *app, provider words.Provider, player audio.Player, cfg core.RuntimeConfig, category string) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := game.NewSession(provider, sessionOptions(a.cfg, category, seed, a.logger))
	if err != nil {
		return err
	}
	return tui.Run(session, player, cfg, a.logger)
}
