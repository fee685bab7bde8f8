package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/text-or-die/internal/core"
	"github.com/vovakirdan/text-or-die/internal/words"
)

// ErrNoCategories is returned when the provider has nothing to play.
var ErrNoCategories = errors.New("game: no categories available")

// DefaultBlockHeight is the height of one tower block. A letter's worth of
// water rise is the same distance.
const DefaultBlockHeight = 28.0

// DefaultBaselineOffset is the gap between the lowered water surface and the
// bottom of the first block.
const DefaultBaselineOffset = 30.0

// Options configures a Session.
type Options struct {
	PercentStart   float64
	PercentStep    float64
	BlockHeight    float64
	BaselineOffset float64
	RiseDuration   float64
	ToastDuration  float64
	FollowFactor   float64

	// Category pins the category key. Empty picks one at random on every
	// start and restart.
	Category string
	Seed     int64
	Logger   *log.Logger
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		PercentStart:   PercentStart,
		PercentStep:    PercentStep,
		BlockHeight:    DefaultBlockHeight,
		BaselineOffset: DefaultBaselineOffset,
		RiseDuration:   DefaultRiseDuration,
		ToastDuration:  DefaultToastDuration,
		FollowFactor:   DefaultFollowFactor,
	}
}

// Session wires the round controller, water, tower, toast and camera into
// the per-frame loop an outer driver calls.
type Session struct {
	opts     Options
	provider words.Provider
	logger   *log.Logger
	rng      *rand.Rand

	water  *Water
	tower  *Tower
	round  *RoundController
	toast  *Toast
	camera *Camera

	category words.Category
	over     bool
}

// NewSession creates a session and starts the first game.
func NewSession(provider words.Provider, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		opts:     opts,
		provider: provider,
		logger:   logger,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		water:    NewWater(opts.RiseDuration),
		tower:    NewTower(opts.BaselineOffset, opts.BlockHeight),
		toast:    NewToast(opts.ToastDuration),
		camera:   NewCamera(opts.FollowFactor),
	}

	cat, err := s.pickCategory()
	if err != nil {
		return nil, err
	}
	rules := RoundRules{
		PercentStart:    opts.PercentStart,
		PercentStep:     opts.PercentStep,
		PixelsPerLetter: opts.BlockHeight,
	}
	s.round = NewRoundController(rules, s.water, s.tower, cat.Key, s.vocabulary(cat))
	s.category = cat
	return s, nil
}

func (s *Session) pickCategory() (words.Category, error) {
	cats := s.provider.Categories()
	if s.opts.Category != "" {
		for _, c := range cats {
			if c.Key == s.opts.Category {
				return c, nil
			}
		}
		return words.Category{}, fmt.Errorf("game: %q: %w", s.opts.Category, words.ErrUnknownCategory)
	}
	if len(cats) == 0 {
		return words.Category{}, ErrNoCategories
	}
	return cats[s.rng.Intn(len(cats))], nil
}

func (s *Session) vocabulary(cat words.Category) words.Set {
	set := s.provider.Words(cat.Key)
	if set.Len() == 0 {
		s.logger.Warn("category has no words, every answer will be wrong", "category", cat.Key)
	}
	s.logger.Debug("category selected", "category", cat.Key, "words", set.Len())
	return set
}

// Handle applies one input event. It returns the outcome when the event
// resolved a submission.
func (s *Session) Handle(ev core.Event) (Outcome, bool) {
	switch ev.Kind {
	case core.EventCharacterTyped:
		s.round.Type(ev.Rune)
	case core.EventBackspace:
		s.round.Backspace()
	case core.EventSubmit:
		outcome, ok := s.round.Commit()
		if ok {
			s.toast.ShowOutcome(outcome)
			s.logger.Debug("submission", "outcome", outcome, "round", s.round.Round(), "score", s.round.Score())
		}
		return outcome, ok
	case core.EventRestart:
		if s.round.IsGameOver() {
			s.Restart()
		}
	}
	return OutcomeNone, false
}

// Restart begins a new game, choosing the category again.
func (s *Session) Restart() {
	cat, err := s.pickCategory()
	if err != nil {
		s.logger.Warn("restart keeps current category", "err", err)
		cat = s.category
	}
	s.category = cat
	s.round.Reset(cat.Key, s.vocabulary(cat))
	s.toast.Clear()
	s.camera.Reset()
	s.over = false
}

// Update advances the frame by dt seconds: water, flood check, toast and
// camera, in that order.
func (s *Session) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	s.water.Update(dt)
	if s.round.CheckFlood() && !s.over {
		s.over = true
		s.logger.Info("game over", "category", s.category.Key, "round", s.round.Round(), "score", s.round.Score())
	}
	s.toast.Update(dt)

	s.camera.Follow(dt, s.tower.Len() > 0, s.tower.TopExtent(), s.tower.BottomExtent()+s.tower.BlockHeight())
}

// SetViewport tells the camera how much of the world fits on screen.
func (s *Session) SetViewport(height, rest float64) {
	s.camera.SetViewport(height, rest)
}

// Round exposes the controller for read-only queries.
func (s *Session) Round() *RoundController {
	return s.round
}

// Snapshot is a read-only view of the session for renderers.
type Snapshot struct {
	State        State
	Round        int
	Score        int
	Category     words.Category
	Pending      string
	RiseFraction float64

	WaterHeight  float64
	WaterTarget  float64
	WaterVisible bool
	Average      float64
	HasAverage   bool

	Blocks         []Block
	BlockHeight    float64
	BaselineOffset float64
	TowerTop       float64

	Camera     float64
	Toast      string
	ToastKind  ToastKind
	Vocabulary int
}

// Snapshot returns the current state for drawing.
func (s *Session) Snapshot() Snapshot {
	avg, ok := s.water.Average()
	return Snapshot{
		State:        s.round.State(),
		Round:        s.round.Round(),
		Score:        s.round.Score(),
		Category:     s.category,
		Pending:      s.round.Pending(),
		RiseFraction: s.round.RiseFraction(),

		WaterHeight:  s.water.Height(),
		WaterTarget:  s.water.Target(),
		WaterVisible: s.water.IsVisible(),
		Average:      avg,
		HasAverage:   ok,

		Blocks:         s.tower.Blocks(),
		BlockHeight:    s.tower.BlockHeight(),
		BaselineOffset: s.tower.BottomExtent(),
		TowerTop:       s.tower.TopExtent(),

		Camera:     s.camera.Offset(),
		Toast:      s.toast.Text,
		ToastKind:  s.toast.Kind,
		Vocabulary: s.round.Vocabulary(),
	}
}
