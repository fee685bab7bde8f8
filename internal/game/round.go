package game

import (
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/text-or-die/internal/words"
)

// Rise balancing defaults. The fraction of the average word length turned
// into water grows by PercentStep every round, without a cap.
const (
	PercentStart = 0.50
	PercentStep  = 0.10
)

// State is the round controller's lifecycle state.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Outcome classifies one resolved submission.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeDuplicate
	OutcomeWrong
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeWrong:
		return "wrong"
	default:
		return "none"
	}
}

// RoundRules holds the tunables of the rise formula.
type RoundRules struct {
	PercentStart    float64
	PercentStep     float64
	PixelsPerLetter float64
}

// DefaultRoundRules returns the stock rise constants for a block height.
func DefaultRoundRules(pixelsPerLetter float64) RoundRules {
	return RoundRules{
		PercentStart:    PercentStart,
		PercentStep:     PercentStep,
		PixelsPerLetter: pixelsPerLetter,
	}
}

// RoundController is the quiz state machine. It resolves submissions
// against the category vocabulary and drives the water and tower.
type RoundController struct {
	rules RoundRules
	water *Water
	tower *Tower

	state      State
	round      int
	score      int
	category   string
	candidates words.Set
	used       words.Set
	pending    []rune
}

// NewRoundController creates a controller playing category with the given
// vocabulary. A nil vocabulary behaves like an empty one.
func NewRoundController(rules RoundRules, water *Water, tower *Tower, category string, candidates words.Set) *RoundController {
	rc := &RoundController{rules: rules, water: water, tower: tower}
	rc.Reset(category, candidates)
	return rc
}

// Reset starts a fresh game: round 1, score 0, nothing used, water lowered
// and the tower cleared.
func (rc *RoundController) Reset(category string, candidates words.Set) {
	if candidates == nil {
		candidates = words.NewSet()
	}
	rc.state = StatePlaying
	rc.round = 1
	rc.score = 0
	rc.category = category
	rc.candidates = candidates
	rc.used = words.NewSet()
	rc.pending = rc.pending[:0]
	rc.water.Reset()
	rc.tower.Reset()
}

// RiseFraction returns the share of the average word length that the
// current round converts into water.
func (rc *RoundController) RiseFraction() float64 {
	return rc.rules.PercentStart + rc.rules.PercentStep*float64(rc.round-1)
}

// Submit resolves one typed word. The second result is false when the word
// is blank or the game is already over; nothing changes in that case.
func (rc *RoundController) Submit(raw string) (Outcome, bool) {
	if rc.state != StatePlaying {
		return OutcomeNone, false
	}
	word := words.Normalize(raw)
	if word == "" {
		return OutcomeNone, false
	}
	length := utf8.RuneCountInString(word)
	fraction := rc.RiseFraction()

	switch {
	case rc.used.Has(word):
		rc.water.RiseByAverage(length, fraction, rc.rules.PixelsPerLetter)
		rc.round++
		return OutcomeDuplicate, true

	case rc.candidates.Has(word):
		rc.used.Add(word)
		rc.tower.AppendWord(word)
		rc.score += length * 10
		rc.water.RecordWordAndRise(length, fraction, rc.rules.PixelsPerLetter)
		rc.round++
		return OutcomeCorrect, true

	default:
		if rc.round == 1 {
			rc.state = StateGameOver
			return OutcomeWrong, true
		}
		rc.water.RiseByAverage(length, fraction, rc.rules.PixelsPerLetter)
		rc.round++
		return OutcomeWrong, true
	}
}

// CheckFlood ends the game once the water has reached the top of a
// non-empty tower. It is meant to run once per frame after the water update
// and reports whether the game is over.
func (rc *RoundController) CheckFlood() bool {
	if rc.state == StatePlaying && rc.tower.Len() > 0 && rc.water.Height() >= rc.tower.TopExtent() {
		rc.state = StateGameOver
	}
	return rc.state == StateGameOver
}

// Type appends a printable rune to the pending input.
func (rc *RoundController) Type(r rune) {
	if rc.state != StatePlaying || !unicode.IsPrint(r) {
		return
	}
	rc.pending = append(rc.pending, r)
}

// Backspace removes the last pending rune.
func (rc *RoundController) Backspace() {
	if rc.state != StatePlaying || len(rc.pending) == 0 {
		return
	}
	rc.pending = rc.pending[:len(rc.pending)-1]
}

// Commit submits the pending input and clears it.
func (rc *RoundController) Commit() (Outcome, bool) {
	if rc.state != StatePlaying {
		return OutcomeNone, false
	}
	raw := string(rc.pending)
	rc.pending = rc.pending[:0]
	return rc.Submit(raw)
}

// Pending returns the text typed so far.
func (rc *RoundController) Pending() string {
	return string(rc.pending)
}

// Round returns the current round number, starting at 1.
func (rc *RoundController) Round() int { return rc.round }

// Score returns the points earned so far.
func (rc *RoundController) Score() int { return rc.score }

// Category returns the key of the category being played.
func (rc *RoundController) Category() string { return rc.category }

func (rc *RoundController) State() State { return rc.state }

func (rc *RoundController) IsGameOver() bool { return rc.state == StateGameOver }

// Vocabulary returns the number of accepted answers for the category.
func (rc *RoundController) Vocabulary() int { return rc.candidates.Len() }

// UsedWords returns the accepted words in alphabetical order.
func (rc *RoundController) UsedWords() []string {
	return rc.used.Sorted()
}
