package game

import (
	"math"

	"github.com/vovakirdan/text-or-die/internal/core"
)

// DefaultRiseDuration is how long one rise animation lasts, in seconds.
const DefaultRiseDuration = 0.9

// Water tracks how far the flood has risen above its baseline and animates
// each rise. Heights are world units measured upward from the baseline,
// so 0 means fully lowered.
type Water struct {
	height   float64
	duration float64
	anim     core.Animator
	visible  bool

	// wordLengths holds the length of every accepted word, in order.
	// Only its mean is used, to size each rise.
	wordLengths []int
	lengthSum   int
}

// NewWater creates lowered, hidden water whose rises last duration seconds.
func NewWater(duration float64) *Water {
	return &Water{duration: duration}
}

// RiseBy starts animating the water up by amount. Non-positive or
// non-finite amounts are ignored, which keeps the height monotonic.
//
// A rise that arrives while another is still animating continues from the
// current height toward the pending target plus amount, so no rise is lost.
func (w *Water) RiseBy(amount float64) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return
	}

	to := w.height + amount
	if w.anim.Active() {
		to = math.Max(w.height, w.anim.Target()) + amount
	}
	w.anim.Start(w.height, to, w.duration)
	w.visible = true
}

// RecordWordAndRise adds an accepted word's length to the history and rises
// by the historical average length scaled by percent and pixelsPerLetter.
func (w *Water) RecordWordAndRise(wordLength int, percent, pixelsPerLetter float64) {
	w.wordLengths = append(w.wordLengths, max(1, wordLength))
	w.lengthSum += max(1, wordLength)

	avg, _ := w.Average()
	w.RiseBy(avg * percent * pixelsPerLetter)
}

// Update advances the rise animation by dt seconds.
func (w *Water) Update(dt float64) {
	if !w.anim.Active() {
		return
	}
	w.height, _ = w.anim.Advance(dt)
}

// Average returns the mean accepted word length, and false when no word has
// been accepted yet.
func (w *Water) Average() (float64, bool) {
	if len(w.wordLengths) == 0 {
		return 0, false
	}
	return float64(w.lengthSum) / float64(len(w.wordLengths)), true
}

// Height returns the current (possibly mid-animation) height.
func (w *Water) Height() float64 {
	return w.height
}

// Target returns the height the water is heading to.
func (w *Water) Target() float64 {
	if w.anim.Active() {
		return w.anim.Target()
	}
	return w.height
}

// IsAnimating reports whether a rise is in progress.
func (w *Water) IsAnimating() bool {
	return w.anim.Active()
}

// IsVisible reports whether the water has risen at least once since the
// last reset.
func (w *Water) IsVisible() bool {
	return w.visible
}

// WordLengths returns a copy of the recorded word lengths.
func (w *Water) WordLengths() []int {
	out := make([]int, len(w.wordLengths))
	copy(out, w.wordLengths)
	return out
}

// Reset lowers and hides the water and forgets the word history.
func (w *Water) Reset() {
	w.height = 0
	w.anim.Reset(0)
	w.visible = false
	w.wordLengths = w.wordLengths[:0]
	w.lengthSum = 0
}

// RiseByAverage rises by the current average word length scaled by percent
// and pixelsPerLetter without recording anything. When no word has been
// accepted yet, fallbackLength stands in for the average.
func (w *Water) RiseByAverage(fallbackLength int, percent, pixelsPerLetter float64) {
	avg, ok := w.Average()
	if !ok {
		avg = float64(fallbackLength)
	}
	w.RiseBy(avg * percent * pixelsPerLetter)
}
