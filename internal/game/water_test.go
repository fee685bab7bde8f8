package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func settle(w *Water) {
	for i := 0; i < 200 && w.IsAnimating(); i++ {
		w.Update(1.0 / 60.0)
	}
}

func TestWaterRiseConvergesToSum(t *testing.T) {
	w := NewWater(DefaultRiseDuration)
	amounts := []float64{14, 30.5, 7, 42, 0.25}

	prev := 0.0
	sum := 0.0
	for i, a := range amounts {
		w.RiseBy(a)
		sum += a
		// Only part of the animation runs before the next rise lands.
		for j := 0; j < 10+i*7; j++ {
			w.Update(1.0 / 60.0)
			if w.Height() < prev {
				t.Fatalf("height decreased: %v -> %v", prev, w.Height())
			}
			prev = w.Height()
		}
	}

	w.Update(DefaultRiseDuration)
	if math.Abs(w.Height()-sum) > eps {
		t.Errorf("Height() = %v, expected %v", w.Height(), sum)
	}
	if w.IsAnimating() {
		t.Error("animation should be finished")
	}
}

func TestWaterRiseIgnoresMalformedAmounts(t *testing.T) {
	w := NewWater(DefaultRiseDuration)
	for _, a := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		w.RiseBy(a)
	}

	if w.IsAnimating() || w.IsVisible() {
		t.Error("malformed rises should not start an animation or show the water")
	}
	if w.Height() != 0 || w.Target() != 0 {
		t.Errorf("height = %v, target = %v, expected 0", w.Height(), w.Target())
	}
}

func TestWaterVisibilityLatch(t *testing.T) {
	w := NewWater(DefaultRiseDuration)
	if w.IsVisible() {
		t.Fatal("new water should be hidden")
	}

	w.RiseBy(10)
	settle(w)
	if !w.IsVisible() {
		t.Error("water should be visible after a rise")
	}

	w.Reset()
	if w.IsVisible() || w.Height() != 0 || len(w.WordLengths()) != 0 {
		t.Error("Reset should hide, lower and forget history")
	}
}

func TestWaterRiseAmountFromHistory(t *testing.T) {
	w := NewWater(DefaultRiseDuration)
	// A zero percent records lengths without rising.
	w.RecordWordAndRise(3, 0, 28)
	w.RecordWordAndRise(5, 0, 28)
	if w.IsAnimating() {
		t.Fatal("zero percent should not rise")
	}

	avg, ok := w.Average()
	if !ok || avg != 4 {
		t.Fatalf("Average() = %v, %v, expected 4, true", avg, ok)
	}

	w.RiseByAverage(99, 0.70, 28)
	if math.Abs(w.Target()-78.4) > eps {
		t.Errorf("rise target = %v, expected 78.4", w.Target())
	}
	settle(w)
	if w.Height() != w.Target() {
		t.Errorf("settled height %v should equal target %v", w.Height(), w.Target())
	}
}

func TestWaterRecordClampsLength(t *testing.T) {
	w := NewWater(DefaultRiseDuration)
	w.RecordWordAndRise(0, 0.5, 28)

	if got := w.WordLengths(); len(got) != 1 || got[0] != 1 {
		t.Errorf("WordLengths() = %v, expected [1]", got)
	}
	if math.Abs(w.Target()-14) > eps {
		t.Errorf("Target() = %v, expected 14", w.Target())
	}
}

func TestWaterAverageFallback(t *testing.T) {
	w := NewWater(DefaultRiseDuration)
	w.RiseByAverage(6, 0.5, 10)

	if math.Abs(w.Target()-30) > eps {
		t.Errorf("empty history should use fallback length, target = %v", w.Target())
	}
}
