package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/vovakirdan/text-or-die/internal/core"
	"github.com/vovakirdan/text-or-die/internal/game"
)

// Scene layout constants
const (
	hudRows    = 5  // Input box, category/score and toast/round lines
	groundRows = 3  // Rows below the water baseline shown while the camera rests
	minSceneW  = 32 // Narrower terminals get a warning instead of the scene
	minSceneH  = 12
)

// Scene draws a game snapshot into a screen buffer. One tower block maps to
// one terminal row; the camera offset selects which world rows are shown.
type Scene struct{}

// NewScene creates a scene renderer.
func NewScene() *Scene {
	return &Scene{}
}

// Viewport returns the world height visible below the HUD and the camera
// rest offset for a screen of the given height.
func (sc *Scene) Viewport(screenH int, blockHeight float64) (height, rest float64) {
	rows := max(1, screenH-hudRows)
	return float64(rows) * blockHeight, -groundRows * blockHeight
}

// Draw renders snap. t is the wall time in seconds and only animates waves
// and the cursor.
func (sc *Scene) Draw(s *core.Screen, snap game.Snapshot, t float64) {
	s.Clear()

	if s.Width() < minSceneW || s.Height() < minSceneH {
		s.DrawTextCentered(s.Height()/2, "Terminal too small", core.ColorBad)
		return
	}

	sc.drawGround(s, snap)
	surface := sc.drawWater(s, snap, t)
	sc.drawTower(s, snap, surface)
	sc.drawHUD(s, snap, t)

	if snap.State == game.StateGameOver {
		sc.drawGameOver(s, snap)
	}
}

// rowFor returns the screen row holding world height h.
func (sc *Scene) rowFor(s *core.Screen, snap game.Snapshot, h float64) int {
	bh := snap.BlockHeight
	if bh <= 0 {
		bh = 1
	}
	return s.Height() - 1 - int(math.Floor((h-snap.Camera)/bh+1e-9))
}

func (sc *Scene) drawGround(s *core.Screen, snap game.Snapshot) {
	top := max(hudRows, sc.rowFor(s, snap, -1e-6))
	for y := top; y < s.Height(); y++ {
		s.DrawHLine(0, y, s.Width(), '▒', core.ColorDim)
	}
}

// drawWater fills everything below the surface and returns the surface row,
// or -1 while the water is hidden.
func (sc *Scene) drawWater(s *core.Screen, snap game.Snapshot, t float64) int {
	if !snap.WaterVisible {
		return -1
	}

	surface := sc.rowFor(s, snap, snap.WaterHeight)
	for y := max(hudRows, surface+1); y < s.Height(); y++ {
		s.DrawHLine(0, y, s.Width(), ' ', core.ColorWater)
	}

	if surface >= hudRows && surface < s.Height() {
		for x := 0; x < s.Width(); x++ {
			s.Set(x, surface, waveRune(x, t), core.ColorWaterSurface)
		}
	}
	if spray := surface - 1; spray >= hudRows && spray < s.Height() {
		for x := 0; x < s.Width(); x++ {
			if math.Sin(float64(x)/3.0+t*2.0) > 0.93 {
				s.Set(x, spray, '·', core.ColorHighlight)
			}
		}
	}
	return surface
}

// waveRune picks the surface glyph for column x at time t from two
// overlapping sine waves.
func waveRune(x int, t float64) rune {
	fx := float64(x)
	v := math.Sin(fx/6.0+t*2.0)*0.6 + math.Sin(fx/10.0+t*2.0)*0.4
	switch {
	case v > 0.35:
		return '~'
	case v > -0.35:
		return '≈'
	default:
		return '-'
	}
}

func (sc *Scene) drawTower(s *core.Screen, snap game.Snapshot, surface int) {
	x := s.Width()/2 - 1
	field := core.NewRect(0, hudRows, s.Width(), s.Height()-hudRows)
	for _, b := range snap.Blocks {
		bottom := snap.BaselineOffset + float64(b.StackIndex)*snap.BlockHeight
		y := sc.rowFor(s, snap, bottom)
		if !field.Contains(x, y) {
			continue
		}

		letter, edge := core.ColorBlock, core.ColorBlockEdge
		if surface >= 0 && y > surface {
			letter, edge = core.ColorWater, core.ColorWater
		}
		s.Set(x-1, y, '[', edge)
		s.Set(x, y, unicode.ToUpper(b.Letter), letter)
		s.Set(x+1, y, ']', edge)
	}
}

func (sc *Scene) drawHUD(s *core.Screen, snap game.Snapshot, t float64) {
	w := s.Width()

	// Input box
	s.DrawRect(core.NewRect(0, 0, w, 3), ' ', core.ColorDefault)
	s.DrawBox(core.NewRect(0, 0, w, 3), core.ColorDim)
	input := []rune(snap.Pending)
	if room := w - 7; len(input) > room {
		input = input[len(input)-room:]
	}
	line := "> " + string(input)
	if snap.State == game.StatePlaying && int(t*2)%2 == 0 {
		line += "_"
	}
	s.DrawText(2, 1, line, core.ColorInput)

	// Category and score
	s.DrawHLine(0, 3, w, ' ', core.ColorDefault)
	s.DrawHLine(0, 4, w, ' ', core.ColorDefault)
	score := fmt.Sprintf("Score: %d", snap.Score)
	s.DrawText(1, 3, truncate("Category: "+snap.Category.Prompt, w-len(score)-3), core.ColorPrompt)
	s.DrawText(w-len(score)-1, 3, score, core.ColorScore)

	// Toast and round
	round := fmt.Sprintf("Round: %d", snap.Round)
	if snap.Toast != "" {
		c := core.ColorGood
		if snap.ToastKind == game.ToastBad {
			c = core.ColorBad
		}
		s.DrawText(1, 4, snap.Toast, c)
	}
	if w >= 60 {
		stats := fmt.Sprintf("rise %d%%", int(math.Round(snap.RiseFraction*100)))
		if snap.HasAverage {
			stats = fmt.Sprintf("avg %.1f  %s", snap.Average, stats)
		}
		s.DrawTextCentered(4, stats, core.ColorDim)
	}
	s.DrawText(w-len(round)-1, 4, round, core.ColorRound)
}

func (sc *Scene) drawGameOver(s *core.Screen, snap game.Snapshot) {
	const boxW, boxH = 30, 7
	box := core.CenteredRect(boxW, boxH, s.Width(), s.Height())

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBad)
	s.DrawTextCentered(box.Y+2, "GAME OVER!", core.ColorBad)
	s.DrawTextCentered(box.Y+3, fmt.Sprintf("Final Score: %d", snap.Score), core.ColorPrompt)
	s.DrawTextCentered(box.Y+4, "R restart  Q quit", core.ColorDim)
}

// truncate shortens text to at most n runes, marking the cut with "…".
func truncate(text string, n int) string {
	r := []rune(text)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return text
	}
	return strings.TrimRightFunc(string(r[:n-1]), unicode.IsSpace) + "…"
}
