package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/text-or-die/internal/core"
	"github.com/vovakirdan/text-or-die/internal/game"
	"github.com/vovakirdan/text-or-die/internal/words"
)

// fordSnapshot is a tower spelling "ford" with the camera at rest.
func fordSnapshot() game.Snapshot {
	blocks := make([]game.Block, 0, 4)
	for i, r := range "ford" {
		blocks = append(blocks, game.Block{Letter: r, StackIndex: i})
	}
	return game.Snapshot{
		State:          game.StatePlaying,
		Round:          2,
		Score:          40,
		Category:       words.Category{Key: "cars", Prompt: "Name a car brand"},
		Pending:        "toy",
		RiseFraction:   0.6,
		WaterVisible:   true,
		Blocks:         blocks,
		BlockHeight:    28,
		BaselineOffset: 30,
		TowerTop:       30 + 4*28,
		Camera:         -84,
	}
}

func TestSceneViewport(t *testing.T) {
	height, rest := NewScene().Viewport(20, 28)
	if height != 15*28 {
		t.Errorf("viewport height = %v, expected %v", height, 15*28)
	}
	if rest != -84 {
		t.Errorf("rest offset = %v, expected -84", rest)
	}
}

func TestSceneDrawsTowerAboveWater(t *testing.T) {
	s := core.NewScreen(40, 20)
	NewScene().Draw(s, fordSnapshot(), 0)

	// Column 19 holds the letters, rows 15..12 bottom to top.
	for i, r := range "FORD" {
		if got := s.Get(19, 15-i); got != r {
			t.Errorf("row %d = %q, expected %q", 15-i, got, r)
		}
		if c := s.GetCell(19, 15-i).Color; c != core.ColorBlock {
			t.Errorf("dry block %q colour = %v, expected ColorBlock", r, c)
		}
	}

	if !strings.ContainsAny(s.Row(16), "~≈-") {
		t.Errorf("water surface row should show waves, got %q", s.Row(16))
	}
	if c := s.GetCell(0, 17).Color; c != core.ColorWater {
		t.Errorf("below surface colour = %v, expected ColorWater", c)
	}
}

func TestSceneSubmergedBlocks(t *testing.T) {
	snap := fordSnapshot()
	snap.WaterHeight = 60

	s := core.NewScreen(40, 20)
	NewScene().Draw(s, snap, 0)

	if c := s.GetCell(19, 15).Color; c != core.ColorWater {
		t.Errorf("submerged block colour = %v, expected ColorWater", c)
	}
	if c := s.GetCell(19, 12).Color; c != core.ColorBlock {
		t.Errorf("dry block colour = %v, expected ColorBlock", c)
	}
}

func TestSceneTowerClippedBelowHUD(t *testing.T) {
	snap := fordSnapshot()
	// Lowering the camera by eight rows moves the tower up: F, O and R
	// land on rows 7..5 and D on row 4, inside the HUD.
	snap.Camera = -84 - 8*28

	s := core.NewScreen(40, 20)
	NewScene().Draw(s, snap, 0)

	for i, r := range "FOR" {
		if got := s.Get(19, 7-i); got != r {
			t.Errorf("row %d = %q, expected %q", 7-i, got, r)
		}
	}
	if got := s.Get(19, 4); got == 'D' {
		t.Error("block under the HUD should not be drawn")
	}
	if c := s.GetCell(19, 4).Color; c == core.ColorBlock {
		t.Error("HUD row should not carry block colour")
	}
}

func TestSceneHUD(t *testing.T) {
	s := core.NewScreen(60, 20)
	snap := fordSnapshot()
	snap.Toast = "Correct!"
	NewScene().Draw(s, snap, 0)

	if !strings.Contains(s.Row(1), "> toy") {
		t.Errorf("input row = %q", s.Row(1))
	}
	if !strings.Contains(s.Row(3), "Category: Name a car brand") || !strings.Contains(s.Row(3), "Score: 40") {
		t.Errorf("status row = %q", s.Row(3))
	}
	row := s.Row(4)
	for _, want := range []string{"Correct!", "rise 60%", "Round: 2"} {
		if !strings.Contains(row, want) {
			t.Errorf("toast row %q missing %q", row, want)
		}
	}
}

func TestSceneGameOverOverlay(t *testing.T) {
	snap := fordSnapshot()
	snap.State = game.StateGameOver

	s := core.NewScreen(40, 20)
	NewScene().Draw(s, snap, 0)

	out := s.String()
	if !strings.Contains(out, "GAME OVER!") || !strings.Contains(out, "Final Score: 40") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestSceneTooSmall(t *testing.T) {
	s := core.NewScreen(20, 8)
	NewScene().Draw(s, fordSnapshot(), 0)

	if !strings.Contains(s.String(), "Terminal too small") {
		t.Error("small terminal should show a warning")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		n        int
		expected string
	}{
		{"short", 10, "short"},
		{"Name a car brand", 7, "Name a…"},
		{"anything", 0, ""},
	}

	for _, tc := range tests {
		if got := truncate(tc.in, tc.n); got != tc.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tc.in, tc.n, got, tc.expected)
		}
	}
}
