package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/text-or-die/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorPrompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorScore:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorRound:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
	core.ColorInput:        lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	core.ColorGood:         lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
	core.ColorBad:          lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	core.ColorBlock:        lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("250")).Bold(true),
	core.ColorBlockEdge:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Background(lipgloss.Color("250")),
	core.ColorWater:        lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Background(lipgloss.Color("18")),
	core.ColorWaterSurface: lipgloss.NewStyle().Foreground(lipgloss.Color("153")).Background(lipgloss.Color("18")),
	core.ColorHighlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorDim:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
