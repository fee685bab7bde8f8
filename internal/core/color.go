package core

// Color is a semantic colour for a screen cell. The platform maps each value
// to a terminal style, so game code never deals with ANSI codes.
type Color uint8

// Palette used by the scene renderer.
const (
	ColorDefault Color = iota
	ColorPrompt        // Category prompt
	ColorScore         // Score counter
	ColorRound         // Round counter
	ColorInput         // Text being typed
	ColorGood          // Positive toast
	ColorBad           // Negative toast, game over title
	ColorBlock         // Tower block letter
	ColorBlockEdge     // Tower block frame
	ColorWater         // Water body
	ColorWaterSurface  // Wave line at the water surface
	ColorHighlight     // Foam highlight above the surface
	ColorDim           // Hints and secondary text
)
