package game

import "strings"

// Block is one letter of the tower. StackIndex counts up from the bottom
// block, which has index 0.
type Block struct {
	Letter     rune
	StackIndex int
}

// Tower is the append-only stack of letter blocks built from accepted words.
// Positions are world units measured upward, the same axis as Water.
type Tower struct {
	baseline    float64
	blockHeight float64
	blocks      []Block
}

// NewTower creates an empty tower whose first block sits on baseline.
func NewTower(baseline, blockHeight float64) *Tower {
	return &Tower{baseline: baseline, blockHeight: blockHeight}
}

// AppendWord stacks one block per letter of word on top of the tower.
// Surrounding whitespace is dropped; letter case is kept for display.
func (t *Tower) AppendWord(word string) {
	for _, r := range strings.TrimSpace(word) {
		t.blocks = append(t.blocks, Block{Letter: r, StackIndex: len(t.blocks)})
	}
}

// Len returns the number of blocks.
func (t *Tower) Len() int {
	return len(t.blocks)
}

// Blocks returns a copy of the blocks, bottom first.
func (t *Tower) Blocks() []Block {
	out := make([]Block, len(t.blocks))
	copy(out, t.blocks)
	return out
}

// BlockBottom returns the lower edge of the block at stack index i.
func (t *Tower) BlockBottom(i int) float64 {
	return t.baseline + float64(i)*t.blockHeight
}

// TopExtent returns the upper edge of the topmost block, or the baseline
// when the tower is empty.
func (t *Tower) TopExtent() float64 {
	return t.BlockBottom(len(t.blocks))
}

// BottomExtent returns the lower edge of the lowest block.
func (t *Tower) BottomExtent() float64 {
	return t.baseline
}

// BlockHeight returns the height of one block.
func (t *Tower) BlockHeight() float64 {
	return t.blockHeight
}

// Reset removes every block.
func (t *Tower) Reset() {
	t.blocks = t.blocks[:0]
}
