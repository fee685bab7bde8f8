package game

import "testing"

func TestTowerResetThenAppend(t *testing.T) {
	tw := NewTower(DefaultBaselineOffset, DefaultBlockHeight)
	tw.AppendWord("horse")
	tw.Reset()
	tw.AppendWord("cat")

	blocks := tw.Blocks()
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	for i, b := range blocks {
		if b.StackIndex != i {
			t.Errorf("block %d has StackIndex %d", i, b.StackIndex)
		}
	}
	if tw.BlockBottom(0) != tw.BottomExtent() {
		t.Errorf("first block bottom %v should sit on baseline %v", tw.BlockBottom(0), tw.BottomExtent())
	}
	want := DefaultBaselineOffset + 3*DefaultBlockHeight
	if tw.TopExtent() != want {
		t.Errorf("TopExtent() = %v, expected %v", tw.TopExtent(), want)
	}
}

func TestTowerWordsStackWithoutGaps(t *testing.T) {
	tw := NewTower(0, 10)
	tw.AppendWord("ab")
	tw.AppendWord(" Cd ")

	blocks := tw.Blocks()
	letters := ""
	for i, b := range blocks {
		letters += string(b.Letter)
		if b.StackIndex != i {
			t.Errorf("block %d has StackIndex %d", i, b.StackIndex)
		}
	}
	if letters != "abCd" {
		t.Errorf("letters = %q, expected abCd", letters)
	}
	if tw.TopExtent() != 40 {
		t.Errorf("TopExtent() = %v, expected 40", tw.TopExtent())
	}
}

func TestTowerEmptyExtents(t *testing.T) {
	tw := NewTower(30, 28)
	if tw.TopExtent() != 30 || tw.BottomExtent() != 30 {
		t.Errorf("empty tower extents = (%v, %v), expected baseline", tw.TopExtent(), tw.BottomExtent())
	}
}

func TestTowerBlocksIsCopy(t *testing.T) {
	tw := NewTower(0, 1)
	tw.AppendWord("x")
	b := tw.Blocks()
	b[0].Letter = 'y'

	if tw.Blocks()[0].Letter != 'x' {
		t.Error("Blocks() must not expose internal storage")
	}
}
