package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/text-or-die/internal/words"
)

func TestBrowserRows(t *testing.T) {
	m := NewBrowserModel(testCatalog(), 100, 30)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, expected 3", len(rows))
	}
	// Sorted: ford, kia, toyota.
	if rows[0][1] != "ford" || rows[0][2] != "4" || rows[0][3] != "40" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[2][1] != "toyota" || rows[2][3] != "60" {
		t.Errorf("last row = %v", rows[2])
	}
}

func TestBrowserCyclesCategories(t *testing.T) {
	var model tea.Model = NewBrowserModel(testCatalog(), 100, 30)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := model.(BrowserModel)
	if cat, _ := m.current(); cat.Key != "fruits" {
		t.Errorf("category = %q, expected fruits", cat.Key)
	}
	if len(m.table.Rows()) != 1 {
		t.Errorf("fruits rows = %d, expected 1", len(m.table.Rows()))
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cat, _ := model.(BrowserModel).current(); cat.Key != "cars" {
		t.Errorf("tab should wrap to cars, got %q", cat.Key)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if cat, _ := model.(BrowserModel).current(); cat.Key != "fruits" {
		t.Errorf("shift+tab should wrap to fruits, got %q", cat.Key)
	}
}

func TestBrowserBackAndQuit(t *testing.T) {
	var model tea.Model = NewBrowserModel(testCatalog(), 100, 30)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !model.(BrowserModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}

	model = NewBrowserModel(testCatalog(), 100, 30)
	model, _ = model.Update(runes("q"))
	if !model.(BrowserModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestBrowserEmptyCatalog(t *testing.T) {
	m := NewBrowserModel(words.NewCatalog(), 60, 20)

	if _, ok := m.current(); ok {
		t.Error("empty catalog should have no current category")
	}
	if !strings.Contains(m.View(), "No words in this category.") {
		t.Error("empty catalog should show the import hint")
	}
}

func TestBrowserLayoutFollowsWidth(t *testing.T) {
	narrow := NewBrowserModel(testCatalog(), 60, 30)
	if narrow.showSidebar {
		t.Error("narrow window should hide the sidebar")
	}

	var model tea.Model = narrow
	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if !model.(BrowserModel).showSidebar {
		t.Error("wide window should show the sidebar")
	}
	if !strings.Contains(model.View(), "Categories") {
		t.Error("sidebar should list categories")
	}
}
