package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/text-or-die/internal/core"
	"github.com/vovakirdan/text-or-die/internal/words"
)

// MenuItem represents a selectable category in the menu. An empty Key is
// the random pick.
type MenuItem struct {
	Key    string
	Title  string
	Count  int
	Random bool
}

// MenuModel is the Bubble Tea model for the category picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects a category
	browse    bool      // True if user pressed Tab for the word browser
}

// NewMenuModel creates a new menu model listing the provider's categories
// after a leading "Random" entry.
func NewMenuModel(provider words.Provider, cfg core.RuntimeConfig) MenuModel {
	cats := provider.Categories()
	items := make([]MenuItem, 0, len(cats)+1)
	items = append(items, MenuItem{Title: "Random category", Random: true})

	for _, c := range cats {
		items = append(items, MenuItem{
			Key:   c.Key,
			Title: c.Prompt,
			Count: provider.Words(c.Key).Len(),
		})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionBrowse:
		m.browse = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T E X T   O R   D I E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a category", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		line := item.Title
		if !item.Random {
			line = fmt.Sprintf("%s (%d)", item.Title, item.Count)
		}
		if i == m.cursor {
			cursor = "> "
			line = cursorStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Words  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBrowser returns true if user requested the word browser.
func (m MenuModel) WantsBrowser() bool {
	return m.browse
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Category     string // Empty for a random category
	Config       core.RuntimeConfig
	WantsBrowser bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(provider words.Provider, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(provider, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsBrowser():
		result.WantsBrowser = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.Category = m.Selected().Key
	}

	return result, nil
}
