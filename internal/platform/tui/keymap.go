package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/text-or-die/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Submit     key.Binding
	Backspace  key.Binding
	Restart    key.Binding
	Quit       key.Binding
	QuitOver   key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Backspace, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Backspace},
		{k.Restart, k.Quit, k.Screenshot},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "erase"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		QuitOver: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
			key.WithDisabled(),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// SetGameOver switches the letter bindings between typing and commands.
func (k *GameKeyMap) SetGameOver(over bool) {
	k.Restart.SetEnabled(over)
	k.QuitOver.SetEnabled(over)
}

// KeyMapper translates Bubble Tea key messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey translates a key message into events. A paste yields one event
// per rune. Keys with no meaning yield nothing.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Event {
	switch {
	case key.Matches(msg, km.Keys.Quit), key.Matches(msg, km.Keys.QuitOver):
		return []core.Event{core.Key(core.EventQuit)}
	case key.Matches(msg, km.Keys.Restart):
		return []core.Event{core.Key(core.EventRestart)}
	case key.Matches(msg, km.Keys.Submit):
		return []core.Event{core.Key(core.EventSubmit)}
	case key.Matches(msg, km.Keys.Backspace):
		return []core.Event{core.Key(core.EventBackspace)}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []core.Event{core.Typed(' ')}
	case tea.KeyRunes:
		events := make([]core.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, core.Typed(r))
		}
		return events
	}
	return nil
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBrowse
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionBrowse
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
