package core

// EventKind identifies a discrete input event, abstracted from physical keys.
// The platform decides which keys produce which events.
type EventKind int

const (
	EventNone          EventKind = iota
	EventCharacterTyped          // A printable character was typed
	EventBackspace               // Remove the last pending character
	EventSubmit                  // Commit the pending word (Enter)
	EventRestart                 // Start a new game after game over
	EventQuit                    // Leave the game
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventCharacterTyped:
		return "CharacterTyped"
	case EventBackspace:
		return "Backspace"
	case EventSubmit:
		return "Submit"
	case EventRestart:
		return "Restart"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single input event. Rune is only meaningful for
// EventCharacterTyped.
type Event struct {
	Kind EventKind
	Rune rune
}

// Typed returns a CharacterTyped event for r.
func Typed(r rune) Event {
	return Event{Kind: EventCharacterTyped, Rune: r}
}

// Key returns an event of the given kind with no character payload.
func Key(kind EventKind) Event {
	return Event{Kind: kind}
}
