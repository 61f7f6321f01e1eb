package term

import (
	"mealog.dev/pkg/ui"
)

// Event represents an event that can be read from the terminal.
type Event interface {
	isEvent()
}

// KeyEvent represents a key press.
type KeyEvent ui.Key

// K constructs a new KeyEvent.
func K(r rune, mods ...ui.Mod) KeyEvent {
	return KeyEvent(ui.K(r, mods...))
}

func (e KeyEvent) String() string {
	return ui.Key(e).String()
}

// MouseEvent represents a mouse event (either pressing or releasing).
type MouseEvent struct {
	Pos
	Down   bool
	Button int
	Mod    ui.Mod
}

// CursorPosition is a report of the position of the cursor on the terminal,
// usually in response to a cursor position request.
type CursorPosition Pos

// PasteSetting indicates the start or end of a bracketed paste.
type PasteSetting bool

// FatalErrorEvent represents an error that affects the ability to continue
// reading events.
type FatalErrorEvent struct{ Err error }

// NonfatalErrorEvent represents an error that can be gotten over.
type NonfatalErrorEvent struct{ Err error }

func (KeyEvent) isEvent()           {}
func (MouseEvent) isEvent()         {}
func (CursorPosition) isEvent()     {}
func (PasteSetting) isEvent()       {}
func (FatalErrorEvent) isEvent()    {}
func (NonfatalErrorEvent) isEvent() {}
