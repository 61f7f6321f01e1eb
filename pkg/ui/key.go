package ui

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key represents a single keyboard input, typically assembled from an escape
// sequence.
type Key struct {
	Rune rune
	Mod  Mod
}

// K constructs a new Key.
func K(r rune, mods ...Mod) Key {
	var mod Mod
	for _, m := range mods {
		mod |= m
	}
	return Key{r, mod}
}

// Mod represents a modifier key.
type Mod byte

// Values for Mod.
const (
	// Shift is the shift modifier.
	Shift Mod = 1 << iota
	// Alt is the alt modifier.
	Alt
	// Ctrl is the ctrl modifier.
	Ctrl
)

// Special negative runes to represent function keys, used in the Rune field
// of the Key struct.
const (
	F1 rune = -iota - 10
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Up
	Down
	Right
	Left

	Home
	Insert
	Delete
	End
	PageUp
	PageDown
)

// Function keys that have a rune representation. Tab and Enter are aliased to
// Ctrl-I and Ctrl-J respectively, and Backspace to the DEL character.
const (
	Tab       = '\t'
	Enter     = '\n'
	Backspace = 0x7f
)

var functionKeyNames = []string{
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"Up", "Down", "Right", "Left",
	"Home", "Insert", "Delete", "End", "PageUp", "PageDown",
}

var keyNames = map[rune]string{
	Tab: "Tab", Enter: "Enter", Backspace: "Backspace",
}

func (k Key) String() string {
	var b bytes.Buffer
	if k.Mod&Ctrl != 0 {
		b.WriteString("Ctrl-")
	}
	if k.Mod&Alt != 0 {
		b.WriteString("Alt-")
	}
	if k.Mod&Shift != 0 {
		b.WriteString("Shift-")
	}
	if k.Rune > 0 {
		if name, ok := keyNames[k.Rune]; ok {
			b.WriteString(name)
		} else {
			b.WriteRune(k.Rune)
		}
	} else {
		i := int(-k.Rune) - 10
		if 0 <= i && i < len(functionKeyNames) {
			b.WriteString(functionKeyNames[i])
		} else {
			fmt.Fprintf(&b, "(bad function key %d)", k.Rune)
		}
	}
	return b.String()
}

var modifierByName = map[string]Mod{
	"s": Shift, "shift": Shift,
	"a": Alt, "alt": Alt,
	"m": Alt, "meta": Alt,
	"c": Ctrl, "ctrl": Ctrl,
}

// ParseKey parses a symbolic key. The syntax is:
//
//	a single key name or character
//
// optionally prefixed by one or more modifiers, separated by dashes or
// plusses:
//
//	Ctrl-a  Alt+Enter  C-A-x
//
// Modifier names are case-insensitive; characters modified by Ctrl are
// uppercased, and Ctrl-I and Ctrl-J are normalized to Tab and Enter.
func ParseKey(s string) (Key, error) {
	var k Key
	// Parse modifiers.
	for {
		i := strings.IndexAny(s, "-+")
		if i <= 0 {
			break
		}
		modname := strings.ToLower(s[:i])
		mod, ok := modifierByName[modname]
		if !ok {
			return Key{}, fmt.Errorf("bad modifier: %s", modname)
		}
		k.Mod |= mod
		s = s[i+1:]
	}

	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		k.Rune = r
		if k.Mod&Ctrl != 0 {
			k.Rune = unicode.ToUpper(k.Rune)
			// Normalize Ctrl-I to Tab and Ctrl-J to Enter.
			switch k.Rune {
			case 'I':
				k.Rune, k.Mod = Tab, k.Mod&^Ctrl
			case 'J':
				k.Rune, k.Mod = Enter, k.Mod&^Ctrl
			}
		}
		return k, nil
	}

	for r, name := range keyNames {
		if s == name {
			k.Rune = r
			return k, nil
		}
	}
	for i, name := range functionKeyNames {
		if s == name {
			k.Rune = rune(-i - 10)
			return k, nil
		}
	}

	return Key{}, fmt.Errorf("bad key: %s", s)
}
