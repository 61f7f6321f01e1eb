package tk

import (
	"bytes"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"mealog.dev/pkg/cli/term"
	"mealog.dev/pkg/ui"
)

// TextField is a Widget for editing a single line of text.
type TextField interface {
	Widget
	// CopyState returns a copy of the state.
	CopyState() TextFieldState
	// MutateState calls the given function while locking StateMutex.
	MutateState(f func(*TextFieldState))
	// Submit triggers the OnSubmit callback.
	Submit()
}

// TextFieldSpec specifies the configuration and initial state for TextField.
type TextFieldSpec struct {
	// Key bindings.
	Bindings Bindings
	// A prompt to write before the content.
	Prompt ui.Text
	// A function that is called on the submit event.
	OnSubmit func()

	// State. When used in New, this field specifies the initial state.
	State TextFieldState
}

// TextFieldState keeps the mutable state of the TextField widget.
type TextFieldState struct {
	Buffer TextBuffer
}

// TextBuffer represents the buffer of the TextField widget.
type TextBuffer struct {
	// Content of the buffer.
	Content string
	// Position of the dot (more commonly known as the cursor), as a byte index
	// into Content.
	Dot int
}

// InsertAtDot inserts text at the dot and moves the dot after it.
func (b *TextBuffer) InsertAtDot(text string) {
	*b = TextBuffer{
		Content: b.Content[:b.Dot] + text + b.Content[b.Dot:],
		Dot:     b.Dot + len(text),
	}
}

type textField struct {
	// Mutex for synchronizing access to State.
	StateMutex sync.RWMutex
	// Configuration and state.
	TextFieldSpec

	// Whether the widget is in the middle of bracketed pasting.
	pasting bool
	// Buffer for keeping pasted text during bracketed pasting.
	pasteBuffer bytes.Buffer
}

// NewTextField creates a new TextField from the given spec.
func NewTextField(spec TextFieldSpec) TextField {
	if spec.Bindings == nil {
		spec.Bindings = DummyBindings{}
	}
	if spec.OnSubmit == nil {
		spec.OnSubmit = func() {}
	}
	return &textField{TextFieldSpec: spec}
}

// Submit emits a submit event.
func (w *textField) Submit() {
	w.OnSubmit()
}

// Render renders the prompt and the content, with the cursor at the dot.
func (w *textField) Render(width, height int) *term.Buffer {
	b := w.render(width)
	truncateToHeight(b, height)
	return b
}

func (w *textField) MaxHeight(width, height int) int {
	return len(w.render(width).Lines)
}

func (w *textField) render(width int) *term.Buffer {
	s := w.CopyState()
	bb := term.NewBufferBuilder(width)
	bb.EagerWrap = true

	bb.WriteStyled(w.Prompt)
	if len(bb.Lines) == 1 && bb.Col*2 < bb.Width {
		bb.Indent = bb.Col
	}

	parts := ui.T(s.Buffer.Content).Partition(s.Buffer.Dot)
	bb.
		WriteStyled(parts[0]).
		SetDotHere().
		WriteStyled(parts[1])

	bb.EagerWrap = false
	bb.Indent = 0
	return bb.Buffer()
}

// Handle handles KeyEvent's of non-function keys, as well as PasteSetting
// events.
func (w *textField) Handle(event term.Event) bool {
	switch event := event.(type) {
	case term.PasteSetting:
		return w.handlePasteSetting(bool(event))
	case term.KeyEvent:
		return w.handleKeyEvent(ui.Key(event))
	}
	return false
}

func (w *textField) MutateState(f func(*TextFieldState)) {
	w.StateMutex.Lock()
	defer w.StateMutex.Unlock()
	f(&w.State)
}

func (w *textField) CopyState() TextFieldState {
	w.StateMutex.RLock()
	defer w.StateMutex.RUnlock()
	return w.State
}

func (w *textField) handlePasteSetting(start bool) bool {
	if start {
		w.pasting = true
	} else {
		// The field is a single line, so newlines in the pasted text become
		// spaces.
		text := strings.ReplaceAll(w.pasteBuffer.String(), "\n", " ")
		w.MutateState(func(s *TextFieldState) { s.Buffer.InsertAtDot(text) })

		w.pasting = false
		w.pasteBuffer = bytes.Buffer{}
	}
	return true
}

func (w *textField) handleKeyEvent(key ui.Key) bool {
	isFuncKey := key.Mod != 0 || key.Rune < 0
	if w.pasting {
		if !isFuncKey {
			w.pasteBuffer.WriteRune(key.Rune)
		}
		return true
	}

	if w.Bindings.Handle(w, term.KeyEvent(key)) {
		return true
	}

	// We only implement essential keybindings here. Other keybindings can be
	// added via Bindings.
	switch key {
	case ui.K('\n'):
		w.Submit()
		return true
	case ui.K(ui.Backspace), ui.K('H', ui.Ctrl):
		w.MutateState(func(s *TextFieldState) {
			b := &s.Buffer
			// Remove the rune before the dot.
			_, chop := utf8.DecodeLastRuneInString(b.Content[:b.Dot])
			*b = TextBuffer{
				Content: b.Content[:b.Dot-chop] + b.Content[b.Dot:],
				Dot:     b.Dot - chop,
			}
		})
		return true
	case ui.K(ui.Left):
		w.MutateState(func(s *TextFieldState) {
			b := &s.Buffer
			_, skip := utf8.DecodeLastRuneInString(b.Content[:b.Dot])
			b.Dot -= skip
		})
		return true
	case ui.K(ui.Right):
		w.MutateState(func(s *TextFieldState) {
			b := &s.Buffer
			_, skip := utf8.DecodeRuneInString(b.Content[b.Dot:])
			b.Dot += skip
		})
		return true
	case ui.K('U', ui.Ctrl):
		w.MutateState(func(s *TextFieldState) {
			b := &s.Buffer
			*b = TextBuffer{Content: b.Content[b.Dot:], Dot: 0}
		})
		return true
	default:
		if isFuncKey || !unicode.IsGraphic(key.Rune) {
			return false
		}
		w.MutateState(func(s *TextFieldState) {
			s.Buffer.InsertAtDot(string(key.Rune))
		})
		return true
	}
}

func truncateToHeight(b *term.Buffer, maxHeight int) {
	switch {
	case len(b.Lines) <= maxHeight:
		// We can show all lines; do nothing.
	case b.Dot.Line < maxHeight:
		// We can show all lines before the cursor, and as many lines after the
		// cursor as we can, adding up to maxHeight.
		b.TrimToLines(0, maxHeight)
	default:
		// We can show maxHeight lines before and including the cursor line.
		b.TrimToLines(b.Dot.Line-maxHeight+1, b.Dot.Line+1)
	}
}
