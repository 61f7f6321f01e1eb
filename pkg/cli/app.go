// Package cli implements a generic framework for full-terminal interactive
// apps built from tk widgets.
package cli

import (
	"os"
	"sync"
	"syscall"

	"mealog.dev/pkg/cli/term"
	"mealog.dev/pkg/cli/tk"
	"mealog.dev/pkg/sys"
	"mealog.dev/pkg/ui"
)

// App represents a CLI app.
type App interface {
	// Run runs the event loop, reading events from the terminal and letting
	// the root widget handle them, until CommitQuit is called or a fatal
	// error happens. This function is not re-entrant.
	Run() error

	// MutateState mutates the state of the app.
	MutateState(f func(*State))
	// CopyState returns a copy of the app state.
	CopyState() State

	// CommitQuit causes the main loop to exit. If this method is called when
	// an event is being handled, the main loop will exit after the handler
	// returns.
	CommitQuit()

	// Redraw requests a redraw. It never blocks and can be called regardless of
	// whether the App is active or not.
	Redraw()
	// RedrawFull requests a full redraw. It never blocks and can be called
	// regardless of whether the App is active or not.
	RedrawFull()
	// Notify adds a note and requests a redraw.
	Notify(note ui.Text)
}

type app struct {
	loop    *loop
	reqRead chan struct{}

	TTY            TTY
	MaxHeight      func() int
	Root           tk.Widget
	GlobalBindings tk.Bindings

	StateMutex sync.RWMutex
	State      State
}

// State represents mutable state of an App.
type State struct {
	// Notes that have been added since the last redraw.
	Notes []ui.Text
}

// NewApp creates a new App from the given specification.
func NewApp(spec AppSpec) App {
	lp := newLoop()
	a := app{
		loop:           lp,
		TTY:            spec.TTY,
		MaxHeight:      spec.MaxHeight,
		Root:           spec.Root,
		GlobalBindings: spec.GlobalBindings,
		State:          spec.State,
	}
	if a.TTY == nil {
		a.TTY = NewTTY(os.Stdin, os.Stderr)
	}
	if a.MaxHeight == nil {
		a.MaxHeight = func() int { return -1 }
	}
	if a.Root == nil {
		a.Root = tk.Empty{}
	}
	if a.GlobalBindings == nil {
		a.GlobalBindings = tk.DummyBindings{}
	}
	lp.HandleCb(a.handle)
	lp.RedrawCb(a.redraw)
	return &a
}

func (a *app) MutateState(f func(*State)) {
	a.StateMutex.Lock()
	defer a.StateMutex.Unlock()
	f(&a.State)
}

func (a *app) CopyState() State {
	a.StateMutex.RLock()
	defer a.StateMutex.RUnlock()
	return State{append([]ui.Text(nil), a.State.Notes...)}
}

func (a *app) handle(e event) {
	switch e := e.(type) {
	case os.Signal:
		switch e {
		case syscall.SIGHUP, syscall.SIGINT:
			a.CommitQuit()
		case sys.SIGWINCH:
			a.RedrawFull()
		}
	case term.FatalErrorEvent:
		a.loop.Return(e.Err)
	case term.NonfatalErrorEvent:
		a.Notify(ui.T(e.Err.Error()))
		a.requestRead()
	case term.Event:
		handled := a.Root.Handle(e)
		if !handled {
			handled = a.GlobalBindings.Handle(a.Root, e)
		}
		if !handled {
			if k, ok := e.(term.KeyEvent); ok {
				a.Notify(ui.T("Unbound key: " + ui.Key(k).String()))
			}
		}
		a.requestRead()
	}
}

func (a *app) requestRead() {
	if !a.loop.HasReturned() {
		a.reqRead <- struct{}{}
	}
}

func (a *app) redraw(flag redrawFlag) {
	// Get the dimensions available.
	height, width := a.TTY.Size()
	if maxHeight := a.MaxHeight(); maxHeight > 0 && maxHeight < height {
		height = maxHeight
	}

	var notes []ui.Text
	a.MutateState(func(s *State) {
		notes = s.Notes
		s.Notes = nil
	})

	bufNotes := renderNotes(notes, width)
	bufMain := a.Root.Render(width, height)
	if flag&finalRedraw != 0 {
		// Insert a newline after the buffer and position the cursor there.
		bufMain.ExtendDown(term.NewBuffer(width), true)
		a.TTY.UpdateBuffer(bufNotes, bufMain, flag&fullRedraw != 0)
		a.TTY.ResetBuffer()
	} else {
		a.TTY.UpdateBuffer(bufNotes, bufMain, flag&fullRedraw != 0)
	}
}

// Renders notes. This does not respect height so that overflow notes end up in
// the scrollback buffer.
func renderNotes(notes []ui.Text, width int) *term.Buffer {
	if len(notes) == 0 {
		return nil
	}
	bb := term.NewBufferBuilder(width)
	for i, note := range notes {
		if i > 0 {
			bb.Newline()
		}
		bb.WriteStyled(note)
	}
	return bb.Buffer()
}

func (a *app) Run() error {
	restore, err := a.TTY.Setup()
	if err != nil {
		return err
	}
	defer restore()

	var wg sync.WaitGroup
	defer wg.Wait()

	// Relay input events.
	a.reqRead = make(chan struct{}, 1)
	a.reqRead <- struct{}{}
	defer close(a.reqRead)
	defer a.TTY.CloseReader()
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range a.reqRead {
			event, err := a.TTY.ReadEvent()
			if err == nil {
				a.loop.Input(event)
			} else if err == term.ErrStopped {
				return
			} else if term.IsReadErrorRecoverable(err) {
				a.loop.Input(term.NonfatalErrorEvent{Err: err})
			} else {
				a.loop.Input(term.FatalErrorEvent{Err: err})
				return
			}
		}
	}()

	// Relay signals.
	sigCh := a.TTY.NotifySignals()
	defer a.TTY.StopSignals()
	wg.Add(1)
	go func() {
		for sig := range sigCh {
			a.loop.Input(sig)
		}
		wg.Done()
	}()

	return a.loop.Run()
}

func (a *app) Redraw() {
	a.loop.Redraw(false)
}

func (a *app) RedrawFull() {
	a.loop.Redraw(true)
}

func (a *app) CommitQuit() {
	a.loop.Return(nil)
}

func (a *app) Notify(note ui.Text) {
	a.MutateState(func(s *State) { s.Notes = append(s.Notes, note) })
	a.Redraw()
}
