// Package clitest provides utilities for testing cli.App.
package clitest

import (
	"testing"

	"mealog.dev/pkg/cli"
	"mealog.dev/pkg/cli/term"
)

// Fixture is a test fixture.
type Fixture struct {
	App   cli.App
	TTY   TTYCtrl
	width int
	errCh <-chan error
}

// Setup sets up a test fixture. It contains an App whose Run method has been
// started asynchronously.
func Setup(fns ...func(*cli.AppSpec, TTYCtrl)) *Fixture {
	tty, ttyCtrl := NewFakeTTY()
	spec := cli.AppSpec{TTY: tty}
	for _, fn := range fns {
		fn(&spec, ttyCtrl)
	}
	app := cli.NewApp(spec)
	errCh := StartRun(app.Run)
	_, width := tty.Size()
	return &Fixture{app, ttyCtrl, width, errCh}
}

// WithSpec takes a function that operates on *cli.AppSpec, and wraps it into a
// form suitable for passing to Setup.
func WithSpec(f func(*cli.AppSpec)) func(*cli.AppSpec, TTYCtrl) {
	return func(spec *cli.AppSpec, _ TTYCtrl) { f(spec) }
}

// WithTTY takes a function that operates on TTYCtrl, and wraps it into a form
// suitable for passing to Setup.
func WithTTY(f func(TTYCtrl)) func(*cli.AppSpec, TTYCtrl) {
	return func(_ *cli.AppSpec, tty TTYCtrl) { f(tty) }
}

// Wait waits for Run to finish, and returns its return value.
func (f *Fixture) Wait() error {
	return <-f.errCh
}

// Stop stops Run and waits for it to finish. If Run has already been stopped,
// it is a no-op.
func (f *Fixture) Stop() error {
	f.App.CommitQuit()
	return f.Wait()
}

// MakeBuffer is a helper for building a buffer. It is equivalent to
// term.NewBufferBuilder(width of terminal).MarkLines(args...).Buffer().
func (f *Fixture) MakeBuffer(args ...any) *term.Buffer {
	return term.NewBufferBuilder(f.width).MarkLines(args...).Buffer()
}

// TestTTY is equivalent to f.TTY.TestBuffer(t, f.MakeBuffer(args...)).
func (f *Fixture) TestTTY(t *testing.T, args ...any) {
	t.Helper()
	f.TTY.TestBuffer(t, f.MakeBuffer(args...))
}

// TestTTYNotes is equivalent to f.TTY.TestNotesBuffer(t,
// f.MakeBuffer(args...)).
func (f *Fixture) TestTTYNotes(t *testing.T, args ...any) {
	t.Helper()
	f.TTY.TestNotesBuffer(t, f.MakeBuffer(args...))
}

// StartRun starts the run function asynchronously, and returns a channel that
// delivers its return value. The channel is closed after the return value is
// delivered, so that subsequent receives will return nil.
func StartRun(run func() error) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- run()
		close(errCh)
	}()
	return errCh
}
