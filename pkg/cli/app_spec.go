package cli

import (
	"mealog.dev/pkg/cli/tk"
)

// AppSpec specifies the configuration and initial state for an App.
type AppSpec struct {
	// TTY is the terminal the app runs on. If nil, the app runs on the real
	// terminal backed by stdin and stderr.
	TTY TTY
	// MaxHeight returns the maximum height the app may use, in lines. If nil
	// or if it returns a non-positive number, the app may use the full height
	// of the terminal.
	MaxHeight func() int

	// Root is the widget that makes up the entire UI of the app. If nil, the
	// app shows nothing and handles no events.
	Root tk.Widget
	// GlobalBindings is consulted for events that the root widget does not
	// handle.
	GlobalBindings tk.Bindings

	// Initial state.
	State State
}
