package journal

import (
	"sync"

	"mealog.dev/pkg/cli/term"
	"mealog.dev/pkg/cli/tk"
	"mealog.dev/pkg/meal"
	"mealog.dev/pkg/ui"
)

// Form is the widget for entering one meal: a text field for the food, a
// selector for the meal type, a text field for the description, and the
// errors from the last submit attempt.
type Form interface {
	tk.Widget
	// Draft returns the record currently being edited, assembled from the
	// states of the field widgets.
	Draft() meal.Record
	// Errors returns the error map published by the last submit attempt.
	Errors() meal.Errors
	// Submit validates a snapshot of the draft and publishes the resulting
	// error map. If and only if the map is empty, it calls OnSubmit with the
	// snapshot and resets the form. An invalid draft is left untouched.
	Submit()
	// Clear resets the draft and the errors unconditionally.
	Clear()
}

// FormSpec specifies the configuration for a Form.
type FormSpec struct {
	// Additional key bindings, consulted before the built-in handling.
	Bindings tk.Bindings
	// Keys for the built-in actions.
	Keys Keys
	// Stylings for prompts and errors.
	Theme Theme
	// A function called with the finished record on each successful submit.
	// If nil, it defaults to a no-op.
	OnSubmit func(meal.Record)
}

// The number of focusable rows: food, meal type, description. The error row
// below them never takes focus.
const formFields = 3

type form struct {
	FormSpec

	food     tk.TextField
	mealType tk.ListBox
	desc     tk.TextField
	stack    tk.StackView

	// Guards errors.
	errorsMutex sync.RWMutex
	errors      meal.Errors
}

// NewForm creates a new Form from the given spec.
func NewForm(spec FormSpec) Form {
	if spec.Bindings == nil {
		spec.Bindings = tk.DummyBindings{}
	}
	if spec.OnSubmit == nil {
		spec.OnSubmit = func(meal.Record) {}
	}
	f := &form{FormSpec: spec, errors: meal.Errors{}}
	f.food = tk.NewTextField(tk.TextFieldSpec{
		Prompt:   ui.T("food: ", spec.Theme.Prompt),
		OnSubmit: f.Submit,
	})
	f.mealType = tk.NewListBox(tk.ListBoxSpec{
		Horizontal: true,
		Padding:    1,
		OnAccept:   func(tk.Items, int) { f.Submit() },
		State:      tk.ListBoxState{Items: mealTypeItems()},
	})
	f.desc = tk.NewTextField(tk.TextFieldSpec{
		Prompt:   ui.T("description: ", spec.Theme.Prompt),
		OnSubmit: f.Submit,
	})
	f.stack = tk.NewStackView(tk.StackViewSpec{
		Weights: formWeights,
		OnNext: func(w tk.StackView) {
			w.MutateState(func(s *tk.StackViewState) {
				s.FocusRow = (s.FocusRow + 1) % formFields
			})
		},
		OnPrev: func(w tk.StackView) {
			w.MutateState(func(s *tk.StackViewState) {
				s.FocusRow = (s.FocusRow + formFields - 1) % formFields
			})
		},
		State: tk.StackViewState{
			Rows: []tk.Widget{
				f.food, f.mealType, f.desc,
				errorList{errors: f.Errors, style: spec.Theme.Error},
			},
		},
	})
	return f
}

// The error row may need up to one line per field; give it a double share.
func formWeights(n int) []int {
	weights := make([]int, n)
	for i := range weights {
		weights[i] = 1
	}
	weights[n-1] = 2
	return weights
}

// mealTypeItems returns the items of the meal type selector: the blank value
// followed by the known meal types.
func mealTypeItems() mealItems {
	return append(mealItems{""}, meal.Types...)
}

// mealItems adapts meal type values to the tk.Items interface. The blank
// value is a real, selectable option, shown as (none).
type mealItems []string

func (it mealItems) Show(i int) ui.Text {
	if it[i] == "" {
		return ui.T("(none)")
	}
	return ui.T(it[i])
}

func (it mealItems) Len() int { return len(it) }

func (f *form) Render(width, height int) *term.Buffer {
	return f.stack.Render(width, height)
}

func (f *form) MaxHeight(width, height int) int {
	return f.stack.MaxHeight(width, height)
}

func (f *form) Handle(event term.Event) bool {
	if f.Bindings.Handle(f, event) {
		return true
	}
	switch event {
	case term.KeyEvent(f.Keys.Clear):
		f.Clear()
		return true
	case term.KeyEvent(f.Keys.Next):
		f.stack.Next()
		return true
	case term.KeyEvent(f.Keys.Prev):
		f.stack.Prev()
		return true
	}
	if f.stack.Handle(event) {
		return true
	}
	switch event {
	case term.KeyEvent(f.Keys.Submit):
		// The focused row did not use the submit key (the text fields and
		// the selector all submit on Enter themselves, but the key may be
		// rebound to something none of them handles).
		f.Submit()
		return true
	case term.K(ui.Down):
		f.stack.Next()
		return true
	case term.K(ui.Up):
		f.stack.Prev()
		return true
	}
	return false
}

func (f *form) Draft() meal.Record {
	sel := f.mealType.CopyState()
	return meal.Record{
		Food:        f.food.CopyState().Buffer.Content,
		Meal:        sel.Items.(mealItems)[sel.Selected],
		Description: f.desc.CopyState().Buffer.Content,
	}
}

func (f *form) Errors() meal.Errors {
	f.errorsMutex.RLock()
	defer f.errorsMutex.RUnlock()
	return f.errors
}

// setErrors replaces the whole error map. Errors are never merged into an
// old map, so the published map always reflects exactly one validation pass.
func (f *form) setErrors(errs meal.Errors) {
	f.errorsMutex.Lock()
	defer f.errorsMutex.Unlock()
	f.errors = errs
}

func (f *form) Submit() {
	draft := f.Draft()
	errs := meal.Validate(draft)
	f.setErrors(errs)
	if !errs.Empty() {
		// Keep the draft so the user can fix just the flagged fields.
		return
	}
	f.OnSubmit(draft)
	f.reset()
}

func (f *form) Clear() {
	f.setErrors(meal.Errors{})
	f.reset()
}

func (f *form) reset() {
	f.food.MutateState(func(s *tk.TextFieldState) { *s = tk.TextFieldState{} })
	f.mealType.Reset(mealTypeItems(), 0)
	f.desc.MutateState(func(s *tk.TextFieldState) { *s = tk.TextFieldState{} })
	f.stack.MutateState(func(s *tk.StackViewState) { s.FocusRow = 0 })
}
