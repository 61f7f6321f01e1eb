package tk

import (
	"sync"

	"mealog.dev/pkg/cli/term"
	"mealog.dev/pkg/ui"
)

// StackView is a Widget that arranges several widgets in a vertical stack.
type StackView interface {
	Widget
	// MutateState mutates the state.
	MutateState(f func(*StackViewState))
	// CopyState returns a copy of the state.
	CopyState() StackViewState
	// Prev triggers the OnPrev callback.
	Prev()
	// Next triggers the OnNext callback.
	Next()
}

// StackViewSpec specifies the configuration and initial state for StackView.
type StackViewSpec struct {
	// Key bindings.
	Bindings Bindings
	// A function that takes the number of rows and returns weights for the
	// heights of the rows. The returned slice must have a size of n. If this
	// function is nil, all the rows will have the same weight.
	Weights func(n int) []int
	// A function called when the Prev method of Widget is called, or when
	// Shift-Tab is pressed and unhandled.
	OnPrev func(w StackView)
	// A function called when the Next method of Widget is called, or when Tab
	// is pressed and unhandled.
	OnNext func(w StackView)

	// State. Specifies the initial state when used in New.
	State StackViewState
}

// StackViewState keeps the mutable state of the StackView widget.
type StackViewState struct {
	Rows     []Widget
	FocusRow int
}

type stackView struct {
	// Mutex for synchronizing access to State.
	StateMutex sync.RWMutex
	StackViewSpec
}

// NewStackView creates a new StackView from the given spec.
func NewStackView(spec StackViewSpec) StackView {
	if spec.Bindings == nil {
		spec.Bindings = DummyBindings{}
	}
	if spec.Weights == nil {
		spec.Weights = equalWeights
	}
	if spec.OnPrev == nil {
		spec.OnPrev = func(StackView) {}
	}
	if spec.OnNext == nil {
		spec.OnNext = func(StackView) {}
	}
	return &stackView{StackViewSpec: spec}
}

func equalWeights(n int) []int {
	weights := make([]int, n)
	for i := 0; i < n; i++ {
		weights[i] = 1
	}
	return weights
}

func (w *stackView) MutateState(f func(*StackViewState)) {
	w.StateMutex.Lock()
	defer w.StateMutex.Unlock()
	f(&w.State)
}

func (w *stackView) CopyState() StackViewState {
	w.StateMutex.RLock()
	defer w.StateMutex.RUnlock()
	copied := w.State
	copied.Rows = append([]Widget(nil), w.State.Rows...)
	return copied
}

// Render renders all the rows from top to bottom, putting the dot in the
// focused row. Each row is rendered with its share of the height, but only
// occupies the lines it actually uses, so a row that renders nothing takes no
// space at all.
func (w *stackView) Render(width, height int) *term.Buffer {
	rows, heights, focus := w.prepareRender(height)
	if len(rows) == 0 {
		return &term.Buffer{Width: width}
	}
	var buf term.Buffer
	buf.Width = width
	for i, row := range rows {
		bufRow := row.Render(width, heights[i])
		buf.ExtendDown(bufRow, i == focus)
	}
	return &buf
}

func (w *stackView) MaxHeight(width, height int) int {
	rows, heights, _ := w.prepareRender(height)
	sum := 0
	for i, row := range rows {
		sum += row.MaxHeight(width, heights[i])
	}
	return sum
}

// Returns widgets in and heights of rows, as well as the focused index.
func (w *stackView) prepareRender(height int) ([]Widget, []int, int) {
	state := w.CopyState()
	nrows := len(state.Rows)
	if nrows == 0 {
		// No row.
		return nil, nil, 0
	}
	if height < nrows {
		// Too short; give up by rendering nothing.
		return nil, nil, 0
	}
	heights := distribute(height, w.Weights(nrows))
	return state.Rows, heights, state.FocusRow
}

// Handle handles the event first by consulting the overlay handler, and then
// delegating the event to the currently focused row.
func (w *stackView) Handle(event term.Event) bool {
	if w.Bindings.Handle(w, event) {
		return true
	}
	state := w.CopyState()
	if 0 <= state.FocusRow && state.FocusRow < len(state.Rows) {
		if state.Rows[state.FocusRow].Handle(event) {
			return true
		}
	}

	switch event {
	case term.K(ui.Tab, ui.Shift):
		w.Prev()
		return true
	case term.K(ui.Tab):
		w.Next()
		return true
	default:
		return false
	}
}

func (w *stackView) Prev() {
	w.OnPrev(w)
}

func (w *stackView) Next() {
	w.OnNext(w)
}

// Distributes fullHeight according to the weights, rounding to integers.
//
// This works iteratively each step by taking the sum of all remaining weights,
// and using floor(remainedHeight * currentWeight / remainedAllWeights) for the
// current row.
//
// A simpler alternative is to simply use floor(fullHeight * currentWeight /
// allWeights) at each step, and also giving the remainder to the last row.
// However, this means that the last row gets all the rounding errors from
// flooring, which can be big. The more sophisticated algorithm distributes the
// rounding errors among all the remaining elements and can result in a much
// better distribution, and as a special upside, does not need to handle the
// last row as a special case.
//
// As an extreme example, consider the case of fullHeight = 9, weights = {1, 1,
// 1, 1, 1} (five 1's). Using the simplistic algorithm, the heights are {1, 1,
// 1, 1, 5}. Using the more complex algorithm, the heights are {1, 2, 2, 2, 2}.
func distribute(fullHeight int, weights []int) []int {
	remainedHeight := fullHeight
	remainedWeight := 0
	for _, weight := range weights {
		remainedWeight += weight
	}

	heights := make([]int, len(weights))
	for i, weight := range weights {
		heights[i] = remainedHeight * weight / remainedWeight
		remainedHeight -= heights[i]
		remainedWeight -= weight
	}
	return heights
}
