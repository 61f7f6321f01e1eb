// Package journal implements the meal journal application: a form for
// entering meals, the list of meals entered so far, and the terminal app
// that ties them together.
//
// The journal holds its records in memory only; they are gone when the
// session ends.
package journal

import (
	"strconv"
	"sync"

	"mealog.dev/pkg/cli"
	"mealog.dev/pkg/cli/term"
	"mealog.dev/pkg/cli/tk"
	"mealog.dev/pkg/logutil"
	"mealog.dev/pkg/meal"
	"mealog.dev/pkg/ui"
)

var logger = logutil.GetLogger("[journal] ")

// Journal is one meal journal session. It owns the sequence of submitted
// records and the UI that appends to it.
type Journal struct {
	app  cli.App
	form Form
	list List
	cfg  *Config

	// Guards records.
	mutex   sync.RWMutex
	records []meal.Record
}

// New builds a Journal from the given configuration, running on the given
// TTY. A nil TTY makes the journal run on the real terminal.
func New(cfg *Config, tty cli.TTY) *Journal {
	j := &Journal{cfg: cfg}
	j.list = NewList()
	j.form = NewForm(FormSpec{
		Keys:     cfg.Keys,
		Theme:    cfg.Theme,
		OnSubmit: j.addRecord,
	})
	root := tk.NewStackView(tk.StackViewSpec{
		Weights: rootWeights,
		State: tk.StackViewState{
			Rows: []tk.Widget{
				j.list,
				tk.Label{Content: ui.T(" mealog ", cfg.Theme.Title)},
				j.form,
			},
			FocusRow: 2,
		},
	})
	j.app = cli.NewApp(cli.AppSpec{
		TTY: tty,
		MaxHeight: func() int {
			return cfg.MaxHeight
		},
		Root: root,
		GlobalBindings: tk.MapBindings{
			term.KeyEvent(cfg.Keys.Quit): func(tk.Widget) { j.app.CommitQuit() },
			term.K(ui.PageUp):            func(tk.Widget) { j.list.ScrollBy(-1) },
			term.K(ui.PageDown):          func(tk.Widget) { j.list.ScrollBy(1) },
		},
	})
	return j
}

// The list gets the lion's share of the height; rows only occupy the lines
// they actually use, so a short list gives the rest back.
func rootWeights(n int) []int {
	return []int{3, 1, 2}
}

// Run runs the journal UI until the user quits, and returns any fatal
// terminal error.
func (j *Journal) Run() error {
	return j.app.Run()
}

// Records returns a copy of the records submitted so far, in submission
// order.
func (j *Journal) Records() []meal.Record {
	j.mutex.RLock()
	defer j.mutex.RUnlock()
	return append([]meal.Record(nil), j.records...)
}

// addRecord appends a record to the journal and refreshes the display. The
// append builds a new backing array, so slices handed out earlier are never
// written through.
func (j *Journal) addRecord(r meal.Record) {
	j.mutex.Lock()
	j.records = append(append([]meal.Record(nil), j.records...), r)
	records := j.records
	j.mutex.Unlock()

	logger.Println("recorded meal", strconv.Itoa(len(records))+":", r.Food)
	j.list.SetRecords(records)
	j.app.Notify(ui.T("Added "+r.Food+" ("+r.Meal+")", j.cfg.Theme.Note))
}
