package journal

import (
	"fmt"

	"mealog.dev/pkg/cli/term"
	"mealog.dev/pkg/cli/tk"
	"mealog.dev/pkg/meal"
)

// List is the widget that displays the meals recorded so far, in the order
// they were recorded. It renders nothing at all when there are no records.
type List interface {
	tk.TextView
	// SetRecords replaces the records on display. The records themselves are
	// only read, never modified.
	SetRecords([]meal.Record)
}

type list struct {
	tk.TextView
}

// NewList creates a new List with no records.
func NewList() List {
	return &list{tk.NewTextView(tk.TextViewSpec{Scrollable: true})}
}

func (l *list) SetRecords(records []meal.Record) {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = recordLine(i+1, r)
	}
	l.MutateState(func(s *tk.TextViewState) {
		s.Lines = lines
		if s.First >= len(lines) {
			s.First = 0
		}
	})
}

func (l *list) Render(width, height int) *term.Buffer {
	if len(l.CopyState().Lines) == 0 {
		return &term.Buffer{Width: width}
	}
	return l.TextView.Render(width, height)
}

// recordLine renders one record as a display line, e.g.
//
//	1. eggs (breakfast) - 2 scrambled eggs
func recordLine(ordinal int, r meal.Record) string {
	line := fmt.Sprintf("%d. %s (%s)", ordinal, r.Food, r.Meal)
	if r.Description != "" {
		line += " - " + r.Description
	}
	return line
}
