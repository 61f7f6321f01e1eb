package journal

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"mealog.dev/pkg/cli/term"
	"mealog.dev/pkg/meal"
	"mealog.dev/pkg/ui"
)

// errorList is a widget that shows validation errors, one per line. When
// there are no errors it renders nothing at all, not an empty panel.
type errorList struct {
	// Returns the error map to show. Called on every render, so the widget
	// always reflects the current errors of the form it is part of.
	errors func() meal.Errors
	style  ui.Styling
}

func (w errorList) Render(width, height int) *term.Buffer {
	lines := errorLines(w.errors())
	if len(lines) == 0 {
		return &term.Buffer{Width: width}
	}
	bb := term.NewBufferBuilder(width)
	for i, line := range lines {
		if i > 0 {
			bb.Newline()
		}
		bb.WriteStyled(ui.T(line, w.style))
	}
	b := bb.Buffer()
	b.TrimToLines(0, height)
	return b
}

func (w errorList) MaxHeight(width, height int) int {
	return len(errorLines(w.errors()))
}

func (w errorList) Handle(event term.Event) bool { return false }

// errorLines flattens the error map into display lines: known fields in
// declared order, then any unknown fields in lexical order so that nothing
// is dropped silently. Each line is the capitalized field name followed by
// the message, like "Food is blank".
func errorLines(errs meal.Errors) []string {
	if errs.Empty() {
		return nil
	}
	lines := make([]string, 0, len(errs))
	for _, name := range meal.Fields {
		if msg, ok := errs[name]; ok {
			lines = append(lines, errorLine(name, msg))
		}
	}
	if len(lines) < len(errs) {
		var unknown []string
		for name := range errs {
			if !knownField(name) {
				unknown = append(unknown, name)
			}
		}
		sort.Strings(unknown)
		for _, name := range unknown {
			lines = append(lines, errorLine(name, errs[name]))
		}
	}
	return lines
}

func errorLine(name, msg string) string {
	return capitalizeFirst(name) + " " + msg
}

func knownField(name string) bool {
	for _, f := range meal.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// capitalizeFirst upper-cases the first letter of s.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
