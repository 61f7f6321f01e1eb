package tk

import (
	"strconv"

	"mealog.dev/pkg/ui"
)

// TestItems is an implementation of Items useful for testing.
type TestItems struct {
	Prefix string
	Style  ui.Styling
	NItems int
}

// Show returns a plain text consisting of the prefix and i. If the prefix is
// empty, it defaults to "item ".
func (it TestItems) Show(i int) ui.Text {
	prefix := it.Prefix
	if prefix == "" {
		prefix = "item "
	}
	return ui.Text{&ui.Segment{
		Style: ui.StyleFromStyling(it.Style),
		Text:  prefix + strconv.Itoa(i),
	}}
}

// Len returns it.NItems.
func (it TestItems) Len() int { return it.NItems }
