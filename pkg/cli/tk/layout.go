package tk

import (
	"mealog.dev/pkg/cli/term"
	"mealog.dev/pkg/ui"
)

// VScrollbar is a vertical scrollbar, depicting the visible window of [Low,
// High) into a list of Total items.
type VScrollbar struct {
	Total int
	Low   int
	High  int
}

var (
	vscrollbarThumb  = ui.T(" ", ui.FgMagenta, ui.Inverse)
	vscrollbarTrough = ui.T("│", ui.FgMagenta)
)

// Render renders the scrollbar.
func (v VScrollbar) Render(width, height int) *term.Buffer {
	posLow, posHigh := findScrollInterval(v.Total, v.Low, v.High, height)
	bb := term.NewBufferBuilder(1)
	for i := 0; i < height; i++ {
		if i > 0 {
			bb.Newline()
		}
		if posLow <= i && i < posHigh {
			bb.WriteStyled(vscrollbarThumb)
		} else {
			bb.WriteStyled(vscrollbarTrough)
		}
	}
	return bb.Buffer()
}

// MaxHeight returns the height, since the scrollbar can occupy any height.
func (v VScrollbar) MaxHeight(width, height int) int {
	return height
}

// Handle always returns false.
func (v VScrollbar) Handle(event term.Event) bool {
	return false
}

// HScrollbar is a horizontal scrollbar, depicting the visible window of [Low,
// High) into a list of Total items.
type HScrollbar struct {
	Total int
	Low   int
	High  int
}

var (
	hscrollbarThumb  = ui.T(" ", ui.FgMagenta, ui.Inverse)
	hscrollbarTrough = ui.T("━", ui.FgMagenta)
)

// Render renders the scrollbar.
func (h HScrollbar) Render(width, height int) *term.Buffer {
	posLow, posHigh := findScrollInterval(h.Total, h.Low, h.High, width)
	bb := term.NewBufferBuilder(width)
	for i := 0; i < width; i++ {
		if posLow <= i && i < posHigh {
			bb.WriteStyled(hscrollbarThumb)
		} else {
			bb.WriteStyled(hscrollbarTrough)
		}
	}
	return bb.Buffer()
}

// MaxHeight returns 1, since the scrollbar always occupies one line.
func (h HScrollbar) MaxHeight(width, height int) int {
	return 1
}

// Handle always returns false.
func (h HScrollbar) Handle(event term.Event) bool {
	return false
}

// VScrollbarContainer is a Renderer consisting of content and a vertical
// scrollbar on the right.
type VScrollbarContainer struct {
	Content   Renderer
	Scrollbar VScrollbar
}

// Render renders the content in all but the rightmost column, which shows the
// scrollbar.
func (v VScrollbarContainer) Render(width, height int) *term.Buffer {
	buf := v.Content.Render(width-1, height)
	buf.ExtendRight(v.Scrollbar.Render(1, height), false)
	return buf
}

// Maps the interval [low, high) in a length-n list to a row interval in a
// scrollbar of the given height. A thumb is always at least one row tall.
func findScrollInterval(n, low, high, height int) (int, int) {
	f := func(i int) int {
		return int(float64(i)/float64(n)*float64(height) + 0.5)
	}
	scrollLow, scrollHigh := f(low), f(high)
	if scrollLow == scrollHigh {
		if scrollHigh == height {
			scrollLow--
		} else {
			scrollHigh++
		}
	}
	return scrollLow, scrollHigh
}
