package ui

// RuneStylesheet maps runes to stylings.
type RuneStylesheet map[rune]Styling

// MarkLines provides a way to construct a styled text by separating the
// content and the styling. The arguments are a series of lines. If a line is
// followed by a RuneStylesheet and another string, the latter string is
// interpreted as a stylesheet line: each of its runes is looked up in the
// stylesheet, and the resulting styling is applied to the rune of the line at
// the same position. For example,
//
//	MarkLines(
//		"foo      bar",
//		RuneStylesheet{'-': Bold, 'x': Inverse},
//		"---      xxx",
//	)
//
// is equivalent to
//
//	Concat(T("foo", Bold), T("      "), T("bar", Inverse))
//
// Lines are written as is, with no newlines inserted between them; include
// explicit "\n" arguments to start new lines. Arguments of other types are
// ignored.
func MarkLines(args ...any) Text {
	var text Text
	for i := 0; i < len(args); i++ {
		line, ok := args[i].(string)
		if !ok {
			// Not a line; ignore.
			continue
		}
		if i+2 < len(args) {
			if stylesheet, ok := args[i+1].(RuneStylesheet); ok {
				if styles, ok := args[i+2].(string); ok {
					text = Concat(text, MarkLine(line, stylesheet, styles))
					i += 2
					continue
				}
			}
		}
		text = Concat(text, T(line))
	}
	return text
}

// MarkLine applies styles to a single line, using the given stylesheet and
// stylesheet line. Runs of the same style rune are merged into single
// segments; positions past the end of the stylesheet line are unstyled.
func MarkLine(line string, stylesheet RuneStylesheet, styles string) Text {
	lineRunes := []rune(line)
	styleRunes := []rune(styles)
	styleAt := func(i int) rune {
		if i < len(styleRunes) {
			return styleRunes[i]
		}
		return ' '
	}

	var text Text
	for i := 0; i < len(lineRunes); {
		style := styleAt(i)
		j := i + 1
		for j < len(lineRunes) && styleAt(j) == style {
			j++
		}
		text = append(text,
			StyleSegment(&Segment{Text: string(lineRunes[i:j])}, stylesheet[style]))
		i = j
	}
	return text
}
