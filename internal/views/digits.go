package views

import "strings"

const glyphRows = 5

// glyphs is a 5-row block font for everything a readout can contain.
var glyphs = map[rune][glyphRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"██ ", " █ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
	' ': {" ", " ", " ", " ", " "},
	'A': {"███", "█ █", "███", "█ █", "█ █"},
	'P': {"███", "█ █", "███", "█  ", "█  "},
	'M': {"█ █", "███", "█ █", "█ █", "█ █"},
}

// RenderBig draws text in the block font. Each cell is repeated scale times
// in both directions; scale below 1 is treated as 1. Runes without a glyph
// render as a blank column.
func RenderBig(text string, scale int) string {
	if scale < 1 {
		scale = 1
	}
	runes := []rune(strings.ToUpper(text))
	if len(runes) == 0 {
		return ""
	}

	rows := make([]string, 0, glyphRows*scale)
	for r := 0; r < glyphRows; r++ {
		var line strings.Builder
		for i, ch := range runes {
			g, ok := glyphs[ch]
			if !ok {
				g = glyphs[' ']
			}
			if i > 0 {
				line.WriteString(strings.Repeat(" ", scale))
			}
			for _, cell := range g[r] {
				line.WriteString(strings.Repeat(string(cell), scale))
			}
		}
		row := strings.TrimRight(line.String(), " ")
		for s := 0; s < scale; s++ {
			rows = append(rows, row)
		}
	}
	return strings.Join(rows, "\n")
}
