// Package overlay splices a floating block of text over an already
// rendered screen, cell-accurately, without disturbing the ANSI
// styling of the untouched background regions.
package overlay

import (
	"strings"

	"sable-editor/app/utils"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// Place draws fg over bg with fg's top-left corner at cell (x, y).
// The position is clamped so the foreground stays inside the
// background; a foreground at least as large as the background
// replaces it outright.
func Place(x, y int, fg, bg string) string {
	fgLines, fgWidth := splitLines(fg)
	bgLines, bgWidth := splitLines(bg)

	if fgWidth >= bgWidth && len(fgLines) >= len(bgLines) {
		return fg
	}

	x = utils.Clamp(x, 0, bgWidth-fgWidth)
	y = utils.Clamp(y, 0, len(bgLines)-len(fgLines))

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+len(fgLines) {
			b.WriteString(bgLine)
			continue
		}
		b.WriteString(composeLine(fgLines[i-y], bgLine, x))
	}

	return b.String()
}

// composeLine splices one foreground line into one background line at
// column x, keeping whatever background shows through on either side.
func composeLine(fgLine, bgLine string, x int) string {
	var b strings.Builder

	pos := 0
	if x > 0 {
		left := truncate.String(bgLine, uint(x))
		b.WriteString(left)
		pos = ansi.StringWidth(left)
		if pos < x {
			// bg line ran out before the anchor column
			b.WriteString(strings.Repeat(" ", x-pos))
			pos = x
		}
	}

	b.WriteString(fgLine)
	pos += ansi.StringWidth(fgLine)

	right := ansi.TruncateLeft(bgLine, pos, "")
	if gap := ansi.StringWidth(bgLine) - pos - ansi.StringWidth(right); gap > 0 {
		b.WriteString(strings.Repeat(" ", gap))
	}
	b.WriteString(right)

	return b.String()
}

// splitLines splits s into lines and reports the widest line in cells.
func splitLines(s string) ([]string, int) {
	lines := strings.Split(strings.ReplaceAll(s, "\t", "    "), "\n")

	widest := 0
	for _, l := range lines {
		if w := ansi.StringWidth(l); w > widest {
			widest = w
		}
	}

	return lines, widest
}
