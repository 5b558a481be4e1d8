package tabs

import (
	"path/filepath"
	"strings"

	"sable-editor/app/config"
	"sable-editor/tui/theme"

	"github.com/charmbracelet/lipgloss/v2"
)

// BarHeight is the tab bar height in rows.
const BarHeight = 1

// ClickAction is the outcome of a pointer click on the tab bar.
type ClickAction int

const (
	ClickNone ClickAction = iota
	ClickActivate
	ClickClose
)

// Bar renders the open tabs as a single row and maps clicks back to
// tab positions.
type Bar struct {
	Registry *Registry

	Width int

	nerdFonts bool
}

func NewBar(registry *Registry, conf *config.Config) *Bar {
	return &Bar{
		Registry:  registry,
		nerdFonts: conf.NerdFonts(),
	}
}

// cell is the rendered label of one tab, including the close glyph.
func (b *Bar) cell(tab Tab) string {
	return " " + filepath.Base(tab.Path) + " " + b.closeGlyph() + " "
}

func (b *Bar) closeGlyph() string {
	return theme.Icon(theme.IconClose, b.nerdFonts)
}

// Render draws the tab bar row. The active tab is highlighted; the
// remainder of the row is filled with the panel background.
func (b *Bar) Render() string {
	active, hasActive := b.Registry.ActiveIndex()

	var row strings.Builder
	used := 0

	for i, tab := range b.Registry.Tabs() {
		cell := b.cell(tab)
		width := lipgloss.Width(cell)

		style := lipgloss.NewStyle().
			Background(theme.ColourBgPanel).
			Foreground(theme.ColourFgDim)

		if hasActive && i == active {
			style = style.
				Background(theme.ColourBg).
				Foreground(theme.ColourFgBright)
		}

		row.WriteString(style.Render(cell))
		used += width
	}

	if used < b.Width {
		filler := lipgloss.NewStyle().
			Background(theme.ColourBgPanel).
			Render(strings.Repeat(" ", b.Width-used))
		row.WriteString(filler)
	}

	return row.String()
}

// ClickAt maps an x position on the tab bar to an action: activating
// the tab under the pointer, or closing it when the close glyph was
// hit. Positions past the last tab do nothing.
func (b *Bar) ClickAt(x int) (ClickAction, int) {
	left := 0

	for i, tab := range b.Registry.Tabs() {
		cell := b.cell(tab)
		width := lipgloss.Width(cell)
		right := left + width

		if x >= left && x < right {
			// the close glyph sits one cell before the right
			// padding column
			if x == right-2 {
				return ClickClose, i
			}
			return ClickActivate, i
		}

		left = right
	}

	return ClickNone, 0
}
