package menu

import (
	"sable-editor/app/fonts"
)

// DefaultPadding is the horizontal padding, in cells, on each side of
// a menu bar button.
const DefaultPadding = 1

// anchorCorrection shifts the dropdown one cell left so its border
// column lines up with the left edge of the triggering button.
const anchorCorrection = 1

// ButtonWidth returns the rendered width of a single menu bar button:
// the measured label width plus padding on both sides. Labels whose
// glyphs are missing from the table degrade to fallback widths inside
// the table, never fail.
func ButtonWidth(id ID, table *fonts.Table, padding int) int {
	return table.LabelWidth(id.String()) + 2*padding
}

// AnchorX computes the horizontal offset at which the open menu's
// dropdown panel is anchored: the summed widths of every button
// strictly before it in bar order, minus the border correction.
//
// The result is a pure function of the open menu and the metrics
// table and is recomputed every render pass; button widths depend on
// a data driven table that can change between runs.
// Returns 0 for None so the unused value is still deterministic.
func AnchorX(open ID, order []ID, table *fonts.Table, padding int) int {
	if open == None {
		return 0
	}

	x := 0
	for _, id := range order {
		if id == open {
			break
		}
		x += ButtonWidth(id, table, padding)
	}

	x -= anchorCorrection
	if x < 0 {
		x = 0
	}

	return x
}

// HitTest maps an x position on the menu bar to the button under it,
// using the same width math as AnchorX. Returns None for positions
// past the last button.
func HitTest(x int, order []ID, table *fonts.Table, padding int) ID {
	left := 0
	for _, id := range order {
		right := left + ButtonWidth(id, table, padding)
		if x >= left && x < right {
			return id
		}
		left = right
	}

	return None
}

// PanelWidth returns the width of the dropdown panel for a menu: the
// widest label plus room for the shortcut column.
func PanelWidth(id ID, table *fonts.Table) int {
	width := 0

	for _, item := range Items(id) {
		w := table.LabelWidth(item.Label)
		if item.Shortcut != "" {
			w += table.LabelWidth(item.Shortcut) + 2
		}
		if w > width {
			width = w
		}
	}

	return width + 4
}
