// Package menubar renders the menu bar row and the open dropdown
// panel, and maps pointer positions back onto buttons and items.
package menubar

import (
	"strings"

	"sable-editor/app/config"
	"sable-editor/app/fonts"
	"sable-editor/tui/menu"
	"sable-editor/tui/theme"

	"github.com/charmbracelet/lipgloss/v2"
)

// BarHeight is the menu bar height in rows.
const BarHeight = 1

type MenuBar struct {
	Menu  *menu.Model
	Table *fonts.Table

	Width int

	padding int
}

func New(m *menu.Model, table *fonts.Table, conf *config.Config) *MenuBar {
	padding := menu.DefaultPadding
	if v, err := conf.Value(config.Menu, config.ButtonPadding); err == nil {
		padding = v.GetInt(menu.DefaultPadding)
	}

	return &MenuBar{
		Menu:    m,
		Table:   table,
		padding: padding,
	}
}

func (b *MenuBar) Padding() int {
	return b.padding
}

// AnchorX returns the dropdown anchor for the currently open menu.
// Recomputed on every render pass; the result depends on the glyph
// metrics table.
func (b *MenuBar) AnchorX() int {
	return menu.AnchorX(b.Menu.Open(), menu.Order, b.Table, b.padding)
}

// HitTest maps an x position on the bar to the button under it.
func (b *MenuBar) HitTest(x int) menu.ID {
	return menu.HitTest(x, menu.Order, b.Table, b.padding)
}

// Render draws the bar row with the open button highlighted.
func (b *MenuBar) Render() string {
	var bar strings.Builder
	used := 0

	for _, id := range menu.Order {
		style := lipgloss.NewStyle().
			Background(theme.ColourBgPanel).
			Foreground(theme.ColourFg).
			Padding(0, b.padding)

		if b.Menu.Open() == id {
			style = style.
				Background(theme.ColourBgSelected).
				Foreground(theme.ColourFgBright)
		}

		cell := style.Render(id.String())
		bar.WriteString(cell)
		used += menu.ButtonWidth(id, b.Table, b.padding)
	}

	if used < b.Width {
		bar.WriteString(lipgloss.NewStyle().
			Background(theme.ColourBgPanel).
			Render(strings.Repeat(" ", b.Width-used)))
	}

	return bar.String()
}

// PanelSize returns the outer size of the open dropdown including its
// border, (0, 0) when no menu is open.
func (b *MenuBar) PanelSize() (int, int) {
	open := b.Menu.Open()
	if open == menu.None {
		return 0, 0
	}

	return menu.PanelWidth(open, b.Table) + 2, len(menu.Items(open)) + 2
}

// ItemAt resolves a row inside the open dropdown panel to its item.
// row is relative to the panel top border; separators and the border
// rows resolve to nothing.
func (b *MenuBar) ItemAt(row int) (menu.ItemSpec, bool) {
	items := menu.Items(b.Menu.Open())

	index := row - 1
	if index < 0 || index >= len(items) {
		return menu.ItemSpec{}, false
	}

	item := items[index]
	if item.Kind == menu.Separator {
		return menu.ItemSpec{}, false
	}

	return item, true
}

// RenderDropdown draws the open dropdown panel. Returns an empty
// string when every menu is closed.
func (b *MenuBar) RenderDropdown() string {
	open := b.Menu.Open()
	if open == menu.None {
		return ""
	}

	innerWidth := menu.PanelWidth(open, b.Table)

	var rows []string
	for _, item := range menu.Items(open) {
		rows = append(rows, b.renderItem(item, innerWidth))
	}

	return lipgloss.NewStyle().
		Border(theme.BorderStyle).
		BorderForeground(theme.ColourBorder).
		Background(theme.ColourBgPanel).
		Render(strings.Join(rows, "\n"))
}

func (b *MenuBar) renderItem(item menu.ItemSpec, width int) string {
	if item.Kind == menu.Separator {
		return lipgloss.NewStyle().
			Foreground(theme.ColourBorder).
			Render(strings.Repeat("─", width))
	}

	label := " " + item.Label

	suffix := ""
	if item.Shortcut != "" {
		suffix = item.Shortcut + " "
	}
	if item.Kind == menu.Submenu {
		suffix = "▸ "
	}

	gap := width - lipgloss.Width(label) - lipgloss.Width(suffix)
	if gap < 1 {
		gap = 1
	}

	row := label + strings.Repeat(" ", gap) + suffix

	style := lipgloss.NewStyle().
		Background(theme.ColourBgPanel).
		Foreground(theme.ColourFg)

	if item.Command == "" && item.Kind == menu.Action {
		// visual stub without a wired action
		style = style.Foreground(theme.ColourFgDim)
	}

	return style.Render(row)
}
