package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	bl "github.com/winder/bubblelayout"
	"golang.org/x/term"
)

// Palette lifted from the editor this shell is modelled on:
// dark greys with a light foreground.
var (
	ColourBg            = lipgloss.Color("#232323")
	ColourBgPanel       = lipgloss.Color("#1e1e1e")
	ColourBgSelected    = lipgloss.Color("#3e3e3e")
	ColourFg            = lipgloss.Color("#cccccc")
	ColourFgBright      = lipgloss.Color("#ffffff")
	ColourFgDim         = lipgloss.Color("#666666")
	ColourBorder        = lipgloss.Color("#424B5D")
	ColourBorderFocused = lipgloss.Color("#69c8dc")
	BorderStyle         = lipgloss.NormalBorder()
)

// IconSet bundles the nerd font glyph with a plain text fallback.
type IconSet struct {
	Nerd string
	Alt  string
}

var (
	IconDirClosed = IconSet{"", "▸"}
	IconDirOpen   = IconSet{"", "▾"}
	IconFile      = IconSet{"", " "}
	IconClose     = IconSet{"✕", "x"}
	IconSearch    = IconSet{"", ">"}
)

// Icon returns the nerd font variant if enabled, the fallback
// otherwise.
func Icon(icon IconSet, nerdFonts bool) string {
	if nerdFonts {
		return icon.Nerd
	}
	return icon.Alt
}

// BaseColumnLayout provides the basic layout style for a column
func BaseColumnLayout(size bl.Size, focused bool) lipgloss.Style {
	borderColour := ColourBorder
	if focused {
		borderColour = ColourBorderFocused
	}

	return lipgloss.NewStyle().
		Border(BorderStyle).
		BorderForeground(borderColour).
		Foreground(ColourFg).
		Width(size.Width).
		Height(size.Height)
}

// TerminalSize determines the current terminal size providing a
// fallback and subtracting 1 from height because otherwise the upper
// part of the ui gets truncated
func TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80
		height = 40
	}
	return width, height - 1
}
