// Package statusbar shows transient operation feedback and the path
// of the active tab at the bottom of the screen.
package statusbar

import (
	"strings"

	"sable-editor/app/utils"
	"sable-editor/tui/message"
	"sable-editor/tui/theme"

	"github.com/charmbracelet/lipgloss/v2"
)

// Height is the status bar height in rows.
const Height = 1

type StatusBar struct {
	Width int

	// ActivePath is the path shown on the right hand side.
	ActivePath string

	content string
	msgType message.Type
}

func New() *StatusBar {
	return &StatusBar{}
}

// Update replaces the displayed message. Empty messages are ignored
// so a no-op action does not clear previous feedback.
func (s *StatusBar) Update(msg message.StatusBarMsg) {
	if msg.Content == "" {
		return
	}

	s.content = msg.Content
	s.msgType = msg.Type
}

// Clear drops the current message.
func (s *StatusBar) Clear() {
	s.content = ""
	s.msgType = message.None
}

func (s *StatusBar) Render() string {
	left := s.content

	leftStyle := lipgloss.NewStyle().
		Background(theme.ColourBgPanel).
		Foreground(s.msgType.Colour())

	right := utils.TruncateText(s.ActivePath, s.Width/2)
	rightStyle := lipgloss.NewStyle().
		Background(theme.ColourBgPanel).
		Foreground(theme.ColourFgDim)

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		left = utils.TruncateText(left, s.Width-lipgloss.Width(right)-2)
		gap = s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if gap < 0 {
			gap = 0
		}
	}

	filler := lipgloss.NewStyle().
		Background(theme.ColourBgPanel).
		Render(strings.Repeat(" ", gap))

	return leftStyle.Render(" "+left) + filler + rightStyle.Render(right+" ")
}
