package message

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

type Type int

const (
	None Type = iota
	Success
	Error
	Info
)

var msgColours = map[Type]color.Color{
	None:    lipgloss.NoColor{},
	Success: lipgloss.NoColor{},
	Error:   lipgloss.Color("#d75a7d"),
	Info:    lipgloss.Color("#69c8dc"),
}

func (m Type) Colour() color.Color {
	return msgColours[m]
}

type Sender int

const (
	SenderFileTree Sender = iota
	SenderTabBar
	SenderMenu
	SenderOverlay
)

// StatusBarMsg carries transient feedback from a component to the
// status bar.
type StatusBarMsg struct {
	Content string
	Type    Type
	Sender  Sender
}
