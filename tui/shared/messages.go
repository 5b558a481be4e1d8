package shared

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// OpenFileMsg asks the root model to open a file in the tab bar.
type OpenFileMsg struct {
	Path string
}

func SendOpenFileMsg(path string) tea.Cmd {
	return func() tea.Msg {
		return OpenFileMsg{Path: path}
	}
}
