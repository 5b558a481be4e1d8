// Package editorpane displays the active tab's content snapshot with
// a line number gutter. It is a viewer: content comes from the tab
// registry cache, never from disk.
package editorpane

import (
	"fmt"
	"strings"

	"sable-editor/app/config"
	"sable-editor/app/utils"
	"sable-editor/tui/theme"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	bl "github.com/winder/bubblelayout"
)

const gutterWidth = 4

type EditorPane struct {
	Conf *config.Config

	Id      bl.ID
	Size    bl.Size
	IsReady bool
	Focused bool

	Viewport viewport.Model

	content     string
	placeholder string
	empty       bool
}

func New(conf *config.Config) *EditorPane {
	placeholder := "No file open"
	if v, err := conf.Value(config.Editor, config.Placeholder); err == nil {
		placeholder = v.Value
	}

	return &EditorPane{
		Conf:        conf,
		placeholder: placeholder,
		empty:       true,
	}
}

func (e *EditorPane) Init() tea.Cmd {
	return nil
}

func (e *EditorPane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.(type) {
	case tea.WindowSizeMsg:
		if !e.IsReady {
			e.Viewport = viewport.New()
			e.Viewport.KeyMap = viewport.KeyMap{}
			e.IsReady = true
		}
		e.Viewport.SetWidth(e.Size.Width)
		e.Viewport.SetHeight(e.Size.Height)
	}

	e.Viewport, cmd = e.Viewport.Update(msg)

	return e, cmd
}

func (e *EditorPane) View() tea.View {
	var view tea.View
	view.SetContent(e.Content())
	return view
}

// SetContent replaces the displayed snapshot and resets scrolling.
// An empty active selection shows the placeholder without a gutter.
func (e *EditorPane) SetContent(text string, empty bool) {
	e.content = text
	e.empty = empty

	if e.IsReady {
		e.Viewport.SetContent(e.renderContent())
		e.Viewport.GotoTop()
	}
}

// RefreshSize keeps the viewport in sync with the layout size.
func (e *EditorPane) RefreshSize() {
	if !e.IsReady {
		return
	}

	vp := &e.Viewport
	if vp.Width() != e.Size.Width || vp.Height() != e.Size.Height {
		vp.SetWidth(e.Size.Width)
		vp.SetHeight(e.Size.Height)
	}
}

func (e *EditorPane) Content() string {
	if !e.IsReady {
		return ""
	}

	e.Viewport.SetContent(e.renderContent())
	e.Viewport.Style = theme.BaseColumnLayout(e.Size, e.Focused)

	return e.Viewport.View()
}

// renderContent lays out the gutter and the text. Line numbers are
// right aligned in a fixed width column like the editor this shell
// imitates.
func (e *EditorPane) renderContent() string {
	if e.empty {
		return lipgloss.NewStyle().
			Foreground(theme.ColourFgDim).
			Padding(1, 2).
			Render(e.placeholder)
	}

	numStyle := lipgloss.NewStyle().Foreground(theme.ColourFgDim)
	textStyle := lipgloss.NewStyle().Foreground(theme.ColourFg)

	textWidth := e.Size.Width - gutterWidth - 3

	lines := strings.Split(e.content, "\n")

	var out strings.Builder
	for i, line := range lines {
		out.WriteString(numStyle.Render(fmt.Sprintf("%*d", gutterWidth, i+1)))
		out.WriteString("  ")
		out.WriteString(textStyle.Render(utils.TruncateText(line, textWidth)))
		out.WriteByte('\n')
	}

	return out.String()
}
