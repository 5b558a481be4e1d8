// Package finder implements the goto-anything overlay: a fuzzy
// matched jump list over every file below the project root.
package finder

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"sable-editor/app/config"
	"sable-editor/app/debug"
	"sable-editor/app/utils"
	"sable-editor/tui/message"
	"sable-editor/tui/shared"
	"sable-editor/tui/theme"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// maxCandidates caps the walk so a huge project root cannot
	// stall the overlay on open.
	maxCandidates = 10000

	// maxVisible is the number of result rows shown at once.
	maxVisible = 12

	panelWidth = 64
)

// Finder is the overlay model. It owns the candidate list for the
// lifetime of one open/close cycle; reopening re-walks the root.
type Finder struct {
	Conf *config.Config

	Input textinput.Model

	visible bool

	rootPath string

	// candidates are project relative paths of regular files
	candidates []string

	matches       []string
	SelectedIndex int
}

func New(rootPath string, conf *config.Config) *Finder {
	ti := textinput.New()
	ti.Prompt = " " + theme.Icon(theme.IconSearch, conf.NerdFonts()) + " "
	ti.VirtualCursor = true
	ti.CharLimit = 100
	ti.Styles.Focused = textinput.StyleState{
		Prompt: lipgloss.NewStyle().Foreground(theme.ColourBorderFocused),
		Text:   lipgloss.NewStyle().Foreground(theme.ColourFgBright),
	}

	return &Finder{
		Conf:     conf,
		Input:    ti,
		rootPath: rootPath,
	}
}

func (f *Finder) Visible() bool {
	return f.visible
}

// Show opens the overlay with a fresh candidate list and an empty
// query.
func (f *Finder) Show() tea.Cmd {
	f.visible = true
	f.candidates = f.collect()
	f.Input.SetValue("")
	f.filter()

	return f.Input.Focus()
}

// Hide closes the overlay and releases the candidate list.
func (f *Finder) Hide() {
	f.visible = false
	f.candidates = nil
	f.matches = nil
	f.Input.Blur()
}

func (f *Finder) Init() tea.Cmd {
	return nil
}

// Update feeds key input into the query and keeps the match list in
// sync. Enter opens the selection, Esc closes without opening.
func (f *Finder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !f.visible {
		return f, nil
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			f.Hide()
			return f, nil

		case "enter":
			cmd = f.openSelection()
			f.Hide()
			return f, cmd

		case "up", "ctrl+k":
			if f.SelectedIndex > 0 {
				f.SelectedIndex--
			}
			return f, nil

		case "down", "ctrl+j":
			if f.SelectedIndex < len(f.matches)-1 {
				f.SelectedIndex++
			}
			return f, nil
		}
	}

	f.Input, cmd = f.Input.Update(msg)
	f.filter()

	return f, cmd
}

func (f *Finder) View() tea.View {
	var view tea.View
	view.SetContent(f.Content())
	return view
}

// openSelection emits the open command for the selected match.
func (f *Finder) openSelection() tea.Cmd {
	if f.SelectedIndex < 0 || f.SelectedIndex >= len(f.matches) {
		return nil
	}

	path := filepath.Join(f.rootPath, f.matches[f.SelectedIndex])
	return shared.SendOpenFileMsg(path)
}

// collect walks the project root and gathers candidate paths,
// skipping hidden entries the same way the file tree does.
func (f *Finder) collect() []string {
	var paths []string

	err := filepath.WalkDir(f.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtree, skip and keep walking
			return fs.SkipDir
		}

		if strings.HasPrefix(d.Name(), ".") && path != f.rootPath {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if len(paths) >= maxCandidates {
			return fs.SkipAll
		}

		if !d.IsDir() {
			paths = append(paths, utils.RelativePath(path, f.rootPath))
		}

		return nil
	})
	if err != nil {
		debug.LogErr("finder walk:", err)
	}

	return paths
}

// filter ranks the candidates against the current query. An empty
// query lists the candidates in walk order.
func (f *Finder) filter() {
	query := strings.TrimSpace(f.Input.Value())

	if query == "" {
		f.matches = f.candidates
		f.clampSelection()
		return
	}

	ranks := fuzzy.RankFindNormalizedFold(query, f.candidates)
	sort.Sort(ranks)

	matches := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		matches = append(matches, rank.Target)
	}

	f.matches = matches
	f.SelectedIndex = 0
}

func (f *Finder) clampSelection() {
	if f.SelectedIndex >= len(f.matches) {
		f.SelectedIndex = len(f.matches) - 1
	}
	if f.SelectedIndex < 0 {
		f.SelectedIndex = 0
	}
}

// Matches returns the current result list in rank order.
func (f *Finder) Matches() []string {
	return f.matches
}

// Content renders the overlay panel.
func (f *Finder) Content() string {
	var rows []string

	rows = append(rows, f.Input.View())

	visible := f.matches
	offset := 0

	if f.SelectedIndex >= maxVisible {
		offset = f.SelectedIndex - maxVisible + 1
	}
	if offset+maxVisible < len(visible) {
		visible = visible[offset : offset+maxVisible]
	} else if offset < len(visible) {
		visible = visible[offset:]
	}

	for i, match := range visible {
		style := lipgloss.NewStyle().
			Foreground(theme.ColourFg).
			Width(panelWidth)

		if offset+i == f.SelectedIndex {
			style = style.
				Background(theme.ColourBgSelected).
				Foreground(theme.ColourFgBright)
		}

		rows = append(rows, style.Render(" "+utils.TruncateText(match, panelWidth-2)))
	}

	if len(f.matches) == 0 {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(theme.ColourFgDim).
			Render(" no matches"))
	}

	return lipgloss.NewStyle().
		Border(theme.BorderStyle).
		BorderForeground(theme.ColourBorderFocused).
		Background(theme.ColourBgPanel).
		Width(panelWidth).
		Render(strings.Join(rows, "\n"))
}

// StatusMsg is the feedback shown when the finder opens.
func (f *Finder) StatusMsg() message.StatusBarMsg {
	return message.StatusBarMsg{
		Content: "Goto Anything",
		Type:    message.Info,
		Sender:  message.SenderOverlay,
	}
}
