// Package filetree renders the project directory as a lazily
// materialized tree. Directory contents are read on first expansion
// only; collapsing keeps the expansion flags of descendants so
// re-expanding restores the previous depth state without re-reading
// anything below the toggled level.
package filetree

import (
	"fmt"
	"path/filepath"
	"strings"

	"sable-editor/app/config"
	"sable-editor/app/debug"
	"sable-editor/app/files"
	"sable-editor/app/utils"
	"sable-editor/tui/message"
	"sable-editor/tui/shared"
	"sable-editor/tui/theme"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	bl "github.com/winder/bubblelayout"
)

// TreeItem represents a single tree row, a directory or a file.
type TreeItem struct {
	name  string
	path  string
	isDir bool

	// parent index into the flattened list, -1 for the root
	parent int

	// depth of the row, used for indentation
	level int

	index int

	expanded bool

	// whether children have been read from disk; collapsed
	// directories that were never expanded stay unloaded
	loaded bool

	children []*TreeItem

	IsSelected bool
}

func (i *TreeItem) Name() string { return i.name }
func (i *TreeItem) Path() string { return i.path }
func (i *TreeItem) IsDir() bool  { return i.isDir }
func (i *TreeItem) Index() int   { return i.index }

func (i *TreeItem) Expanded() bool { return i.expanded }

func (i *TreeItem) expand()   { i.expanded = true }
func (i *TreeItem) collapse() { i.expanded = false }

// FileTree is the sidebar component.
type FileTree struct {
	Conf *config.Config

	Id      bl.ID
	Size    bl.Size
	IsReady bool
	Focused bool

	Viewport viewport.Model

	SelectedIndex int

	root     *TreeItem
	rootPath string

	// flattened representation used for rendering and row hit tests
	flat []*TreeItem

	// the expansion set: paths currently shown expanded
	expandedDirs map[string]bool

	indentLines bool
	nerdFonts   bool
}

// New creates a file tree rooted at rootPath. Only the root level is
// read; everything below is materialized on demand.
func New(rootPath string, conf *config.Config) *FileTree {
	t := &FileTree{
		Conf:         conf,
		rootPath:     rootPath,
		expandedDirs: make(map[string]bool),
		nerdFonts:    conf.NerdFonts(),
	}

	t.checkIndentLines()

	t.root = &TreeItem{
		name:     filepath.Base(rootPath),
		path:     rootPath,
		isDir:    true,
		parent:   -1,
		expanded: true,
	}
	t.loadChildren(t.root)
	t.expandedDirs[rootPath] = true
	t.restoreExpansion(t.root)

	t.build()

	return t
}

// restoreExpansion re-applies the expansion flags persisted in the
// meta config below an already loaded directory. Recursion is bounded
// by the persisted path set, so stale entries cost nothing.
func (t *FileTree) restoreExpansion(item *TreeItem) {
	for _, child := range item.children {
		if !child.isDir {
			continue
		}

		expanded, err := t.Conf.MetaValue(child.path, config.Expanded)
		if err != nil || expanded != "true" {
			continue
		}

		if !child.loaded {
			t.loadChildren(child)
		}

		child.expand()
		t.expandedDirs[child.path] = true

		t.restoreExpansion(child)
	}
}

func (t *FileTree) Init() tea.Cmd {
	return nil
}

func (t *FileTree) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.(type) {
	case tea.WindowSizeMsg:
		if !t.IsReady {
			t.Viewport = viewport.New()
			t.Viewport.KeyMap = viewport.KeyMap{}
			t.Viewport.SetContent(t.viewportContent())
			t.IsReady = true
		}
		t.Viewport.SetWidth(t.Size.Width)
		t.Viewport.SetHeight(t.Size.Height)
	}

	t.Viewport, cmd = t.Viewport.Update(msg)

	return t, cmd
}

func (t *FileTree) View() tea.View {
	var view tea.View
	view.SetContent(t.Content())
	return view
}

// Content renders the header and the tree viewport.
func (t *FileTree) Content() string {
	if !t.IsReady {
		return "\n  Initializing..."
	}

	t.Viewport.SetContent(t.viewportContent())
	t.Viewport.EnsureVisible(t.SelectedIndex, 0, 0)

	t.Viewport.Style = theme.BaseColumnLayout(t.Size, t.Focused)

	var view strings.Builder
	view.WriteString(t.header())
	view.WriteByte('\n')
	view.WriteString(t.Viewport.View())
	return view.String()
}

func (t *FileTree) header() string {
	return lipgloss.NewStyle().
		Foreground(theme.ColourFgDim).
		Padding(0, 1).
		Width(t.Size.Width).
		Render(utils.TruncateText(strings.ToUpper(t.root.name), t.Size.Width-2))
}

// RefreshSize keeps the viewport in sync with the layout size.
func (t *FileTree) RefreshSize() {
	if !t.IsReady {
		return
	}

	vp := &t.Viewport
	if vp.Width() != t.Size.Width || vp.Height() != t.Size.Height {
		vp.SetWidth(t.Size.Width)
		vp.SetHeight(t.Size.Height)
	}
}

// Root returns the tree root item.
func (t *FileTree) Root() *TreeItem {
	return t.root
}

// Flat returns the current flattened row list.
func (t *FileTree) Flat() []*TreeItem {
	return t.flat
}

// Expanded reports whether path is in the expansion set.
func (t *FileTree) Expanded(path string) bool {
	return t.expandedDirs[path]
}

// SelectedItem returns the currently selected row, nil when the list
// is empty.
func (t *FileTree) SelectedItem() *TreeItem {
	if t.SelectedIndex < 0 || t.SelectedIndex >= len(t.flat) {
		return nil
	}
	return t.flat[t.SelectedIndex]
}

// loadChildren reads a directory from disk. A read failure degrades
// to an empty child list; the tree stays responsive and the error is
// only logged.
func (t *FileTree) loadChildren(item *TreeItem) {
	entries, err := files.List(item.path)
	if err != nil {
		debug.LogErr("file tree:", err)
		entries = nil
	}

	children := make([]*TreeItem, 0, len(entries))
	for _, entry := range entries {
		children = append(children, &TreeItem{
			name:  entry.Name,
			path:  entry.Path,
			isDir: entry.IsDir,
		})
	}

	item.children = children
	item.loaded = true
}

// build refreshes the flattened row list after a structural change.
func (t *FileTree) build() {
	nextIndex := 0
	t.flat = t.flatten(
		[]*TreeItem{t.root},
		0,
		-1,
		&nextIndex,
	)

	if t.SelectedIndex >= len(t.flat) {
		t.SelectedIndex = len(t.flat) - 1
	}
	if t.SelectedIndex < 0 {
		t.SelectedIndex = 0
	}
}

// flatten converts the item tree into the one dimensional slice used
// for rendering. Only expanded directories are descended into, so a
// collapsed branch costs nothing regardless of its depth.
func (t *FileTree) flatten(
	items []*TreeItem,
	level int,
	parent int,
	nextIndex *int,
) []*TreeItem {
	var result []*TreeItem

	for _, item := range items {
		item.index = *nextIndex
		item.parent = parent
		item.level = level

		*nextIndex++

		result = append(result, item)

		if !item.isDir || !item.expanded {
			continue
		}

		result = append(
			result,
			t.flatten(item.children, level+1, item.index, nextIndex)...,
		)
	}

	return result
}

// ToggleExpand flips the expansion state of the directory at path.
// Files are ignored. Collapsing a directory leaves the expansion
// flags of its descendants untouched.
func (t *FileTree) ToggleExpand(path string) message.StatusBarMsg {
	item := t.findItem(t.root, path)
	if item == nil || !item.isDir {
		return message.StatusBarMsg{}
	}

	if item.expanded {
		return t.collapseItem(item)
	}
	return t.expandItem(item)
}

func (t *FileTree) expandItem(item *TreeItem) message.StatusBarMsg {
	if cyclic, target := t.wouldCycle(item); cyclic {
		debug.LogWarn("refusing to expand symlink cycle:", item.path)
		return message.StatusBarMsg{
			Content: fmt.Sprintf("%s links back to %s", item.name, target),
			Type:    message.Error,
			Sender:  message.SenderFileTree,
		}
	}

	if !item.loaded {
		t.loadChildren(item)

		// first load under a restored branch: bring back the
		// persisted depth state of the children too
		t.restoreExpansion(item)
	}

	item.expand()
	t.expandedDirs[item.path] = true
	t.build()

	// save state to meta config file
	t.Conf.SetMetaValue(item.path, config.Expanded, "true")

	return message.StatusBarMsg{}
}

func (t *FileTree) collapseItem(item *TreeItem) message.StatusBarMsg {
	item.collapse()
	delete(t.expandedDirs, item.path)
	t.build()

	// save state to meta config file
	t.Conf.SetMetaValue(item.path, config.Expanded, "false")

	return message.StatusBarMsg{}
}

// wouldCycle reports whether expanding item would recurse into one of
// its own ancestors through a symlink. The ancestor chain of the
// flattened list is compared against the resolved target path.
func (t *FileTree) wouldCycle(item *TreeItem) (bool, string) {
	resolved, err := filepath.EvalSymlinks(item.path)
	if err != nil {
		// unresolvable link: expansion will degrade to an empty
		// child list instead
		return false, ""
	}

	for parent := item.parent; parent >= 0 && parent < len(t.flat); {
		ancestor := t.flat[parent]

		ancestorResolved, err := filepath.EvalSymlinks(ancestor.path)
		if err == nil && ancestorResolved == resolved {
			return true, ancestor.name
		}

		parent = ancestor.parent
	}

	return false, ""
}

// findItem recursively searches the materialized tree for a path.
func (t *FileTree) findItem(item *TreeItem, path string) *TreeItem {
	if item.path == path {
		return item
	}

	for _, child := range item.children {
		if found := t.findItem(child, path); found != nil {
			return found
		}
	}

	return nil
}

// Refresh re-reads every loaded directory while keeping the
// expansion set and selection.
func (t *FileTree) Refresh() message.StatusBarMsg {
	t.reloadBranch(t.root)
	t.build()

	return message.StatusBarMsg{
		Content: "Tree refreshed",
		Type:    message.Success,
		Sender:  message.SenderFileTree,
	}
}

func (t *FileTree) reloadBranch(item *TreeItem) {
	if !item.loaded {
		return
	}

	prev := make(map[string]*TreeItem, len(item.children))
	for _, child := range item.children {
		prev[child.path] = child
	}

	t.loadChildren(item)

	for _, child := range item.children {
		old, ok := prev[child.path]
		if !ok || !child.isDir {
			continue
		}

		child.expanded = old.expanded && t.expandedDirs[child.path]
		child.loaded = old.loaded
		child.children = old.children

		if child.loaded {
			t.reloadBranch(child)
		}
	}
}

// ClickRow handles a pointer click on a content row: directories are
// toggled, files are opened.
func (t *FileTree) ClickRow(row int) (message.StatusBarMsg, tea.Cmd) {
	index := row + t.Viewport.YOffset
	if index < 0 || index >= len(t.flat) {
		return message.StatusBarMsg{}, nil
	}

	t.SelectedIndex = index
	item := t.flat[index]

	if item.isDir {
		return t.ToggleExpand(item.path), nil
	}

	return message.StatusBarMsg{}, shared.SendOpenFileMsg(item.path)
}

// ConfirmAction opens the selected file or toggles the selected
// directory, mirroring a click on the row.
func (t *FileTree) ConfirmAction() (message.StatusBarMsg, tea.Cmd) {
	item := t.SelectedItem()
	if item == nil {
		return message.StatusBarMsg{}, nil
	}

	if item.isDir {
		return t.ToggleExpand(item.path), nil
	}

	return message.StatusBarMsg{}, shared.SendOpenFileMsg(item.path)
}

///
/// keyboard shortcut commands
///

func (t *FileTree) LineUp() message.StatusBarMsg {
	if t.SelectedIndex > 0 {
		t.SelectedIndex--
	}
	return message.StatusBarMsg{}
}

func (t *FileTree) LineDown() message.StatusBarMsg {
	if t.SelectedIndex < len(t.flat)-1 {
		t.SelectedIndex++
	}
	return message.StatusBarMsg{}
}

func (t *FileTree) GoToTop() message.StatusBarMsg {
	t.SelectedIndex = 0
	return message.StatusBarMsg{}
}

func (t *FileTree) GoToBottom() message.StatusBarMsg {
	t.SelectedIndex = len(t.flat) - 1
	return message.StatusBarMsg{}
}

// Collapse collapses the selected directory, or moves to the parent
// when the selection is a file or an already collapsed directory.
func (t *FileTree) Collapse() message.StatusBarMsg {
	item := t.SelectedItem()
	if item == nil {
		return message.StatusBarMsg{}
	}

	if item.isDir && item.expanded {
		return t.collapseItem(item)
	}

	if item.parent >= 0 {
		t.SelectedIndex = item.parent
	}
	return message.StatusBarMsg{}
}

// Expand expands the selected directory.
func (t *FileTree) Expand() message.StatusBarMsg {
	item := t.SelectedItem()
	if item == nil || !item.isDir || item.expanded {
		return message.StatusBarMsg{}
	}

	return t.expandItem(item)
}

// ToggleIndentLines flips the indent guide rendering and persists the
// preference.
func (t *FileTree) ToggleIndentLines() message.StatusBarMsg {
	t.indentLines = !t.indentLines

	t.Conf.SetValue(
		config.Sidebar,
		config.IndentLines,
		fmt.Sprintf("%t", t.indentLines),
	)

	return message.StatusBarMsg{}
}

func (t *FileTree) checkIndentLines() {
	lines, err := t.Conf.Value(config.Sidebar, config.IndentLines)
	if err != nil {
		debug.LogErr(err)
		return
	}

	t.indentLines = lines.GetBool()
}

///
/// rendering
///

func (t *FileTree) viewportContent() string {
	var tree strings.Builder

	width := t.Size.Width - 2

	for i, item := range t.flat {
		item.IsSelected = t.SelectedIndex == i

		tree.WriteString(t.renderRow(item, width))
		tree.WriteByte('\n')
	}

	return tree.String()
}

func (t *FileTree) renderRow(item *TreeItem, width int) string {
	if width <= 0 {
		return ""
	}

	indentStr := "  "
	if t.indentLines {
		indentStr = "│ "
	}
	indent := strings.Repeat(indentStr, item.level)

	arrow := "  "
	if item.isDir {
		arrow = theme.IconDirClosed.Alt + " "
		if item.expanded {
			arrow = theme.IconDirOpen.Alt + " "
		}
	}

	icon := ""
	if t.nerdFonts {
		switch {
		case item.isDir && item.expanded:
			icon = theme.IconDirOpen.Nerd + " "
		case item.isDir:
			icon = theme.IconDirClosed.Nerd + " "
		default:
			icon = theme.IconFile.Nerd + " "
		}
	}

	prefix := indent + arrow + icon
	name := utils.TruncateText(item.name, width-lipgloss.Width(prefix))

	style := lipgloss.NewStyle().Foreground(theme.ColourFg).Width(width)
	if item.IsSelected {
		style = style.Background(theme.ColourBgSelected).Foreground(theme.ColourFgBright)
	}
	if !item.isDir && !item.IsSelected {
		style = style.Foreground(theme.ColourFg)
	}

	return style.Render(prefix + name)
}
