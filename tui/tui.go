// Package tui wires the editor shell together: the menu bar and its
// dropdown, the file tree sidebar, the tab bar with the editor pane,
// the status bar and the goto-anything overlay.
package tui

import (
	"fmt"
	"path/filepath"
	"strconv"

	"sable-editor/app"
	"sable-editor/app/config"
	"sable-editor/app/debug"
	"sable-editor/app/fonts"
	"sable-editor/app/utils"
	"sable-editor/tui/components/editorpane"
	"sable-editor/tui/components/filetree"
	"sable-editor/tui/components/finder"
	"sable-editor/tui/components/menubar"
	"sable-editor/tui/components/overlay"
	"sable-editor/tui/components/statusbar"
	"sable-editor/tui/components/tabs"
	"sable-editor/tui/menu"
	"sable-editor/tui/message"
	"sable-editor/tui/shared"
	"sable-editor/tui/sidebar"
	"sable-editor/tui/theme"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	bl "github.com/winder/bubblelayout"
)

// treeRowsAbove is the number of rows between the top of the content
// area and the first tree row: the sidebar header and the viewport's
// top border.
const treeRowsAbove = 2

// ActionFn is a menu or shortcut action. The status message is shown
// in the status bar, the command is handed back to the runtime.
type ActionFn func() (message.StatusBarMsg, tea.Cmd)

// Model is the Bubble Tea root model.
type Model struct {
	layout bl.BubbleLayout

	conf  *config.Config
	table *fonts.Table

	rootPath string

	menu      *menu.Model
	menuBar   *menubar.MenuBar
	fileTree  *filetree.FileTree
	registry  *tabs.Registry
	tabBar    *tabs.Bar
	editor    *editorpane.EditorPane
	statusBar *statusbar.StatusBar
	sidebar   *sidebar.Layout
	finder    *finder.Finder

	sidebarVisible bool

	width  int
	height int

	// 1 = file tree, 2 = editor
	currColFocus int

	actions map[string]ActionFn
}

func InitialModel(
	rootPath string,
	conf *config.Config,
	table *fonts.Table,
) *Model {
	menuModel := &menu.Model{}
	registry := tabs.NewRegistry()

	m := &Model{
		conf:         conf,
		table:        table,
		rootPath:     rootPath,
		menu:         menuModel,
		menuBar:      menubar.New(menuModel, table, conf),
		fileTree:     filetree.New(rootPath, conf),
		registry:     registry,
		tabBar:       tabs.NewBar(registry, conf),
		editor:       editorpane.New(conf),
		statusBar:    statusbar.New(),
		sidebar:      sidebar.New(conf.SidebarWidth(sidebar.DefaultWidth)),
		finder:       finder.New(rootPath, conf),
		currColFocus: 1,
	}

	m.sidebarVisible = true
	if v, err := conf.Value(config.Sidebar, config.Visible); err == nil {
		m.sidebarVisible = v.GetBool()
	}

	m.fileTree.Focused = true
	m.actions = m.actionFns()

	return m
}

func (m *Model) Init() tea.Cmd {
	if m.width == 0 {
		m.width, m.height = theme.TerminalSize()
		m.menuBar.Width = m.width
		m.statusBar.Width = m.width
	}

	m.syncEditor()

	return m.rebuildLayout()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menuBar.Width = msg.Width
		m.statusBar.Width = msg.Width

		m.fileTree.Update(msg)
		m.editor.Update(msg)

		return m, m.rebuildLayout()

	case bl.BubbleLayoutMsg:
		m.applyLayout(msg)

	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			return m.handleLeftClick(msg)
		}

	case tea.MouseMotionMsg:
		if m.sidebar.Dragging() {
			m.sidebar.UpdateDrag(msg.X)
			return m, m.rebuildLayout()
		}

	case tea.MouseReleaseMsg:
		if m.sidebar.Dragging() {
			m.sidebar.EndDrag()
			m.conf.SetValue(
				config.Sidebar,
				config.Width,
				strconv.Itoa(m.sidebar.Width()),
			)
		}

	case tea.MouseWheelMsg:
		return m, m.routeWheel(msg)

	case shared.OpenFileMsg:
		m.openFile(msg.Path)

	case message.StatusBarMsg:
		m.statusBar.Update(msg)
	}

	return m, nil
}

// View renders the screen: the composed base layers plus the dropdown
// and overlay layers on top.
func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(m.render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	return view
}

func (m *Model) render() string {
	var columns []string

	if m.sidebarVisible {
		columns = append(columns, m.fileTree.Content())
	}

	columns = append(columns, lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar.Render(),
		m.editor.Content(),
	))

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.menuBar.Render(),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		m.statusBar.Render(),
	)

	if m.menu.IsOpen() {
		screen = overlay.Place(
			m.menuBar.AnchorX(), menubar.BarHeight,
			m.menuBar.RenderDropdown(), screen,
		)
	}

	if m.finder.Visible() {
		fg := m.finder.Content()
		screen = overlay.Place((m.width-lipgloss.Width(fg))/2, 2, fg, screen)
	}

	return screen
}

///
/// layout
///

// treeWidth returns the cell width of the sidebar column, 0 while
// hidden.
func (m *Model) treeWidth() int {
	if !m.sidebarVisible {
		return 0
	}
	return m.sidebar.Width()
}

func (m *Model) contentHeight() int {
	return m.height - menubar.BarHeight - statusbar.Height
}

// rebuildLayout registers the visible columns and emits the resize
// message that redistributes the space. Rebuilt from scratch whenever
// the sidebar width or visibility changes since column specs are
// fixed at registration.
func (m *Model) rebuildLayout() tea.Cmd {
	m.layout = bl.New()

	if m.sidebarVisible {
		m.fileTree.Id = m.layout.Add(
			fmt.Sprintf("width %d", m.sidebar.Width()),
		)
	}
	m.editor.Id = m.layout.Add("grow")

	width, height := m.width, m.contentHeight()
	return func() tea.Msg {
		return m.layout.Resize(width, height)
	}
}

func (m *Model) applyLayout(msg bl.BubbleLayoutMsg) {
	if m.sidebarVisible {
		m.fileTree.Size, _ = msg.Size(m.fileTree.Id)

		// header row and borders
		m.fileTree.Size.Width -= 2
		m.fileTree.Size.Height -= treeRowsAbove + 1
	}

	m.editor.Size, _ = msg.Size(m.editor.Id)

	// tab bar row and borders
	m.editor.Size.Width -= 2
	m.editor.Size.Height -= tabs.BarHeight + 2

	m.fileTree.RefreshSize()
	m.editor.RefreshSize()

	m.tabBar.Width = m.width - m.treeWidth()
}

///
/// keyboard input
///

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.finder.Visible() {
		_, cmd := m.finder.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return m, tea.Quit

	case "ctrl+p":
		return m, m.dispatch("gotoAnything")

	case "ctrl+b":
		return m, m.dispatch("toggleSidebar")

	case "ctrl+w":
		return m, m.dispatch("closeTab")

	case "esc":
		m.menu.Close()
		return m, nil

	case "tab":
		m.focusNextColumn()
		return m, nil
	}

	if m.fileTree.Focused && m.sidebarVisible {
		return m.handleTreeKey(msg)
	}

	return m.handleEditorKey(msg)
}

func (m *Model) handleTreeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	statusMsg := message.StatusBarMsg{}

	switch msg.String() {
	case "up", "k":
		statusMsg = m.fileTree.LineUp()
	case "down", "j":
		statusMsg = m.fileTree.LineDown()
	case "left", "h":
		statusMsg = m.fileTree.Collapse()
	case "right", "l":
		statusMsg = m.fileTree.Expand()
	case "home", "g":
		statusMsg = m.fileTree.GoToTop()
	case "end", "G":
		statusMsg = m.fileTree.GoToBottom()
	case "enter":
		var cmd tea.Cmd
		statusMsg, cmd = m.fileTree.ConfirmAction()
		m.statusBar.Update(statusMsg)
		return m, cmd
	}

	m.statusBar.Update(statusMsg)
	return m, nil
}

func (m *Model) handleEditorKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if !m.editor.IsReady {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.editor.Viewport.LineUp(1)
	case "down", "j":
		m.editor.Viewport.LineDown(1)
	case "pgup", "ctrl+u":
		m.editor.Viewport.LineUp(m.editor.Size.Height / 2)
	case "pgdown", "ctrl+d":
		m.editor.Viewport.LineDown(m.editor.Size.Height / 2)
	case "home":
		m.editor.Viewport.GotoTop()
	case "end":
		m.editor.Viewport.GotoBottom()
	}

	return m, nil
}

///
/// pointer input
///

func (m *Model) handleLeftClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.finder.Visible() {
		m.finder.Hide()
		return m, nil
	}

	if m.menu.IsOpen() {
		return m.clickWithMenuOpen(msg)
	}

	if msg.Y < menubar.BarHeight {
		if id := m.menuBar.HitTest(msg.X); id != menu.None {
			m.menu.Toggle(id)
		}
		return m, nil
	}

	return m.clickContent(msg)
}

// clickWithMenuOpen resolves a click while a dropdown is visible. A
// click inside the panel dispatches the item under the pointer; any
// click elsewhere only closes the menu, it never falls through to the
// component underneath.
func (m *Model) clickWithMenuOpen(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Y < menubar.BarHeight {
		if id := m.menuBar.HitTest(msg.X); id != menu.None {
			m.menu.Toggle(id)
		} else {
			m.menu.Close()
		}
		return m, nil
	}

	x0 := m.menuBar.AnchorX()
	y0 := menubar.BarHeight
	w, h := m.menuBar.PanelSize()

	inside := msg.X >= x0 && msg.X < x0+w &&
		msg.Y >= y0 && msg.Y < y0+h

	if !inside {
		m.menu.Close()
		return m, nil
	}

	item, ok := m.menuBar.ItemAt(msg.Y - y0)
	m.menu.Close()

	if !ok || item.Command == "" {
		return m, nil
	}

	return m, m.dispatch(item.Command)
}

func (m *Model) clickContent(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Y >= m.height-statusbar.Height {
		return m, nil
	}

	treeWidth := m.treeWidth()
	contentY := msg.Y - menubar.BarHeight

	// the sidebar's right border column doubles as the resize handle
	if treeWidth > 0 && msg.X == treeWidth-1 {
		m.sidebar.BeginDrag()
		return m, nil
	}

	if treeWidth > 0 && msg.X < treeWidth {
		m.focusColumn(1)

		row := contentY - treeRowsAbove
		if row < 0 {
			return m, nil
		}

		statusMsg, cmd := m.fileTree.ClickRow(row)
		m.statusBar.Update(statusMsg)
		return m, cmd
	}

	localX := msg.X - treeWidth

	if contentY < tabs.BarHeight {
		m.clickTabBar(localX)
		return m, nil
	}

	m.focusColumn(2)
	return m, nil
}

func (m *Model) clickTabBar(x int) {
	action, index := m.tabBar.ClickAt(x)

	switch action {
	case tabs.ClickActivate:
		if err := m.registry.Activate(index); err != nil {
			debug.LogErr(err)
			return
		}

	case tabs.ClickClose:
		m.registry.Close(index)

	default:
		return
	}

	m.syncEditor()
}

// routeWheel scrolls the viewport under the pointer.
func (m *Model) routeWheel(msg tea.MouseWheelMsg) tea.Cmd {
	var cmd tea.Cmd

	if m.sidebarVisible && msg.X < m.treeWidth() {
		_, cmd = m.fileTree.Update(msg)
		return cmd
	}

	_, cmd = m.editor.Update(msg)
	return cmd
}

///
/// focus
///

// focusColumn selects and highlights a column
// (1 = file tree, 2 = editor)
func (m *Model) focusColumn(index int) {
	if index == 1 && !m.sidebarVisible {
		index = 2
	}

	m.fileTree.Focused = index == 1
	m.editor.Focused = index == 2
	m.currColFocus = index
}

func (m *Model) focusNextColumn() {
	next := m.currColFocus + 1
	if next > 2 {
		next = 1
	}
	m.focusColumn(next)
}

///
/// actions
///

// dispatch runs a named action and routes its feedback to the status
// bar. Unknown names are logged, not fatal; item tables and the action
// map are maintained by hand.
func (m *Model) dispatch(command string) tea.Cmd {
	fn, ok := m.actions[command]
	if !ok {
		debug.LogWarn("unknown menu command:", command)
		return nil
	}

	statusMsg, cmd := fn()
	m.statusBar.Update(statusMsg)
	return cmd
}

// actionFns maps menu item command names to their implementations.
func (m *Model) actionFns() map[string]ActionFn {
	return map[string]ActionFn{
		"newFile":           m.newFile,
		"gotoAnything":      m.showFinder,
		"closeTab":          m.closeActiveTab,
		"quit":              m.quit,
		"copyContent":       m.copyContent,
		"copyPath":          m.copyPath,
		"toggleSidebar":     m.toggleSidebar,
		"toggleIndentLines": m.toggleIndentLines,
		"refreshTree":       m.refreshTree,
		"openSettings":      m.openSettings,
		"about":             m.about,
	}
}

func (m *Model) newFile() (message.StatusBarMsg, tea.Cmd) {
	return message.StatusBarMsg{
		Content: "New File requires write support",
		Type:    message.Info,
		Sender:  message.SenderMenu,
	}, nil
}

func (m *Model) showFinder() (message.StatusBarMsg, tea.Cmd) {
	return m.finder.StatusMsg(), m.finder.Show()
}

func (m *Model) closeActiveTab() (message.StatusBarMsg, tea.Cmd) {
	index, ok := m.registry.ActiveIndex()
	if !ok {
		return message.StatusBarMsg{}, nil
	}

	m.registry.Close(index)
	m.syncEditor()

	return message.StatusBarMsg{}, nil
}

func (m *Model) quit() (message.StatusBarMsg, tea.Cmd) {
	return message.StatusBarMsg{}, tea.Quit
}

func (m *Model) copyContent() (message.StatusBarMsg, tea.Cmd) {
	if _, ok := m.registry.ActiveIndex(); !ok {
		return message.StatusBarMsg{}, nil
	}

	if err := clipboard.WriteAll(m.registry.ActiveContent("")); err != nil {
		debug.LogErr(err)
		return message.StatusBarMsg{
			Content: "Clipboard unavailable",
			Type:    message.Error,
			Sender:  message.SenderMenu,
		}, nil
	}

	return message.StatusBarMsg{
		Content: "Content copied",
		Type:    message.Success,
		Sender:  message.SenderMenu,
	}, nil
}

func (m *Model) copyPath() (message.StatusBarMsg, tea.Cmd) {
	path := m.registry.ActivePath()
	if path == "" {
		return message.StatusBarMsg{}, nil
	}

	if err := clipboard.WriteAll(path); err != nil {
		debug.LogErr(err)
		return message.StatusBarMsg{
			Content: "Clipboard unavailable",
			Type:    message.Error,
			Sender:  message.SenderMenu,
		}, nil
	}

	return message.StatusBarMsg{
		Content: "Path copied",
		Type:    message.Success,
		Sender:  message.SenderMenu,
	}, nil
}

func (m *Model) toggleSidebar() (message.StatusBarMsg, tea.Cmd) {
	m.sidebarVisible = !m.sidebarVisible

	m.conf.SetValue(
		config.Sidebar,
		config.Visible,
		fmt.Sprintf("%t", m.sidebarVisible),
	)

	if !m.sidebarVisible && m.currColFocus == 1 {
		m.focusColumn(2)
	}

	return message.StatusBarMsg{}, m.rebuildLayout()
}

func (m *Model) toggleIndentLines() (message.StatusBarMsg, tea.Cmd) {
	return m.fileTree.ToggleIndentLines(), nil
}

func (m *Model) refreshTree() (message.StatusBarMsg, tea.Cmd) {
	return m.fileTree.Refresh(), nil
}

func (m *Model) openSettings() (message.StatusBarMsg, tea.Cmd) {
	path := m.conf.File()
	if path == "" {
		return message.StatusBarMsg{
			Content: "No config file",
			Type:    message.Error,
			Sender:  message.SenderMenu,
		}, nil
	}

	m.openFile(path)
	return message.StatusBarMsg{}, nil
}

func (m *Model) about() (message.StatusBarMsg, tea.Cmd) {
	return message.StatusBarMsg{
		Content: fmt.Sprintf("%s %s", app.Name(), app.Version),
		Type:    message.Info,
		Sender:  message.SenderMenu,
	}, nil
}

///
/// tab plumbing
///

// openFile opens or focuses a tab. A failed read leaves the registry
// untouched and surfaces in the status bar.
func (m *Model) openFile(path string) {
	if err := m.registry.OpenOrFocus(path); err != nil {
		debug.LogErr(err)
		m.statusBar.Update(message.StatusBarMsg{
			Content: fmt.Sprintf("Could not open %s", filepath.Base(path)),
			Type:    message.Error,
			Sender:  message.SenderTabBar,
		})
		return
	}

	m.syncEditor()
	m.focusColumn(2)
}

// syncEditor pushes the active tab's snapshot into the editor pane and
// the status bar path segment.
func (m *Model) syncEditor() {
	_, hasActive := m.registry.ActiveIndex()

	m.editor.SetContent(m.registry.ActiveContent(""), !hasActive)

	if hasActive {
		m.statusBar.ActivePath = utils.RelativePath(
			m.registry.ActivePath(),
			m.rootPath,
		)
	} else {
		m.statusBar.ActivePath = ""
	}
}
