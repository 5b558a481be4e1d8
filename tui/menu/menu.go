// Package menu models the menu bar: the closed set of menu ids, the
// per-menu item tables and the single-open-menu state machine.
package menu

type ID int

const (
	None ID = iota
	File
	Edit
	Selection
	Find
	View
	Goto
	Tools
	Project
	Preferences
	Help
)

var labels = map[ID]string{
	None:        "",
	File:        "File",
	Edit:        "Edit",
	Selection:   "Selection",
	Find:        "Find",
	View:        "View",
	Goto:        "Goto",
	Tools:       "Tools",
	Project:     "Project",
	Preferences: "Preferences",
	Help:        "Help",
}

// String returns the menu bar label of an ID
func (id ID) String() string {
	return labels[id]
}

// Order is the fixed left-to-right menu bar order.
var Order = []ID{
	File,
	Edit,
	Selection,
	Find,
	View,
	Goto,
	Tools,
	Project,
	Preferences,
	Help,
}

type ItemKind int

const (
	Action ItemKind = iota
	Separator
	Submenu
)

// ItemSpec describes a single dropdown row. Command names the action
// dispatched by the root model when the row is activated; rows with an
// empty Command are visual stubs.
type ItemSpec struct {
	Label    string
	Shortcut string
	Kind     ItemKind
	Command  string
}

func sep() ItemSpec {
	return ItemSpec{Kind: Separator}
}

var items = map[ID][]ItemSpec{
	None: {},
	File: {
		{Label: "New File", Shortcut: "ctrl+n", Kind: Action, Command: "newFile"},
		{Label: "Open…", Shortcut: "ctrl+p", Kind: Action, Command: "gotoAnything"},
		sep(),
		{Label: "Save", Shortcut: "ctrl+s", Kind: Action},
		{Label: "Close Tab", Shortcut: "ctrl+w", Kind: Action, Command: "closeTab"},
		sep(),
		{Label: "Quit", Shortcut: "ctrl+q", Kind: Action, Command: "quit"},
	},
	Edit: {
		{Label: "Undo", Shortcut: "ctrl+z", Kind: Action},
		{Label: "Redo", Shortcut: "ctrl+y", Kind: Action},
		sep(),
		{Label: "Cut", Shortcut: "ctrl+x", Kind: Action},
		{Label: "Copy", Shortcut: "ctrl+c", Kind: Action, Command: "copyContent"},
		{Label: "Copy Path", Kind: Action, Command: "copyPath"},
		{Label: "Paste", Shortcut: "ctrl+v", Kind: Action},
		sep(),
		{Label: "Select All", Shortcut: "ctrl+a", Kind: Action},
	},
	Selection: {
		{Label: "Select All", Shortcut: "ctrl+a", Kind: Action},
		{Label: "Select Line", Kind: Action},
		{Label: "Select Word", Kind: Action},
	},
	Find: {
		{Label: "Find…", Shortcut: "ctrl+f", Kind: Action},
		{Label: "Replace…", Shortcut: "ctrl+h", Kind: Action},
		sep(),
		{Label: "Find in Files", Kind: Action},
	},
	View: {
		{Label: "Toggle Sidebar", Shortcut: "ctrl+b", Kind: Action, Command: "toggleSidebar"},
		{Label: "Indent Guides", Kind: Action, Command: "toggleIndentLines"},
	},
	Goto: {
		{Label: "Goto Anything…", Shortcut: "ctrl+p", Kind: Action, Command: "gotoAnything"},
		{Label: "Goto Line", Kind: Action},
	},
	Tools: {
		{Label: "Command Palette…", Shortcut: "ctrl+shift+p", Kind: Action, Command: "gotoAnything"},
		{Label: "Build", Kind: Action},
	},
	Project: {
		{Label: "Refresh Tree", Kind: Action, Command: "refreshTree"},
		{Label: "Open Project…", Kind: Submenu},
	},
	Preferences: {
		{Label: "Settings", Kind: Action, Command: "openSettings"},
		{Label: "Key Bindings", Kind: Action},
	},
	Help: {
		{Label: "About", Kind: Action, Command: "about"},
		{Label: "Documentation", Kind: Action},
	},
}

// Items returns the fixed item list of a menu. The id set is closed
// and exhaustively mapped, so there is no error case.
func Items(id ID) []ItemSpec {
	return items[id]
}

// Model tracks which menu, if any, is currently open. At most one
// menu is open at a time.
type Model struct {
	open ID
}

// Open returns the currently open menu, None when all are closed.
func (m *Model) Open() ID {
	return m.open
}

// IsOpen reports whether any dropdown is visible.
func (m *Model) IsOpen() bool {
	return m.open != None
}

// Toggle closes the menu if it is already open, otherwise switches
// straight to it without an intermediate close.
func (m *Model) Toggle(id ID) {
	if m.open == id {
		m.open = None
		return
	}

	m.open = id
}

// Close unconditionally closes any open dropdown. Invoked by a click
// anywhere outside the open dropdown and its button.
func (m *Model) Close() {
	m.open = None
}
