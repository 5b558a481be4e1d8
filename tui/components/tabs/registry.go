// Package tabs tracks the ordered list of open file tabs, the active
// selection and the cache of loaded file contents.
package tabs

import (
	"fmt"

	"sable-editor/app/files"
)

// noActive marks the empty selection.
const noActive = -1

// Tab is one open file. The content snapshot lives in the registry
// cache, keyed by path, for exactly as long as the tab exists.
type Tab struct {
	Path string
}

// Registry owns the tab sequence, the active index and the content
// cache. Tab order is visual order and is never reordered implicitly.
type Registry struct {
	tabs     []Tab
	contents map[string]string
	active   int

	// loader reads a file on open; swapped out in tests
	loader func(string) (string, error)
}

func NewRegistry() *Registry {
	return &Registry{
		contents: make(map[string]string),
		active:   noActive,
		loader:   files.Read,
	}
}

// Tabs returns the open tabs in visual order.
func (r *Registry) Tabs() []Tab {
	return r.tabs
}

func (r *Registry) Len() int {
	return len(r.tabs)
}

// ActiveIndex returns the active tab position. ok is false when no
// tab is open.
func (r *Registry) ActiveIndex() (int, bool) {
	if r.active == noActive {
		return 0, false
	}
	return r.active, true
}

// ActivePath returns the path of the active tab, empty when none.
func (r *Registry) ActivePath() string {
	if r.active == noActive {
		return ""
	}
	return r.tabs[r.active].Path
}

// indexOf returns the tab position for a path, noActive if the path
// is not open. Tabs are deduplicated by exact path equality only;
// two spellings of the same file via symlinks count as two files.
func (r *Registry) indexOf(path string) int {
	for i, tab := range r.tabs {
		if tab.Path == path {
			return i
		}
	}
	return noActive
}

// OpenOrFocus focuses the existing tab for path, or loads the file
// and appends a new tab at the end. An unreadable file leaves the
// registry unchanged and returns the error for the caller to surface.
func (r *Registry) OpenOrFocus(path string) error {
	if i := r.indexOf(path); i != noActive {
		r.active = i
		return nil
	}

	content, err := r.loader(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	r.tabs = append(r.tabs, Tab{Path: path})
	r.contents[path] = content
	r.active = len(r.tabs) - 1

	return nil
}

// Close removes the tab at index together with its cache entry and
// re-normalizes the active selection. Out-of-range indices are
// ignored.
func (r *Registry) Close(index int) {
	if index < 0 || index >= len(r.tabs) {
		return
	}

	delete(r.contents, r.tabs[index].Path)
	r.tabs = append(r.tabs[:index], r.tabs[index+1:]...)

	r.active = normalize(r.active, index, len(r.tabs))
}

// Activate selects the tab at index. Out-of-range requests are
// rejected rather than clamped so caller bugs surface.
func (r *Registry) Activate(index int) error {
	if index < 0 || index >= len(r.tabs) {
		return fmt.Errorf("tab index %d out of range [0,%d)", index, len(r.tabs))
	}

	r.active = index
	return nil
}

// ActiveContent returns the cached content of the active tab, or
// placeholder when no tab is active. Never fails.
func (r *Registry) ActiveContent(placeholder string) string {
	if r.active == noActive {
		return placeholder
	}

	return r.contents[r.tabs[r.active].Path]
}

// normalize re-clamps the active index after the removal of a tab.
// Pure: every structural mutation goes through here instead of ad hoc
// inline checks.
func normalize(active, removed, length int) int {
	if length == 0 {
		return noActive
	}

	if removed < active {
		active--
	}

	if active >= length {
		active = length - 1
	}

	return active
}
