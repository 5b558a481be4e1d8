package files

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"sable-editor/app/debug"
)

// Entry is a single directory entry shown in the file tree.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// List reads a directory and returns its entries ordered directories
// first, then files, lexicographically within each group. Entries that
// cannot be inspected (permission errors, deleted mid-read) are
// skipped so a partially readable directory still renders.
func List(dirPath string) ([]Entry, error) {
	children, err := os.ReadDir(dirPath)
	if err != nil {
		debug.LogErr(err)
		return nil, err
	}

	entries := make([]Entry, 0, len(children))

	for _, child := range children {
		if isHidden(child.Name()) {
			continue
		}

		info, err := child.Info()
		if err != nil {
			debug.LogWarn("skipping unreadable entry:", err)
			continue
		}

		path := filepath.Join(dirPath, child.Name())

		// ReadDir does not follow symlinks, so a linked directory
		// would otherwise render as a file
		isDir := child.IsDir()
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil {
				isDir = target.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:  child.Name(),
			Path:  path,
			IsDir: isDir,
		})
	}

	// directories first, then byte-wise by name so the order is
	// deterministic for a fixed snapshot
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})

	return entries, nil
}

// Read returns the whole content of a file as text.
func Read(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		debug.LogErr(err)
		return "", err
	}

	return string(content), nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
