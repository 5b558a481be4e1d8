package tabs

import (
	"errors"
	"testing"
)

const placeholder = "No file open"

func fakeRegistry(contents map[string]string) *Registry {
	r := NewRegistry()
	r.loader = func(path string) (string, error) {
		if content, ok := contents[path]; ok {
			return content, nil
		}
		return "", errors.New("unreadable")
	}
	return r
}

func checkInvariant(t *testing.T, r *Registry) {
	t.Helper()

	index, ok := r.ActiveIndex()
	if r.Len() == 0 && ok {
		t.Fatal("Expected no active index on an empty tab list")
	}
	if r.Len() > 0 && !ok {
		t.Fatal("Expected an active index on a non-empty tab list")
	}
	if ok && (index < 0 || index >= r.Len()) {
		t.Fatalf("Active index %d out of range [0,%d)", index, r.Len())
	}
}

func TestOpenCloseScenario(t *testing.T) {
	r := fakeRegistry(map[string]string{
		"/a.txt": "X",
		"/b.txt": "Y",
	})

	if got := r.ActiveContent(placeholder); got != placeholder {
		t.Fatalf("Expected placeholder with no tabs, got %q", got)
	}

	if err := r.OpenOrFocus("/a.txt"); err != nil {
		t.Fatal(err)
	}
	checkInvariant(t, r)

	if i, _ := r.ActiveIndex(); i != 0 || r.Len() != 1 {
		t.Fatalf("Expected tabs=1 active=0, got tabs=%d active=%d", r.Len(), i)
	}
	if got := r.ActiveContent(placeholder); got != "X" {
		t.Fatalf("Expected content X, got %q", got)
	}

	if err := r.OpenOrFocus("/b.txt"); err != nil {
		t.Fatal(err)
	}
	if i, _ := r.ActiveIndex(); i != 1 || r.Len() != 2 {
		t.Fatalf("Expected tabs=2 active=1, got tabs=%d active=%d", r.Len(), i)
	}

	r.Close(0)
	checkInvariant(t, r)

	if i, _ := r.ActiveIndex(); i != 0 || r.Len() != 1 {
		t.Fatalf("Expected re-clamped active=0, got %d", i)
	}
	if got := r.ActiveContent(placeholder); got != "Y" {
		t.Fatalf("Expected content Y, got %q", got)
	}

	r.Close(0)
	checkInvariant(t, r)
	if got := r.ActiveContent(placeholder); got != placeholder {
		t.Fatalf("Expected placeholder after closing all tabs, got %q", got)
	}
}

func TestOpenSamePathTwiceFocusesWithoutReload(t *testing.T) {
	contents := map[string]string{"/a.txt": "first", "/b.txt": "Y"}
	r := fakeRegistry(contents)

	r.OpenOrFocus("/a.txt")
	r.OpenOrFocus("/b.txt")

	// content changing on disk must not matter: focus never reloads
	contents["/a.txt"] = "second"

	if err := r.OpenOrFocus("/a.txt"); err != nil {
		t.Fatal(err)
	}

	if r.Len() != 2 {
		t.Fatalf("Expected exactly one tab per path, got %d", r.Len())
	}
	if i, _ := r.ActiveIndex(); i != 0 {
		t.Fatalf("Expected focus on the existing tab, got %d", i)
	}
	if got := r.ActiveContent(placeholder); got != "first" {
		t.Fatalf("Expected the original snapshot, got %q", got)
	}
}

func TestOpenUnreadableFileIsNoop(t *testing.T) {
	r := fakeRegistry(map[string]string{"/a.txt": "X"})
	r.OpenOrFocus("/a.txt")

	err := r.OpenOrFocus("/missing.txt")
	if err == nil {
		t.Fatal("Expected an error for an unreadable file")
	}

	if r.Len() != 1 {
		t.Fatalf("Expected the registry unchanged, got %d tabs", r.Len())
	}
	if i, _ := r.ActiveIndex(); i != 0 {
		t.Fatalf("Expected the active tab unchanged, got %d", i)
	}
	checkInvariant(t, r)
}

func TestCloseBeforeActiveShiftsIndex(t *testing.T) {
	r := fakeRegistry(map[string]string{"/a": "A", "/b": "B", "/c": "C"})
	r.OpenOrFocus("/a")
	r.OpenOrFocus("/b")
	r.OpenOrFocus("/c")

	// active is /c at index 2; closing index 0 shifts it to 1
	r.Close(0)
	checkInvariant(t, r)

	if i, _ := r.ActiveIndex(); i != 1 {
		t.Fatalf("Expected active index 1, got %d", i)
	}
	if got := r.ActiveContent(placeholder); got != "C" {
		t.Fatalf("Expected content C, got %q", got)
	}
}

func TestCloseOutOfRangeIsIgnored(t *testing.T) {
	r := fakeRegistry(map[string]string{"/a": "A"})
	r.OpenOrFocus("/a")

	r.Close(5)
	r.Close(-1)

	if r.Len() != 1 {
		t.Fatalf("Expected the tab to survive, got %d tabs", r.Len())
	}
	checkInvariant(t, r)
}

func TestActivateRejectsOutOfRange(t *testing.T) {
	r := fakeRegistry(map[string]string{"/a": "A", "/b": "B"})
	r.OpenOrFocus("/a")
	r.OpenOrFocus("/b")

	if err := r.Activate(0); err != nil {
		t.Fatal(err)
	}
	if got := r.ActiveContent(placeholder); got != "A" {
		t.Fatalf("Expected content A, got %q", got)
	}

	if err := r.Activate(2); err == nil {
		t.Fatal("Expected an error for an out-of-range index")
	}
	if err := r.Activate(-1); err == nil {
		t.Fatal("Expected an error for a negative index")
	}

	// the failed requests must not have moved the selection
	if i, _ := r.ActiveIndex(); i != 0 {
		t.Fatalf("Expected active index 0, got %d", i)
	}
}

func TestCacheLifetimeFollowsTab(t *testing.T) {
	r := fakeRegistry(map[string]string{"/a": "A"})
	r.OpenOrFocus("/a")

	if _, ok := r.contents["/a"]; !ok {
		t.Fatal("Expected a cache entry for the open tab")
	}

	r.Close(0)
	if _, ok := r.contents["/a"]; ok {
		t.Fatal("Expected the cache entry to die with its tab")
	}
}
