package finder

import (
	"os"
	"path/filepath"
	"testing"

	"sable-editor/app/config"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func fixtureRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	files := []string{
		"main.go",
		"readme.md",
		"internal/server/handler.go",
		"internal/server/router.go",
		".git/config",
	}
	for _, name := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	return root
}

func newTestFinder(t *testing.T) *Finder {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	conf := config.New()
	if conf == nil {
		t.Fatal("config.New returned nil")
	}

	return New(fixtureRoot(t), conf)
}

func TestShowCollectsCandidates(t *testing.T) {
	f := newTestFinder(t)
	f.Show()

	if !f.Visible() {
		t.Fatal("Show should make the finder visible")
	}

	if got := len(f.Matches()); got != 4 {
		t.Fatalf("candidate count = %d, want 4: %v", got, f.Matches())
	}

	for _, match := range f.Matches() {
		if filepath.IsAbs(match) {
			t.Fatalf("candidate %q should be project relative", match)
		}
		if match == ".git/config" {
			t.Fatal("hidden directories must be skipped")
		}
	}
}

func TestQueryRanksMatches(t *testing.T) {
	f := newTestFinder(t)
	f.Show()

	f.Input.SetValue("handler")
	f.filter()

	matches := f.Matches()
	if len(matches) == 0 {
		t.Fatal("expected at least one match for handler")
	}
	if matches[0] != "internal/server/handler.go" {
		t.Fatalf("best match = %q, want internal/server/handler.go", matches[0])
	}
}

func TestNoMatchesForGarbageQuery(t *testing.T) {
	f := newTestFinder(t)
	f.Show()

	f.Input.SetValue("zzzqqqxxx")
	f.filter()

	if len(f.Matches()) != 0 {
		t.Fatalf("matches = %v, want none", f.Matches())
	}
}

func TestEnterEmitsOpenCommand(t *testing.T) {
	f := newTestFinder(t)
	f.Show()

	f.Input.SetValue("readme")
	f.filter()

	_, cmd := f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter with a selection should emit a command")
	}
	if f.Visible() {
		t.Fatal("enter should close the finder")
	}
}

func TestEscClosesWithoutCommand(t *testing.T) {
	f := newTestFinder(t)
	f.Show()

	_, cmd := f.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Fatal("esc must not emit a command")
	}
	if f.Visible() {
		t.Fatal("esc should close the finder")
	}
}

func TestSelectionMovesWithinBounds(t *testing.T) {
	f := newTestFinder(t)
	f.Show()

	f.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if f.SelectedIndex != 0 {
		t.Fatalf("selection moved above the first row: %d", f.SelectedIndex)
	}

	for range 10 {
		f.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if f.SelectedIndex != len(f.Matches())-1 {
		t.Fatalf("selection = %d, want last row %d",
			f.SelectedIndex, len(f.Matches())-1)
	}
}

func TestHideReleasesCandidates(t *testing.T) {
	f := newTestFinder(t)
	f.Show()
	f.Hide()

	if f.Visible() {
		t.Fatal("Hide should make the finder invisible")
	}
	if f.Matches() != nil {
		t.Fatal("Hide should drop the match list")
	}
}
