package tabs

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func barWithTabs(t *testing.T, paths ...string) *Bar {
	t.Helper()

	contents := make(map[string]string, len(paths))
	for _, p := range paths {
		contents[p] = "x"
	}

	r := fakeRegistry(contents)
	for _, p := range paths {
		if err := r.OpenOrFocus(p); err != nil {
			t.Fatal(err)
		}
	}

	return &Bar{Registry: r}
}

func TestClickActivatesTabUnderPointer(t *testing.T) {
	b := barWithTabs(t, "/a.txt", "/b.txt")

	// first cell is " a.txt ✕ "
	action, index := b.ClickAt(1)
	if action != ClickActivate || index != 0 {
		t.Fatalf("Expected activate tab 0, got action=%d index=%d", action, index)
	}

	firstWidth := ansi.StringWidth(b.cell(b.Registry.Tabs()[0]))
	action, index = b.ClickAt(firstWidth + 1)
	if action != ClickActivate || index != 1 {
		t.Fatalf("Expected activate tab 1, got action=%d index=%d", action, index)
	}
}

func TestClickOnCloseGlyph(t *testing.T) {
	b := barWithTabs(t, "/a.txt", "/b.txt")

	firstWidth := ansi.StringWidth(b.cell(b.Registry.Tabs()[0]))

	action, index := b.ClickAt(firstWidth - 2)
	if action != ClickClose || index != 0 {
		t.Fatalf("Expected close tab 0, got action=%d index=%d", action, index)
	}
}

func TestClickPastTabsDoesNothing(t *testing.T) {
	b := barWithTabs(t, "/a.txt")

	width := ansi.StringWidth(b.cell(b.Registry.Tabs()[0]))
	if action, _ := b.ClickAt(width + 10); action != ClickNone {
		t.Fatalf("Expected no action past the tabs, got %d", action)
	}
}

func TestRenderShowsEveryTab(t *testing.T) {
	b := barWithTabs(t, "/a.txt", "/other/b.go")
	b.Width = 60

	row := ansi.Strip(b.Render())

	for _, name := range []string{"a.txt", "b.go"} {
		if !contains(row, name) {
			t.Fatalf("Expected row to contain %q: %q", name, row)
		}
	}

	if ansi.StringWidth(row) != 60 {
		t.Fatalf("Expected the row padded to 60 cells, got %d", ansi.StringWidth(row))
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
