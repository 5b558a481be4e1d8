package statusbar

import (
	"strings"
	"testing"

	"sable-editor/tui/message"

	"github.com/charmbracelet/x/ansi"
)

func TestUpdateIgnoresEmptyMessages(t *testing.T) {
	bar := New()
	bar.Width = 60

	bar.Update(message.StatusBarMsg{
		Content: "Tree refreshed",
		Type:    message.Success,
	})
	bar.Update(message.StatusBarMsg{})

	if !strings.Contains(ansi.Strip(bar.Render()), "Tree refreshed") {
		t.Fatal("an empty message must not clear previous feedback")
	}
}

func TestClearDropsMessage(t *testing.T) {
	bar := New()
	bar.Width = 40

	bar.Update(message.StatusBarMsg{Content: "something", Type: message.Info})
	bar.Clear()

	if strings.Contains(ansi.Strip(bar.Render()), "something") {
		t.Fatal("Clear should drop the current message")
	}
}

func TestRenderShowsActivePath(t *testing.T) {
	bar := New()
	bar.Width = 60
	bar.ActivePath = "dir/file.txt"

	if !strings.Contains(ansi.Strip(bar.Render()), "dir/file.txt") {
		t.Fatal("the active path should be rendered")
	}
}

func TestRenderFillsWidth(t *testing.T) {
	bar := New()
	bar.Width = 72
	bar.ActivePath = "a.txt"
	bar.Update(message.StatusBarMsg{Content: "Copied", Type: message.Success})

	if got := ansi.StringWidth(bar.Render()); got != 72 {
		t.Fatalf("rendered width = %d, want 72", got)
	}
}
