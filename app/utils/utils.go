package utils

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TruncateText shortens the given text to fit within maxWidth,
// appending an ellipsis when something was cut off.
func TruncateText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if ansi.StringWidth(text) <= maxWidth {
		return text
	}

	if maxWidth > 1 {
		return ansi.Truncate(text, maxWidth-1, "") + "…"
	}

	return ansi.Truncate(text, maxWidth, "")
}

// Clamp limits v to the range [low, high].
func Clamp(v, low, high int) int {
	if high < low {
		return low
	}
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// RelativePath strips the root prefix from path for display purposes.
func RelativePath(path string, root string) string {
	if path == root {
		return "."
	}

	if rel, ok := strings.CutPrefix(path, root+"/"); ok {
		return rel
	}

	return path
}
