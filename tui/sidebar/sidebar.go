// Package sidebar tracks the layout state of the file tree column:
// its width and whether a resize drag is in progress. It is
// independent of the tree itself and composes with the rest of the
// ui purely through the shared render pass.
package sidebar

const (
	MinWidth     = 20
	MaxWidth     = 80
	DefaultWidth = 32
)

type Layout struct {
	width    int
	dragging bool
}

// New returns a Layout with the given starting width, clamped into
// the allowed range.
func New(width int) *Layout {
	return &Layout{width: clamp(width)}
}

func (l *Layout) Width() int {
	return l.width
}

func (l *Layout) Dragging() bool {
	return l.dragging
}

// BeginDrag starts a resize drag on the sidebar handle.
func (l *Layout) BeginDrag() {
	l.dragging = true
}

// UpdateDrag moves the sidebar edge to the pointer position, clamped
// into [MinWidth, MaxWidth]. A no-op unless a drag is in progress, so
// stray pointer moves stay cheap.
func (l *Layout) UpdateDrag(pointerX int) {
	if !l.dragging {
		return
	}

	l.width = clamp(pointerX)
}

// EndDrag finishes a resize drag. Safe to call without one.
func (l *Layout) EndDrag() {
	l.dragging = false
}

func clamp(width int) int {
	if width < MinWidth {
		return MinWidth
	}
	if width > MaxWidth {
		return MaxWidth
	}
	return width
}
