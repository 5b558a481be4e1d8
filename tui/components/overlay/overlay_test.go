package overlay_test

import (
	"testing"

	"sable-editor/tui/components/overlay"
)

func TestPlaceSplicesAtPosition(t *testing.T) {
	bg := "..........\n..........\n..........\n.........."

	got := overlay.Place(3, 1, "AB\nCD", bg)
	want := "..........\n...AB.....\n...CD.....\n.........."
	if got != want {
		t.Fatalf("Expected\n%q\ngot\n%q", want, got)
	}
}

func TestPlaceClampsIntoBackground(t *testing.T) {
	bg := "....\n....\n...."

	// anchor far outside the background on both axes
	got := overlay.Place(99, 99, "XY", bg)
	want := "....\n....\n..XY"
	if got != want {
		t.Fatalf("Expected\n%q\ngot\n%q", want, got)
	}

	got = overlay.Place(-5, -5, "XY", bg)
	want = "XY..\n....\n...."
	if got != want {
		t.Fatalf("Expected\n%q\ngot\n%q", want, got)
	}
}

func TestPlaceCoveringForegroundWins(t *testing.T) {
	fg := "AAAA\nBBBB"
	if got := overlay.Place(0, 0, fg, "..\n.."); got != fg {
		t.Fatalf("Expected the foreground to replace a smaller background, got %q", got)
	}
}

func TestPlacePadsShortBackgroundLines(t *testing.T) {
	// the middle bg line is shorter than the anchor column
	bg := "......\n..\n......"

	got := overlay.Place(4, 1, "Z", bg)
	want := "......\n..  Z\n......"
	if got != want {
		t.Fatalf("Expected\n%q\ngot\n%q", want, got)
	}
}
