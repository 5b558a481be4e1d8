package menu_test

import (
	"testing"

	"sable-editor/app/fonts"
	"sable-editor/tui/menu"
)

func table(t *testing.T, data string) *fonts.Table {
	t.Helper()
	tbl, err := fonts.Parse([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestAnchorXNoneIsZero(t *testing.T) {
	tbl := table(t, `{}`)

	if x := menu.AnchorX(menu.None, menu.Order, tbl, 1); x != 0 {
		t.Fatalf("Expected 0 for None, got %d", x)
	}
}

func TestAnchorXFirstButton(t *testing.T) {
	tbl := table(t, `{}`)

	// nothing before File; the border correction clamps to 0
	if x := menu.AnchorX(menu.File, menu.Order, tbl, 1); x != 0 {
		t.Fatalf("Expected 0 for the first button, got %d", x)
	}
}

func TestAnchorXSumsPrecedingButtons(t *testing.T) {
	tbl := table(t, `{}`)
	pad := 1

	// "File" is 4 cells wide, plus padding on both sides, minus the
	// one cell border correction
	want := 4 + 2*pad - 1
	if x := menu.AnchorX(menu.Edit, menu.Order, tbl, pad); x != want {
		t.Fatalf("Expected anchor %d for Edit, got %d", want, x)
	}
}

func TestAnchorXMonotonic(t *testing.T) {
	tbl := table(t, `{"F": 2, "…": 1}`)

	prev := -1
	for _, id := range menu.Order {
		x := menu.AnchorX(id, menu.Order, tbl, 1)
		if x < prev {
			t.Fatalf(
				"Expected anchors to be non-decreasing, got %d after %d at %v",
				x, prev, id,
			)
		}
		prev = x
	}
}

func TestAnchorXUsesTableWidths(t *testing.T) {
	narrow := table(t, `{}`)
	wide := table(t, `{"F": 3, "i": 3, "l": 3, "e": 3}`)

	if menu.AnchorX(menu.Edit, menu.Order, wide, 1) <=
		menu.AnchorX(menu.Edit, menu.Order, narrow, 1) {
		t.Fatal("Expected wider File glyphs to push the Edit anchor right")
	}
}

func TestHitTestRoundTrips(t *testing.T) {
	tbl := table(t, `{}`)
	pad := 1

	left := 0
	for _, id := range menu.Order {
		w := menu.ButtonWidth(id, tbl, pad)

		if got := menu.HitTest(left, menu.Order, tbl, pad); got != id {
			t.Fatalf("Expected %v at x=%d, got %v", id, left, got)
		}
		if got := menu.HitTest(left+w-1, menu.Order, tbl, pad); got != id {
			t.Fatalf("Expected %v at x=%d, got %v", id, left+w-1, got)
		}

		left += w
	}

	if got := menu.HitTest(left, menu.Order, tbl, pad); got != menu.None {
		t.Fatalf("Expected None past the last button, got %v", got)
	}
}

func TestPanelWidthCoversLabels(t *testing.T) {
	tbl := table(t, `{}`)

	for _, id := range menu.Order {
		w := menu.PanelWidth(id, tbl)
		for _, item := range menu.Items(id) {
			if tbl.LabelWidth(item.Label) > w {
				t.Fatalf("Menu %v panel narrower than item %q", id, item.Label)
			}
		}
	}
}
