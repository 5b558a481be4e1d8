// Package fonts holds the glyph metrics table used for menu geometry.
// The table maps a single glyph to its advance width at the configured
// font; it is layout math only and plays no part in text rendering.
package fonts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"sable-editor/app/debug"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"github.com/tailscale/hujson"
)

//go:embed metrics.json
var defaultMetrics []byte

// Table is a glyph to advance width lookup.
type Table struct {
	widths map[string]int
}

// Load parses the metrics file at path. An empty path loads the
// embedded default table. A missing or malformed file is returned as
// an error; the caller treats that as a fatal startup condition.
func Load(path string) (*Table, error) {
	data := defaultMetrics

	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("glyph metrics: %w", err)
		}
	}

	return Parse(data)
}

// Parse builds a Table from hujson metrics data.
func Parse(data []byte) (*Table, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("glyph metrics: %w", err)
	}

	var raw map[string]int
	if err := json.Unmarshal(std, &raw); err != nil {
		return nil, fmt.Errorf("glyph metrics: %w", err)
	}

	widths := make(map[string]int, len(raw))
	for glyph, width := range raw {
		if uniseg.GraphemeClusterCount(glyph) != 1 {
			// Not a single glyph, skip the entry rather than fail
			// the whole table
			debug.LogWarn("glyph metrics: skipping entry", glyph)
			continue
		}
		if width < 0 {
			debug.LogWarn("glyph metrics: negative width for", glyph)
			continue
		}
		widths[glyph] = width
	}

	return &Table{widths: widths}, nil
}

// Width returns the advance width of a single glyph. Glyphs missing
// from the table degrade to the measured rune width, never an error.
func (t *Table) Width(glyph string) int {
	if w, ok := t.widths[glyph]; ok {
		return w
	}

	return runewidth.StringWidth(glyph)
}

// LabelWidth sums the advance widths of every grapheme cluster in
// label.
func (t *Table) LabelWidth(label string) int {
	width := 0

	g := uniseg.NewGraphemes(label)
	for g.Next() {
		width += t.Width(g.Str())
	}

	return width
}

// Len returns the number of explicit entries in the table.
func (t *Table) Len() int {
	return len(t.widths)
}
