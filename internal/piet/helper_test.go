package piet_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pietvm/internal/piet"
)

// mustGrid builds a grid from rows of whitespace-separated color codes
// ("nr", "ww", "kk", ...).
func mustGrid(t *testing.T, rows ...string) *piet.Grid {
	t.Helper()

	var cells []piet.Color
	width := 0
	for _, row := range rows {
		fields := strings.Fields(row)
		if width == 0 {
			width = len(fields)
		}
		if len(fields) != width {
			t.Fatalf("ragged row %q: expected %d codes", row, width)
		}
		for _, code := range fields {
			c, ok := piet.ParseColor(code)
			if !ok {
				t.Fatalf("bad color code %q", code)
			}
			cells = append(cells, c)
		}
	}

	g, err := piet.NewGrid(width, len(rows), cells)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	return g
}
