package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/pietvm/internal/piet"
)

func init() {
	// Force deterministic output regardless of the test terminal.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testGrid(t *testing.T, w, h int) *piet.Grid {
	t.Helper()
	cells := make([]piet.Color, w*h)
	for i := range cells {
		cells[i] = piet.Color(2 + i%18)
	}
	g, err := piet.NewGrid(w, h, cells)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	return g
}

func TestRenderGridDimensions(t *testing.T) {
	g := testGrid(t, 4, 3)
	out := RenderGrid(g, piet.C(0, 0), false, 0, 0)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if lipgloss.Width(line) != 8 {
			t.Errorf("line %d: expected width 8 (two columns per codel), got %d", i, lipgloss.Width(line))
		}
	}
}

func TestRenderGridCursorMarker(t *testing.T) {
	g := testGrid(t, 3, 1)

	with := RenderGrid(g, piet.C(1, 0), true, 0, 0)
	if !strings.Contains(with, "[]") {
		t.Error("expected cursor marker in output")
	}

	without := RenderGrid(g, piet.C(1, 0), false, 0, 0)
	if strings.Contains(without, "[]") {
		t.Error("expected no cursor marker when hidden")
	}
}

func TestRenderGridViewportClamping(t *testing.T) {
	g := testGrid(t, 20, 10)

	out := RenderGrid(g, piet.C(19, 9), true, 6, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 viewport lines, got %d", len(lines))
	}
	for i, line := range lines {
		if lipgloss.Width(line) != 12 {
			t.Errorf("line %d: expected viewport width 12, got %d", i, lipgloss.Width(line))
		}
	}
	// The cursor sits in the bottom-right corner, which the viewport
	// must keep visible.
	if !strings.Contains(out, "[]") {
		t.Error("expected cursor to stay inside the scrolled viewport")
	}
}
