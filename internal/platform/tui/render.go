package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pietvm/internal/piet"
)

// codelStyles maps each palette color to a background style.
// Codels render as two-column swatches so they come out square-ish in
// a terminal.
var codelStyles = func() map[piet.Color]lipgloss.Style {
	styles := make(map[piet.Color]lipgloss.Style, 20)
	for _, c := range piet.AllColors() {
		styles[c] = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
	}
	return styles
}()

// cursorStyle marks the interpreter's current codel.
var cursorStyle = lipgloss.NewStyle().Bold(true)

// RenderGrid draws the codel grid as colored terminal cells.
// maxW and maxH bound the viewport in codels (0 means unbounded);
// larger grids scroll to keep the cursor visible.
func RenderGrid(g *piet.Grid, cursor piet.Coord, showCursor bool, maxW, maxH int) string {
	x0, y0 := 0, 0
	w, h := g.W(), g.H()

	if maxW > 0 && w > maxW {
		x0 = clamp(cursor.X-maxW/2, 0, w-maxW)
		w = maxW
	}
	if maxH > 0 && h > maxH {
		y0 = clamp(cursor.Y-maxH/2, 0, h-maxH)
		h = maxH
	}

	var sb strings.Builder
	for y := y0; y < y0+h; y++ {
		if y > y0 {
			sb.WriteByte('\n')
		}
		// Group consecutive codels with the same color to minimize
		// ANSI escape sequences.
		x := x0
		for x < x0+w {
			c := piet.C(x, y)
			color := g.At(c)

			if showCursor && c == cursor {
				sb.WriteString(cursorStyle.Inherit(codelStyles[color]).Render("[]"))
				x++
				continue
			}

			runLen := 0
			for x < x0+w && g.At(piet.C(x, y)) == color {
				if showCursor && piet.C(x, y) == cursor {
					break
				}
				runLen++
				x++
			}
			sb.WriteString(codelStyles[color].Render(strings.Repeat("  ", runLen)))
		}
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
