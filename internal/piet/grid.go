package piet

import "fmt"

// Grid is the normalized codel grid: a rectangular array of palette
// colors, immutable after construction. Cells are stored in row-major
// order: index = y*W + x.
type Grid struct {
	w     int
	h     int
	cells []Color
}

// NewGrid builds a grid from row-major cells. The grid must be
// non-empty and cells must have exactly w*h entries.
func NewGrid(w, h int, cells []Color) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("piet: grid dimensions %dx%d are not positive", w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("piet: grid %dx%d needs %d cells, got %d", w, h, w*h, len(cells))
	}
	copied := make([]Color, len(cells))
	copy(copied, cells)
	return &Grid{w: w, h: h, cells: copied}, nil
}

// W returns the grid width in codels.
func (g *Grid) W() int { return g.w }

// H returns the grid height in codels.
func (g *Grid) H() int { return g.h }

// InBounds reports whether the coordinate lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// At returns the color at the given coordinate.
// Out-of-bounds coordinates read as black, which the navigator treats
// the same as the grid edge.
func (g *Grid) At(c Coord) Color {
	if !g.InBounds(c) {
		return Black
	}
	return g.cells[c.Y*g.w+c.X]
}

// index converts a coordinate to a flat cell index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}
