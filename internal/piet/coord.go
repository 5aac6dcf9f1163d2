package piet

import "fmt"

// Coord is a codel position on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the coordinate one codel further in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Dir is the direction pointer: one of the four compass directions.
// The zero value is DirRight, the starting direction of every program.
type Dir uint8

const (
	DirRight Dir = iota
	DirDown
	DirLeft
	DirUp
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one codel in this
// direction. Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Rotate returns the direction rotated clockwise by k steps.
// Negative k rotates counter-clockwise.
func (d Dir) Rotate(k int) Dir {
	return Dir((int(d)%4 + k%4 + 8) % 4)
}

// Chooser is the codel chooser: a binary selector disambiguating which
// edge codel to exit a block from. The zero value is ChooseLeft, the
// starting chooser of every program.
type Chooser uint8

const (
	ChooseLeft Chooser = iota
	ChooseRight
)

// String returns the string representation of a chooser.
func (c Chooser) String() string {
	switch c {
	case ChooseLeft:
		return "left"
	case ChooseRight:
		return "right"
	default:
		return "unknown"
	}
}

// Toggle returns the chooser flipped k times: the net effect is a flip
// iff k is odd. Negative k behaves like its absolute value.
func (c Chooser) Toggle(k int) Chooser {
	if k%2 != 0 {
		return c ^ 1
	}
	return c
}
