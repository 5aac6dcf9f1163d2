package piet

// Block is a maximal 4-connected region of same-colored codels.
// Its size is the operand of the push instruction executed when the
// pointer leaves the block.
type Block struct {
	Color Color
	Cells []Coord
	// exit holds, for each (direction, chooser) pair, the codel the
	// pointer leaves the block from: the cell furthest along the
	// direction, tie-broken toward the chooser's side.
	exit [4][2]Coord
}

// Size returns the number of codels in the block.
func (b *Block) Size() int {
	return len(b.Cells)
}

// Exit returns the codel the pointer exits from for the given pointer
// state.
func (b *Block) Exit(p Pointer) Coord {
	return b.exit[p.Dir][p.Chooser]
}

// Blocks partitions a grid into color blocks. Every cell belongs to
// exactly one block; white and black cells form ordinary blocks too.
// Lookup is O(1) after the O(area) labeling pass.
type Blocks struct {
	grid   *Grid
	labels []int
	blocks []*Block
}

// NewBlocks labels the grid's connected components with an explicit
// worklist (no recursion, safe for large grids).
func NewBlocks(g *Grid) *Blocks {
	labels := make([]int, g.w*g.h)
	for i := range labels {
		labels[i] = -1
	}

	b := &Blocks{grid: g, labels: labels}

	var queue []Coord
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			seed := C(x, y)
			if labels[g.index(seed)] >= 0 {
				continue
			}

			id := len(b.blocks)
			color := g.At(seed)
			block := &Block{Color: color}

			queue = queue[:0]
			queue = append(queue, seed)
			labels[g.index(seed)] = id

			for len(queue) > 0 {
				cell := queue[0]
				queue = queue[1:]
				block.Cells = append(block.Cells, cell)

				for d := DirRight; d <= DirUp; d++ {
					n := cell.Step(d)
					if !g.InBounds(n) || g.At(n) != color {
						continue
					}
					if labels[g.index(n)] < 0 {
						labels[g.index(n)] = id
						queue = append(queue, n)
					}
				}
			}

			block.computeExits()
			b.blocks = append(b.blocks, block)
		}
	}

	return b
}

// At returns the block containing the given coordinate.
// The coordinate must be in bounds.
func (b *Blocks) At(c Coord) *Block {
	return b.blocks[b.labels[b.grid.index(c)]]
}

// Len returns the number of blocks in the partition.
func (b *Blocks) Len() int {
	return len(b.blocks)
}

// All returns every block in labeling order.
func (b *Blocks) All() []*Block {
	return b.blocks
}

// computeExits fills the per-(direction, chooser) exit codel table.
func (bl *Block) computeExits() {
	for d := DirRight; d <= DirUp; d++ {
		for _, cc := range []Chooser{ChooseLeft, ChooseRight} {
			best := bl.Cells[0]
			for _, c := range bl.Cells[1:] {
				if exitBetter(c, best, d, cc) {
					best = c
				}
			}
			bl.exit[d][cc] = best
		}
	}
}

// along scores a coordinate along a direction's axis: larger is
// further in that direction.
func along(c Coord, d Dir) int {
	switch d {
	case DirRight:
		return c.X
	case DirDown:
		return c.Y
	case DirLeft:
		return -c.X
	default: // DirUp
		return -c.Y
	}
}

// exitBetter reports whether a beats b as the exit codel for (d, cc):
// furthest along d, ties broken toward the chooser's side (left is 90
// degrees counter-clockwise from d, right is clockwise).
func exitBetter(a, b Coord, d Dir, cc Chooser) bool {
	pa, pb := along(a, d), along(b, d)
	if pa != pb {
		return pa > pb
	}
	side := d.Rotate(1)
	if cc == ChooseLeft {
		side = d.Rotate(-1)
	}
	return along(a, side) > along(b, side)
}
