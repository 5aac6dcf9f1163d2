package piet

import "fmt"

// Pointer bundles the direction pointer and the codel chooser.
// The zero value is the program start state: direction right,
// chooser left. It mutates only through Rotate and Toggle.
type Pointer struct {
	Dir     Dir
	Chooser Chooser
}

// String renders the pointer as "dir|chooser".
func (p Pointer) String() string {
	return fmt.Sprintf("%s|%s", p.Dir, p.Chooser)
}

// Rotate turns the direction pointer clockwise by k steps.
// Negative k turns counter-clockwise.
func (p *Pointer) Rotate(k int) {
	p.Dir = p.Dir.Rotate(k)
}

// Toggle flips the codel chooser k times; the net effect is a flip
// iff k is odd.
func (p *Pointer) Toggle(k int) {
	p.Chooser = p.Chooser.Toggle(k)
}
