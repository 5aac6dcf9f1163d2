package piet

import (
	"math/big"
	"strings"
)

// Stack is the machine's operand stack: arbitrary-precision signed
// integers, top at the end of the slice. It is owned exclusively by the
// Machine; other components observe it only through Snapshot.
type Stack struct {
	values []*big.Int
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	return len(s.values)
}

// push appends a value to the top of the stack.
func (s *Stack) push(v *big.Int) {
	s.values = append(s.values, v)
}

// pop removes and returns the top value. The caller must have checked
// the depth.
func (s *Stack) pop() *big.Int {
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v
}

// peek returns the value i positions below the top without removing it.
// peek(0) is the top. The caller must have checked the depth.
func (s *Stack) peek(i int) *big.Int {
	return s.values[len(s.values)-1-i]
}

// rotate cyclically rotates the top depth entries by rolls positions.
// Positive rolls bury the top; negative rolls dig. The caller must have
// validated 0 < depth <= Len().
func (s *Stack) rotate(depth, rolls int) {
	section := s.values[len(s.values)-depth:]
	k := ((rolls % depth) + depth) % depth
	if k == 0 {
		return
	}
	rotated := make([]*big.Int, 0, depth)
	rotated = append(rotated, section[depth-k:]...)
	rotated = append(rotated, section[:depth-k]...)
	copy(section, rotated)
}

// Snapshot returns a copy of the stack values, bottom first. The
// returned values are independent of the live stack.
func (s *Stack) Snapshot() []*big.Int {
	out := make([]*big.Int, len(s.values))
	for i, v := range s.values {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

// String renders the stack bottom-to-top for trace output.
func (s *Stack) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
