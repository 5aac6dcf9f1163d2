package piet

import (
	"math/big"
	"unicode/utf8"
)

// Machine executes decoded instructions against the operand stack, the
// pointer state and the I/O collaborators.
//
// Every instruction either succeeds or degrades to a no-op: when a
// precondition fails (stack underflow, division by zero, bad roll
// arguments, invalid character code, failed read) the stack is left
// exactly as it was and execution continues. Preconditions are checked
// before anything is popped, so no restore step is ever needed.
type Machine struct {
	stack Stack
	in    Input
	out   Output
}

// NewMachine builds a machine over the given I/O collaborators.
func NewMachine(in Input, out Output) *Machine {
	return &Machine{in: in, out: out}
}

// Stack exposes the operand stack for inspection (snapshots, depth).
func (m *Machine) Stack() *Stack {
	return &m.stack
}

// Execute runs one instruction. blockSize is the size of the block the
// pointer is leaving, the operand of push. ptr is mutated by the
// pointer and switch instructions. Returns false when the instruction
// degraded to a no-op.
func (m *Machine) Execute(op Op, blockSize int, ptr *Pointer) bool {
	switch op {
	case OpNone:
		return true
	case OpPush:
		m.stack.push(big.NewInt(int64(blockSize)))
		return true
	case OpPop:
		if m.stack.Len() < 1 {
			return false
		}
		m.stack.pop()
		return true
	case OpAdd, OpSubtract, OpMultiply:
		return m.arith(op)
	case OpDivide, OpMod:
		return m.divmod(op)
	case OpNot:
		if m.stack.Len() < 1 {
			return false
		}
		a := m.stack.pop()
		if a.Sign() == 0 {
			m.stack.push(big.NewInt(1))
		} else {
			m.stack.push(big.NewInt(0))
		}
		return true
	case OpGreater:
		if m.stack.Len() < 2 {
			return false
		}
		b := m.stack.pop()
		a := m.stack.pop()
		if a.Cmp(b) > 0 {
			m.stack.push(big.NewInt(1))
		} else {
			m.stack.push(big.NewInt(0))
		}
		return true
	case OpPointer:
		if m.stack.Len() < 1 {
			return false
		}
		a := m.stack.pop()
		ptr.Rotate(bigMod(a, 4))
		return true
	case OpSwitch:
		if m.stack.Len() < 1 {
			return false
		}
		a := m.stack.pop()
		if a.Bit(0) == 1 {
			ptr.Toggle(1)
		}
		return true
	case OpDuplicate:
		if m.stack.Len() < 1 {
			return false
		}
		m.stack.push(new(big.Int).Set(m.stack.peek(0)))
		return true
	case OpRoll:
		return m.roll()
	case OpInNumber:
		n, err := m.in.ReadNumber()
		if err != nil {
			return false
		}
		m.stack.push(n)
		return true
	case OpInChar:
		r, err := m.in.ReadChar()
		if err != nil {
			return false
		}
		m.stack.push(big.NewInt(int64(r)))
		return true
	case OpOutNumber:
		if m.stack.Len() < 1 {
			return false
		}
		//nolint:errcheck // output is assumed non-failing
		m.out.WriteNumber(m.stack.pop())
		return true
	case OpOutChar:
		// An unconvertible value is not consumed.
		if m.stack.Len() < 1 {
			return false
		}
		r, ok := toRune(m.stack.peek(0))
		if !ok {
			return false
		}
		m.stack.pop()
		//nolint:errcheck // output is assumed non-failing
		m.out.WriteChar(r)
		return true
	default:
		return false
	}
}

// arith handles add, subtract and multiply.
func (m *Machine) arith(op Op) bool {
	if m.stack.Len() < 2 {
		return false
	}
	b := m.stack.pop()
	a := m.stack.pop()
	r := new(big.Int)
	switch op {
	case OpAdd:
		r.Add(a, b)
	case OpSubtract:
		r.Sub(a, b)
	case OpMultiply:
		r.Mul(a, b)
	}
	m.stack.push(r)
	return true
}

// divmod handles divide and mod with the floor-division convention:
// the quotient rounds toward negative infinity and the remainder takes
// the sign of the divisor.
func (m *Machine) divmod(op Op) bool {
	if m.stack.Len() < 2 {
		return false
	}
	if m.stack.peek(0).Sign() == 0 {
		return false
	}
	b := m.stack.pop()
	a := m.stack.pop()
	q, r := floorDivMod(a, b)
	if op == OpDivide {
		m.stack.push(q)
	} else {
		m.stack.push(r)
	}
	return true
}

// roll validates both control values in place before touching the
// stack, so a bad depth leaves the two values on top untouched.
func (m *Machine) roll() bool {
	if m.stack.Len() < 2 {
		return false
	}
	depthVal := m.stack.peek(1)
	if depthVal.Sign() <= 0 || !depthVal.IsInt64() {
		return false
	}
	depth := int(depthVal.Int64())
	if depth > m.stack.Len()-2 {
		return false
	}
	rolls := bigMod(m.stack.peek(0), depth)
	m.stack.pop()
	m.stack.pop()
	m.stack.rotate(depth, rolls)
	return true
}

// floorDivMod computes the floor quotient and remainder of a/b.
// b must be non-zero.
func floorDivMod(a, b *big.Int) (q, r *big.Int) {
	q = new(big.Int)
	r = new(big.Int)
	q.QuoRem(a, b, r)
	// Truncated division rounds toward zero; step down when the
	// remainder disagrees with the divisor's sign.
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}

// bigMod reduces v modulo m into 0..m-1.
func bigMod(v *big.Int, m int) int {
	r := new(big.Int).Mod(v, big.NewInt(int64(m)))
	return int(r.Int64())
}

// toRune converts a stack value to a valid Unicode code point.
func toRune(v *big.Int) (rune, bool) {
	if v.Sign() < 0 || !v.IsInt64() {
		return 0, false
	}
	n := v.Int64()
	if n > utf8.MaxRune {
		return 0, false
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}
