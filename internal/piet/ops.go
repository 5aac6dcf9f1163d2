package piet

// Op is a Piet instruction, decoded from the hue and lightness change
// between two adjacent chromatic blocks.
type Op uint8

const (
	OpNone Op = iota
	OpPush
	OpPop
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpMod
	OpNot
	OpGreater
	OpPointer
	OpSwitch
	OpDuplicate
	OpRoll
	OpInNumber
	OpInChar
	OpOutNumber
	OpOutChar
)

// String returns the instruction's conventional name.
func (op Op) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpMod:
		return "mod"
	case OpNot:
		return "not"
	case OpGreater:
		return "greater"
	case OpPointer:
		return "pointer"
	case OpSwitch:
		return "switch"
	case OpDuplicate:
		return "duplicate"
	case OpRoll:
		return "roll"
	case OpInNumber:
		return "in(number)"
	case OpInChar:
		return "in(char)"
	case OpOutNumber:
		return "out(number)"
	case OpOutChar:
		return "out(char)"
	default:
		return "unknown"
	}
}

// opTable maps [hueDelta][lightnessDelta] to an instruction.
//
//	Lightness    +0         +1          +2
//	Hue +0       none       push        pop
//	Hue +1       add        subtract    multiply
//	Hue +2       divide     mod         not
//	Hue +3       greater    pointer     switch
//	Hue +4       duplicate  roll        in(number)
//	Hue +5       in(char)   out(number) out(char)
var opTable = [6][3]Op{
	{OpNone, OpPush, OpPop},
	{OpAdd, OpSubtract, OpMultiply},
	{OpDivide, OpMod, OpNot},
	{OpGreater, OpPointer, OpSwitch},
	{OpDuplicate, OpRoll, OpInNumber},
	{OpInChar, OpOutNumber, OpOutChar},
}

// DecodeOp returns the instruction for a hue delta in 0..5 and a
// lightness delta in 0..2.
func DecodeOp(hueDelta, lightnessDelta int) Op {
	return opTable[hueDelta][lightnessDelta]
}

// Transition decodes the instruction executed when the pointer moves
// from one color to another. Transitions involving white or black
// execute no instruction.
func Transition(from, to Color) Op {
	hd, ok := from.HueDelta(to)
	if !ok {
		return OpNone
	}
	ld, ok := from.LightnessDelta(to)
	if !ok {
		return OpNone
	}
	return DecodeOp(hd, ld)
}
