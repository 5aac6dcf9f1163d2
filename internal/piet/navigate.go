package piet

// maxEscapeAttempts is the number of consecutive blocked movement
// attempts after which the program halts. Alternating chooser toggles
// and clockwise rotations, 8 attempts try both choosers at all four
// directions exactly once.
const maxEscapeAttempts = 8

// move computes and commits the next program position from a chromatic
// (or black-start-adjacent) block, running the blocked-retry state
// machine until movement succeeds or the attempt counter saturates.
// Returns OutcomeRunning on success.
func (it *Interpreter) move() Outcome {
	for {
		block := it.blocks.At(it.pos)
		exit := block.Exit(it.ptr)
		candidate := exit.Step(it.ptr.Dir)

		if !it.grid.InBounds(candidate) || it.grid.At(candidate) == Black {
			it.attempts++
			if it.attempts >= maxEscapeAttempts {
				it.emit(StepEvent{
					Step:      it.stepNo,
					From:      it.pos,
					To:        it.pos,
					Pointer:   it.ptr,
					FromColor: block.Color,
					ToColor:   block.Color,
					Op:        OpNone,
					Attempts:  it.attempts,
					Stack:     it.machine.Stack().String(),
				})
				return OutcomeNoMove
			}
			// Odd attempts toggle the chooser, even attempts rotate
			// the direction pointer clockwise.
			if it.attempts%2 == 1 {
				it.ptr.Toggle(1)
			} else {
				it.ptr.Rotate(1)
			}
			continue
		}

		it.attempts = 0
		nextColor := it.grid.At(candidate)

		if nextColor == White {
			// Entering white executes nothing; sliding happens on
			// the next step.
			it.emit(StepEvent{
				Step:      it.stepNo,
				From:      it.pos,
				To:        candidate,
				Pointer:   it.ptr,
				FromColor: block.Color,
				ToColor:   White,
				Op:        OpNone,
				Applied:   true,
				BlockSize: block.Size(),
				Stack:     it.machine.Stack().String(),
			})
			it.pos = candidate
			return OutcomeRunning
		}

		op := Transition(block.Color, nextColor)
		applied := it.machine.Execute(op, block.Size(), &it.ptr)
		it.emit(StepEvent{
			Step:      it.stepNo,
			From:      it.pos,
			To:        candidate,
			Pointer:   it.ptr,
			FromColor: block.Color,
			ToColor:   nextColor,
			Op:        op,
			Applied:   applied,
			BlockSize: block.Size(),
			Stack:     it.machine.Stack().String(),
		})
		it.pos = candidate
		return OutcomeRunning
	}
}

// slideKey identifies a sliding state for deadlock detection.
type slideKey struct {
	pos     Coord
	dir     Dir
	chooser Chooser
}

// slide moves the pointer through white codels in a straight line,
// executing no instructions. A blocked candidate toggles the chooser
// and rotates the pointer together; revisiting a (position, direction,
// chooser) triple means the white region cannot be escaped.
func (it *Interpreter) slide() Outcome {
	seen := make(map[slideKey]struct{})
	pos := it.pos

	for {
		key := slideKey{pos: pos, dir: it.ptr.Dir, chooser: it.ptr.Chooser}
		if _, dup := seen[key]; dup {
			it.emit(StepEvent{
				Step:      it.stepNo,
				From:      it.pos,
				To:        pos,
				Pointer:   it.ptr,
				FromColor: White,
				ToColor:   White,
				Op:        OpNone,
				Slid:      true,
				Stack:     it.machine.Stack().String(),
			})
			return OutcomeWhiteLoop
		}
		seen[key] = struct{}{}

		candidate := pos.Step(it.ptr.Dir)
		switch {
		case !it.grid.InBounds(candidate) || it.grid.At(candidate) == Black:
			it.ptr.Toggle(1)
			it.ptr.Rotate(1)
		case it.grid.At(candidate) == White:
			pos = candidate
		default:
			// Landing on a chromatic block after white executes no
			// instruction: the hue and lightness deltas are defined
			// only between chromatic colors.
			it.emit(StepEvent{
				Step:      it.stepNo,
				From:      it.pos,
				To:        candidate,
				Pointer:   it.ptr,
				FromColor: White,
				ToColor:   it.grid.At(candidate),
				Op:        OpNone,
				Applied:   true,
				Slid:      true,
				Stack:     it.machine.Stack().String(),
			})
			it.pos = candidate
			it.attempts = 0
			return OutcomeRunning
		}
	}
}
