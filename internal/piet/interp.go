package piet

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Outcome is the interpreter's terminal state.
type Outcome uint8

const (
	// OutcomeRunning means the program has not halted yet.
	OutcomeRunning Outcome = iota
	// OutcomeNoMove means 8 consecutive blocked movement attempts
	// left no legal move: the normal way a Piet program ends.
	OutcomeNoMove
	// OutcomeWhiteLoop means the pointer deadlocked sliding through
	// an enclosed white region.
	OutcomeWhiteLoop
	// OutcomeCancelled means the run was stopped externally, either
	// by context cancellation or by the step limit.
	OutcomeCancelled
)

// String describes the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeNoMove:
		return "halted: no legal move"
	case OutcomeWhiteLoop:
		return "halted: deadlocked in white region"
	case OutcomeCancelled:
		return "halted: cancelled"
	default:
		return "unknown"
	}
}

// Options configures an interpreter run. The zero value runs with
// empty input, discarded output, no trace and no step limit.
type Options struct {
	// Input supplies in(number) and in(char); nil reads always fail,
	// which the machine treats as no-ops.
	Input Input
	// Output receives out(number) and out(char); nil discards.
	Output Output
	// Trace, when set, is called once per step.
	Trace TraceFunc
	// MaxSteps bounds the run; 0 means unlimited. Exceeding the
	// bound halts with OutcomeCancelled.
	MaxSteps int
}

// Interpreter drives a Piet program to completion: it owns the single
// execution state and composes the navigator, the instruction decoder
// and the stack machine. Execution is strictly single-threaded; one
// step completes fully before the next begins.
type Interpreter struct {
	grid    *Grid
	blocks  *Blocks
	machine *Machine
	trace   TraceFunc

	pos      Coord
	ptr      Pointer
	attempts int
	stepNo   int
	maxSteps int
	outcome  Outcome
}

// New validates the program and prepares an interpreter positioned at
// the top-left codel with direction right and chooser left. A grid
// whose top-left codel is black cannot be entered and is rejected.
func New(g *Grid, opts Options) (*Interpreter, error) {
	if g == nil {
		return nil, fmt.Errorf("piet: nil grid")
	}
	start := C(0, 0)
	if g.At(start) == Black {
		return nil, fmt.Errorf("piet: program starts on a black codel")
	}

	in := opts.Input
	if in == nil {
		in = NewReaderInput(strings.NewReader(""))
	}
	out := opts.Output
	if out == nil {
		out = NewWriterOutput(io.Discard)
	}

	return &Interpreter{
		grid:     g,
		blocks:   NewBlocks(g),
		machine:  NewMachine(in, out),
		trace:    opts.Trace,
		pos:      start,
		maxSteps: opts.MaxSteps,
		outcome:  OutcomeRunning,
	}, nil
}

// Step executes one step: a navigation decision, possibly an
// instruction, possibly I/O. Returns OutcomeRunning while the program
// continues. Calling Step after the program halted returns the stored
// outcome unchanged.
func (it *Interpreter) Step() Outcome {
	if it.outcome != OutcomeRunning {
		return it.outcome
	}
	if it.maxSteps > 0 && it.stepNo >= it.maxSteps {
		it.outcome = OutcomeCancelled
		return it.outcome
	}

	if it.grid.At(it.pos) == White {
		it.outcome = it.slide()
	} else {
		it.outcome = it.move()
	}
	it.stepNo++
	return it.outcome
}

// Run drives the program to completion. The context is checked once
// per step; cancellation halts with OutcomeCancelled.
func (it *Interpreter) Run(ctx context.Context) Outcome {
	for {
		select {
		case <-ctx.Done():
			it.outcome = OutcomeCancelled
			return it.outcome
		default:
		}
		if out := it.Step(); out != OutcomeRunning {
			return out
		}
	}
}

// Pos returns the current codel position.
func (it *Interpreter) Pos() Coord { return it.pos }

// Pointer returns the current direction pointer and codel chooser.
func (it *Interpreter) Pointer() Pointer { return it.ptr }

// Steps returns the number of completed steps.
func (it *Interpreter) Steps() int { return it.stepNo }

// Outcome returns the terminal state, or OutcomeRunning.
func (it *Interpreter) Outcome() Outcome { return it.outcome }

// Grid returns the program grid.
func (it *Interpreter) Grid() *Grid { return it.grid }

// Blocks returns the program's block partition.
func (it *Interpreter) Blocks() *Blocks { return it.blocks }

// Machine returns the stack machine, for stack inspection.
func (it *Interpreter) Machine() *Machine { return it.machine }

// emit forwards a step event to the trace sink, if any.
func (it *Interpreter) emit(ev StepEvent) {
	if it.trace != nil {
		it.trace(ev)
	}
}
