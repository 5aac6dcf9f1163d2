package piet

// StepEvent describes one interpreter step for the trace collaborator.
// The engine emits events; formatting and persistence are external.
type StepEvent struct {
	Step      int
	From      Coord
	To        Coord
	Pointer   Pointer
	FromColor Color
	ToColor   Color
	Op        Op
	BlockSize int
	// Applied is false when the instruction degraded to a no-op.
	Applied bool
	// Attempts is the consecutive-blocked-attempt counter after the
	// step; non-zero only while the pointer is boxed in.
	Attempts int
	// Slid reports that the step crossed white codels.
	Slid bool
	// Stack is a snapshot summary of the operand stack, bottom first.
	Stack string
}

// TraceFunc is the trace collaborator's sink, called once per step.
type TraceFunc func(ev StepEvent)
