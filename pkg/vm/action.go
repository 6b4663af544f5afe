package vm

// actionKind distinguishes why a frame's inner loop returned control to
// the outer loop, grounded on the reference interpreter's FrameAction
// enum (Return vs Call).
type actionKind uint8

const (
	actionKindReturn actionKind = iota
	actionKindCall
)

// frameAction carries the operands the outer loop needs to perform the
// transition execFrame stopped short of making itself. Only the fields
// matching kind are meaningful.
type frameAction struct {
	kind actionKind

	// actionKindReturn: count is how many values the Return instruction
	// named; they are always the top `count` values of the operand
	// stack at the moment of return.
	count int

	// actionKindCall: base/results are the Call instruction's operands,
	// unmodified (base is still relative to the caller frame's own
	// base).
	base    int
	results int
}
