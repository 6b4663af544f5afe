package vm

import "crow/pkg/value"

// callFrame is one activation record. base is the absolute index into the
// VM's operand stack where this call's callable slot (slot 0) lives;
// every local slot the frame addresses is base+slot. results is how many
// values this frame's caller asked for — it was the "results" operand on
// the Call instruction that created this frame, and it governs how this
// frame's eventual Return gets truncated back into the caller (returning
// fewer values than results is an error; nothing is padded).
//
// For the outermost frame (no caller), results is outermostResults and
// Return does not truncate at all: whatever count the top-level Return
// names is exactly what comes back out of Run.
type callFrame struct {
	ip      int
	base    int
	results int
	closure *value.Closure

	// openCells are this frame's own locals that have been captured as
	// up-values by some nested closure and are still open (aliasing the
	// stack). They are closed, in order, when the frame returns.
	openCells []*value.UpValueCell
}

const outermostResults = -1

func (f *callFrame) trackOpenCell(c *value.UpValueCell) {
	f.openCells = append(f.openCells, c)
}
