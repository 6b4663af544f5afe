package value

// UpValueCell is the storage a closure's captured variable lives in. It
// starts out Open, aliasing a live slot on the operand stack (so reads
// and writes through the cell see the same value a GetLocal/SetLocal in
// the owning frame would), and is Closed exactly once, when the frame
// that owns the aliased slot returns — after which the cell holds its own
// independent copy and no longer depends on the stack at all.
//
// This mirrors the teacher's Upvalue{Location *Value, Closed Value}: Open
// is the "Location != nil" state, Closed is "Location == nil".
type UpValueCell struct {
	open   bool
	offset int // absolute index into the VM's operand stack, valid while open
	closed Value
}

// NewOpenUpValueCell creates a cell aliasing the stack slot at the given
// absolute offset.
func NewOpenUpValueCell(offset int) *UpValueCell {
	return &UpValueCell{open: true, offset: offset}
}

// IsOpen reports whether the cell still aliases the stack.
func (c *UpValueCell) IsOpen() bool { return c.open }

// Offset returns the aliased stack slot. Only meaningful while IsOpen.
func (c *UpValueCell) Offset() int { return c.offset }

// Read returns the cell's current value, consulting the stack while open.
func (c *UpValueCell) Read(stack []Value) Value {
	if c.open {
		return stack[c.offset]
	}
	return c.closed
}

// Write stores v into the cell, writing through to the stack while open.
func (c *UpValueCell) Write(stack []Value, v Value) {
	if c.open {
		stack[c.offset] = v
		return
	}
	c.closed = v
}

// Close detaches the cell from the stack, copying its current value in.
// Closing an already-closed cell is a no-op: a cell may be referenced by
// more than one closure and must only transition once.
func (c *UpValueCell) Close(stack []Value) {
	if !c.open {
		return
	}
	c.closed = stack[c.offset]
	c.open = false
}
