package vm

import (
	"crow/pkg/bytecode"
	"crow/pkg/value"
	"crow/pkg/vmerrors"
)

// execSetLocal writes the top of stack into stack[frame.base+slot]
// without popping: SetLocal is an assignment expression, and leaves its
// own value as the expression's result (spec.md §4.5, §9 resolves the
// historical pop-vs-no-pop ambiguity in favor of non-popping).
func (vm *VM) execSetLocal(frame *callFrame, instr bytecode.Instruction) error {
	slot := instr.U16()
	v, err := vm.peek()
	if err != nil {
		return err
	}
	abs := frame.base + int(slot)
	for abs >= len(vm.stack) {
		vm.push(value.IntValue(0)) // grow the window up to the target slot
	}
	vm.stack[abs] = v
	return nil
}

// execGetLocal pushes a copy of stack[frame.base+slot].
func (vm *VM) execGetLocal(frame *callFrame, instr bytecode.Instruction) error {
	abs, err := vm.localSlot(frame, instr.U16())
	if err != nil {
		return err
	}
	vm.push(vm.stack[abs])
	return nil
}

func outOfRangeErr(op string, start, end, top int) error {
	return vmerrors.New("%s: range [%d, %d) out of bounds (stack top %d)", op, start, end, top)
}

// execLoad appends len copies of stack[base+offset : base+offset+len] to
// the top of the operand stack.
func (vm *VM) execLoad(frame *callFrame, instr bytecode.Instruction) error {
	offset, length := instr.U16U8()
	start := frame.base + int(offset)
	end := start + int(length)
	if start < frame.base || end > len(vm.stack) {
		return outOfRangeErr("load", start, end, len(vm.stack))
	}
	for i := start; i < end; i++ {
		vm.push(vm.stack[i])
	}
	return nil
}

// execStore pops the top len values off the stack (in order) and writes
// them into stack[base+offset : base+offset+len], growing the window
// with zero-valued slots first if the target range extends past the
// current top.
func (vm *VM) execStore(frame *callFrame, instr bytecode.Instruction) error {
	offset, length := instr.U16U8()
	start := frame.base + int(offset)
	end := start + int(length)
	if start < frame.base {
		return outOfRangeErr("store", start, end, len(vm.stack))
	}
	vals, err := vm.popN(int(length))
	if err != nil {
		return err
	}
	for end > len(vm.stack) {
		vm.push(value.IntValue(0))
	}
	copy(vm.stack[start:end], vals)
	return nil
}
