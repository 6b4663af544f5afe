package vm

import (
	"crow/pkg/bytecode"
	"crow/pkg/vmerrors"
)

func (vm *VM) globalName(frame *callFrame, instr bytecode.Instruction) (string, error) {
	idx := instr.U16()
	strs := frame.closure.Proto.Constants.Strings
	if int(idx) >= len(strs) {
		return "", vmerrors.New("global name constant %d out of range", idx)
	}
	return strs[idx], nil
}

// execSetGlobal pops the top of stack and stores it under the named
// global.
func (vm *VM) execSetGlobal(frame *callFrame, instr bytecode.Instruction) error {
	name, err := vm.globalName(frame, instr)
	if err != nil {
		return err
	}
	v, err := vm.pop()
	if err != nil {
		return err
	}
	vm.globals.set(name, v)
	return nil
}

// execGetGlobal pushes the named global's current value, or a Runtime
// error if it has never been set.
func (vm *VM) execGetGlobal(frame *callFrame, instr bytecode.Instruction) error {
	name, err := vm.globalName(frame, instr)
	if err != nil {
		return err
	}
	v, ok := vm.globals.get(name)
	if !ok {
		return vmerrors.New("global %q is not defined", name)
	}
	vm.push(v)
	return nil
}
