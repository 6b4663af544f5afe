package vm

import (
	"crow/pkg/bytecode"
	"crow/pkg/proto"
	"crow/pkg/value"
	"crow/pkg/vmerrors"
)

// execCreateClosure builds a closure from the prototype named by the
// instruction's constant index, resolving each up-value cell per the
// prototype's own up-value origin table rather than from any preceding
// CaptureValue instructions (spec.md §4.3).
func (vm *VM) execCreateClosure(frame *callFrame, instr bytecode.Instruction) error {
	idx := instr.Arg24().Uint32()
	protos := frame.closure.Proto.Constants.Funcs
	if int(idx) >= len(protos) {
		return vmerrors.New("create_closure: prototype %d out of range", idx)
	}
	target := protos[idx]

	upValues := make([]value.Handle[value.UpValueCell], len(target.UpValues))
	for i, origin := range target.UpValues {
		switch origin.Kind {
		case proto.Parent:
			abs, err := vm.localSlot(frame, uint16(origin.Index))
			if err != nil {
				return err
			}
			cell := value.NewOpenUpValueCell(abs)
			h := value.NewHandle(*cell)
			frame.trackOpenCell(h.Get())
			upValues[i] = h

		case proto.Outer:
			if int(origin.Index) >= len(frame.closure.UpValues) {
				return vmerrors.New("create_closure: up-value %d out of range in enclosing closure", origin.Index)
			}
			upValues[i] = frame.closure.UpValues[origin.Index]

		default:
			return vmerrors.New("create_closure: unknown up-value origin kind %d", origin.Kind)
		}
	}

	closure, err := value.NewClosure(target, upValues)
	if err != nil {
		return err
	}
	vm.push(value.ObjValue(value.ClosureObject(closure)))
	return nil
}

// execGetUpValue pushes the current value of up-value k.
func (vm *VM) execGetUpValue(frame *callFrame, instr bytecode.Instruction) error {
	idx := instr.U16()
	if int(idx) >= len(frame.closure.UpValues) {
		return vmerrors.New("get_upvalue: index %d out of range", idx)
	}
	cell := frame.closure.UpValues[idx].Get()
	vm.push(cell.Read(vm.stack))
	return nil
}

// execSetUpValue pops the top of stack and writes it into up-value k.
func (vm *VM) execSetUpValue(frame *callFrame, instr bytecode.Instruction) error {
	idx := instr.U16()
	if int(idx) >= len(frame.closure.UpValues) {
		return vmerrors.New("set_upvalue: index %d out of range", idx)
	}
	v, err := vm.pop()
	if err != nil {
		return err
	}
	cell := frame.closure.UpValues[idx].Get()
	cell.Write(vm.stack, v)
	return nil
}
