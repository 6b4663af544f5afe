package vm

import (
	"crow/pkg/bytecode"
	"crow/pkg/value"
	"crow/pkg/vmerrors"
)

// pop removes and returns the top of the operand stack.
func (vm *VM) pop() (value.Value, error) {
	n := len(vm.stack)
	if n == 0 {
		return value.Value{}, vmerrors.New("stack underflow")
	}
	v := vm.stack[n-1]
	vm.stack = vm.stack[:n-1]
	return v, nil
}

// popN removes and returns the top n values of the operand stack, in
// their original (bottom-to-top) order.
func (vm *VM) popN(n int) ([]value.Value, error) {
	if n == 0 {
		return nil, nil
	}
	top := len(vm.stack)
	if n > top {
		return nil, vmerrors.New("stack underflow: need %d values, have %d", n, top)
	}
	out := make([]value.Value, n)
	copy(out, vm.stack[top-n:top])
	vm.stack = vm.stack[:top-n]
	return out, nil
}

// peek returns the top of the operand stack without removing it.
func (vm *VM) peek() (value.Value, error) {
	n := len(vm.stack)
	if n == 0 {
		return value.Value{}, vmerrors.New("stack underflow")
	}
	return vm.stack[n-1], nil
}

// popInt pops the top of stack and requires it to be an Int, the only
// kind every conditional-jump and integer-arithmetic instruction accepts.
func (vm *VM) popInt() (int64, error) {
	v, err := vm.pop()
	if err != nil {
		return 0, err
	}
	if v.Kind() != value.Int {
		return 0, vmerrors.New("expected int, got %s", v.Kind())
	}
	return v.Int(), nil
}

// localSlot resolves a frame-relative local slot to an absolute stack
// index, checking it's actually within the currently-pushed portion of
// the stack (a local only exists once some instruction has pushed it).
func (vm *VM) localSlot(frame *callFrame, slot uint16) (int, error) {
	abs := frame.base + int(slot)
	if abs >= len(vm.stack) {
		return 0, vmerrors.New("local slot %d not yet populated in this frame", slot)
	}
	return abs, nil
}

// execFrame runs frame's inner fetch/decode/execute loop until it needs
// the outer loop to perform a Call or Return/End transition, which it
// reports back as a frameAction instead of performing itself.
func (vm *VM) execFrame(frame *callFrame) (frameAction, error) {
	code := frame.closure.Proto.Code
	for {
		if frame.ip < 0 || frame.ip >= len(code) {
			return frameAction{}, vmerrors.New("instruction pointer %d out of range (code length %d)", frame.ip, len(code))
		}
		instr := code[frame.ip]
		frame.ip++

		action, handled, err := vm.dispatch(frame, instr)
		if err != nil {
			return frameAction{}, err
		}
		if handled {
			return action, nil
		}
	}
}

// dispatch executes one instruction. handled is true when the
// instruction is a Call, Return, or End — the cases that hand control
// back to the outer loop instead of continuing this frame's inner loop.
func (vm *VM) dispatch(frame *callFrame, instr bytecode.Instruction) (action frameAction, handled bool, err error) {
	switch instr.Op() {
	case bytecode.NoOp, bytecode.CaptureValue:
		// CaptureValue is informational only: CreateClosure consults the
		// prototype's up-value origin table directly rather than reading
		// back preceding CaptureValue instructions.
		return frameAction{}, false, nil

	case bytecode.Pop:
		n := int(instr.Arg24().Uint32())
		_, err := vm.popN(n)
		return frameAction{}, false, err

	case bytecode.End:
		return frameAction{kind: actionKindReturn, count: 0}, true, nil

	case bytecode.Return:
		return frameAction{kind: actionKindReturn, count: int(instr.U8())}, true, nil

	case bytecode.Call:
		base, results := instr.U16U8()
		return frameAction{kind: actionKindCall, base: int(base), results: int(results)}, true, nil

	case bytecode.Load:
		err := vm.execLoad(frame, instr)
		return frameAction{}, false, err

	case bytecode.Store:
		err := vm.execStore(frame, instr)
		return frameAction{}, false, err

	case bytecode.SetLocal:
		err := vm.execSetLocal(frame, instr)
		return frameAction{}, false, err

	case bytecode.GetLocal:
		err := vm.execGetLocal(frame, instr)
		return frameAction{}, false, err

	case bytecode.SetUpValue:
		err := vm.execSetUpValue(frame, instr)
		return frameAction{}, false, err

	case bytecode.GetUpValue:
		err := vm.execGetUpValue(frame, instr)
		return frameAction{}, false, err

	case bytecode.SetGlobal:
		err := vm.execSetGlobal(frame, instr)
		return frameAction{}, false, err

	case bytecode.GetGlobal:
		err := vm.execGetGlobal(frame, instr)
		return frameAction{}, false, err

	case bytecode.PushIntIn:
		vm.push(value.IntValue(instr.Arg24().Int64()))
		return frameAction{}, false, nil

	case bytecode.PushInt:
		idx := instr.Arg24().Uint32()
		vm.push(value.IntValue(frame.closure.Proto.Constants.Ints[idx]))
		return frameAction{}, false, nil

	case bytecode.PushFloat:
		idx := instr.Arg24().Uint32()
		vm.push(value.FloatValue(frame.closure.Proto.Constants.Floats[idx]))
		return frameAction{}, false, nil

	case bytecode.PushString:
		idx := instr.Arg24().Uint32()
		vm.push(value.ObjValue(value.StringObject(value.NewStr(frame.closure.Proto.Constants.Strings[idx]))))
		return frameAction{}, false, nil

	case bytecode.PushFunc:
		idx := instr.Arg24().Uint32()
		proto := frame.closure.Proto.Constants.Funcs[idx]
		vm.push(value.ObjValue(value.FuncProtoObject(proto)))
		return frameAction{}, false, nil

	case bytecode.CreateClosure:
		err := vm.execCreateClosure(frame, instr)
		return frameAction{}, false, err

	case bytecode.IntNeg, bytecode.IntAdd, bytecode.IntSub, bytecode.IntMul, bytecode.IntDiv, bytecode.IntMod,
		bytecode.IntNe, bytecode.IntEq, bytecode.IntLt, bytecode.IntLe, bytecode.IntGt, bytecode.IntGe:
		err := vm.execIntOp(instr.Op())
		return frameAction{}, false, err

	case bytecode.FloatNeg, bytecode.FloatAdd, bytecode.FloatSub, bytecode.FloatMul, bytecode.FloatDiv, bytecode.FloatMod,
		bytecode.FloatNe, bytecode.FloatEq, bytecode.FloatLt, bytecode.FloatLe, bytecode.FloatGt, bytecode.FloatGe:
		err := vm.execFloatOp(instr.Op())
		return frameAction{}, false, err

	case bytecode.StrConcat:
		err := vm.execStrConcat()
		return frameAction{}, false, err

	case bytecode.StrSlice:
		err := vm.execStrSlice()
		return frameAction{}, false, err

	case bytecode.Jump:
		frame.ip += int(instr.Arg24().Int64())
		return frameAction{}, false, nil

	case bytecode.JumpZero, bytecode.JumpNe, bytecode.JumpEq, bytecode.JumpLt, bytecode.JumpLe, bytecode.JumpGt, bytecode.JumpGe:
		err := vm.execConditionalJump(frame, instr)
		return frameAction{}, false, err

	default:
		return frameAction{}, false, vmerrors.New("unknown opcode %d at ip %d", byte(instr.Op()), frame.ip-1)
	}
}
