package vm

import (
	"crow/pkg/value"
	"crow/pkg/vmerrors"
)

// doReturn implements Return/End's frame-teardown semantics (spec §4.3,
// §4.5): close every up-value cell the returning frame opened, then copy
// its result window down over its own base, truncating the stack so the
// callee's locals are gone and only the (possibly truncated) results
// remain. done reports whether this was the outermost frame, in which
// case results is handed back to the original Run caller verbatim.
func (vm *VM) doReturn(frame *callFrame, count int) (done bool, results []value.Value, err error) {
	for _, cell := range frame.openCells {
		cell.Close(vm.stack)
	}

	top := len(vm.stack)
	if count > top-frame.base {
		return false, nil, vmerrors.New("return: count %d exceeds available stack (have %d values above base)", count, top-frame.base)
	}
	resultStart := top - count

	if frame.results == outermostResults {
		out := make([]value.Value, count)
		copy(out, vm.stack[resultStart:top])
		vm.stack = vm.stack[:frame.base]
		vm.frames = vm.frames[:len(vm.frames)-1]
		return true, out, nil
	}

	if frame.results > count {
		return false, nil, vmerrors.New("call expected %d results, function returned %d", frame.results, count)
	}
	k := frame.results

	copy(vm.stack[frame.base:frame.base+k], vm.stack[resultStart:resultStart+k])
	vm.stack = vm.stack[:frame.base+k]
	vm.frames = vm.frames[:len(vm.frames)-1]
	return false, nil, nil
}

// doCall implements Call's frame-setup semantics (spec §4.3, §4.5): the
// callable lives at the caller's base+relBase and must be a closure or a
// bare prototype with no up-values to resolve (wrapped in a zero-up-value
// closure here), and a new frame is pushed over a freshly grown stack
// region sized to the callee's prototype.
func (vm *VM) doCall(caller *callFrame, relBase int, results int) error {
	absBase := caller.base + relBase
	if absBase >= len(vm.stack) {
		return vmerrors.New("call: no callable at stack slot %d", absBase)
	}

	callee := vm.stack[absBase]
	obj := callee.Object()
	if obj == nil {
		return vmerrors.New("call: value at stack slot %d is not callable", absBase)
	}

	var closure *value.Closure
	switch obj.Tag {
	case value.TagClosure:
		closure = obj.Closure
	case value.TagFuncProto:
		if len(obj.Proto.UpValues) != 0 {
			return vmerrors.New("call: %q has unresolved up-values, create a closure first", obj.Proto.Name)
		}
		c, err := value.NewClosure(obj.Proto, nil)
		if err != nil {
			return err
		}
		closure = c
	default:
		return vmerrors.New("call: value at stack slot %d is not callable", absBase)
	}

	if len(vm.frames) >= vm.maxFrames {
		return vmerrors.New("stack overflow: call depth exceeds %d", vm.maxFrames)
	}

	vm.reserveCapacity(absBase + int(closure.Proto.StackSize))

	vm.frames = append(vm.frames, &callFrame{
		base:    absBase,
		results: results,
		closure: closure,
	})
	return nil
}
