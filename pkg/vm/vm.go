// Package vm implements the stack-based bytecode interpreter: a shared
// operand stack, a call-frame stack, and a fetch/decode/execute loop
// split into an inner per-frame loop and an outer loop that performs the
// actual frame transitions (Call, Return).
package vm

import (
	"crow/pkg/proto"
	"crow/pkg/value"
	"crow/pkg/vmerrors"
)

// VM holds all of a single execution's mutable state: the operand stack,
// the call-frame stack, and the global table. A VM is single-threaded and
// not safe for concurrent use — see SPEC_FULL.md's concurrency notes.
type VM struct {
	stack     []value.Value
	frames    []*callFrame
	globals   *globals
	maxFrames int
}

// New constructs a VM ready to Run a program, applying any options.
func New(opts ...Option) *VM {
	vm := &VM{
		stack:     make([]value.Value, 0, defaultStackCapacity),
		globals:   newGlobals(),
		maxFrames: defaultMaxFrames,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// StackLen reports the operand stack's current length. It exists for
// tests asserting the stack returns to zero after a top-level call
// completes or fails.
func (vm *VM) StackLen() int {
	return len(vm.stack)
}

// Run invokes p as the program's entry point with no arguments and no
// captured up-values, driving frames to completion and returning
// whatever values the top-level Return/End names. On error the operand
// stack and call-frame stack are both fully unwound back to empty, with
// every still-open up-value cell closed first so no closure the failed
// run created is left observing stack slots that no longer belong to it.
func (vm *VM) Run(p *proto.FuncProto) ([]value.Value, error) {
	closure, err := value.NewClosure(p, nil)
	if err != nil {
		return nil, err
	}

	vm.stack = vm.stack[:0]
	vm.frames = vm.frames[:0]
	vm.reserveCapacity(int(p.StackSize))
	vm.push(value.ObjValue(value.ClosureObject(closure)))

	frame := &callFrame{base: 0, results: outermostResults, closure: closure}
	vm.frames = append(vm.frames, frame)

	results, err := vm.loop()
	if err != nil {
		vm.unwind()
		return nil, err
	}
	return results, nil
}

// reserveCapacity ensures the stack's backing array can hold at least n
// values without reallocating. stack_size on a prototype is an upper
// bound on how far a frame's window will ever extend, used purely as a
// pre-allocation hint (spec.md §9's "stack growth" note): the operand
// stack still grows and shrinks one push/pop at a time as instructions
// execute, nothing is zero-filled or pre-addressable ahead of being
// pushed.
func (vm *VM) reserveCapacity(n int) {
	if n <= cap(vm.stack) {
		return
	}
	grown := make([]value.Value, len(vm.stack), n)
	copy(grown, vm.stack)
	vm.stack = grown
}

// push appends a value to the top of the operand stack.
func (vm *VM) push(v value.Value) {
	vm.stack = append(vm.stack, v)
}

// unwind closes every open up-value cell still tracked by any in-flight
// frame and empties both stacks, so a failed Run leaves the VM reusable.
func (vm *VM) unwind() {
	for _, f := range vm.frames {
		for _, cell := range f.openCells {
			cell.Close(vm.stack)
		}
	}
	vm.stack = vm.stack[:0]
	vm.frames = vm.frames[:0]
}

// loop is the outer dispatch loop: it repeatedly runs the current top
// frame's inner loop until that frame either calls into a new frame or
// returns, and handles both transitions directly rather than recursing,
// so a deeply recursive Crow program doesn't also recurse the Go call
// stack frame-for-frame.
func (vm *VM) loop() ([]value.Value, error) {
	for {
		frame := vm.frames[len(vm.frames)-1]
		action, err := vm.execFrame(frame)
		if err != nil {
			return nil, err
		}

		switch action.kind {
		case actionKindReturn:
			done, results, err := vm.doReturn(frame, action.count)
			if err != nil {
				return nil, err
			}
			if done {
				return results, nil
			}

		case actionKindCall:
			if err := vm.doCall(frame, action.base, action.results); err != nil {
				return nil, err
			}

		default:
			return nil, vmerrors.New("internal error: unknown frame action")
		}
	}
}
