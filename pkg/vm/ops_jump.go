package vm

import (
	"crow/pkg/bytecode"
	"crow/pkg/vmerrors"
)

// execConditionalJump implements every conditional jump as popping one
// integer and testing it against zero; the mnemonic selects which
// relational test to apply. This follows spec.md's own recommended fix
// for its historical duplicate-opcode ambiguity: a comparison opcode
// (Int_Lt, Int_Eq, ...) produces the value on the stack first, and the
// jump that follows just threshold-tests it, uniformly, rather than each
// jump variant repeating its own two-operand comparison.
func (vm *VM) execConditionalJump(frame *callFrame, instr bytecode.Instruction) error {
	v, err := vm.popInt()
	if err != nil {
		return err
	}

	var take bool
	switch instr.Op() {
	case bytecode.JumpZero, bytecode.JumpEq:
		take = v == 0
	case bytecode.JumpNe:
		take = v != 0
	case bytecode.JumpLt:
		take = v < 0
	case bytecode.JumpLe:
		take = v <= 0
	case bytecode.JumpGt:
		take = v > 0
	case bytecode.JumpGe:
		take = v >= 0
	default:
		return vmerrors.New("internal error: %s is not a conditional jump", instr.Op())
	}

	if take {
		frame.ip += int(instr.Arg24().Int64())
	}
	return nil
}
