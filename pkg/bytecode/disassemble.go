package bytecode

import (
	"fmt"
	"strings"
)

// String renders an instruction as "<mnemonic> <operands...>", decoding
// the payload according to the shape its opcode uses. It never resolves
// constant- or prototype-table indices to their values: that requires the
// tables, which this package doesn't know about (see proto.Disassemble).
func (i Instruction) String() string {
	op := i.Op()
	switch op {
	case NoOp, End,
		IntNeg, IntAdd, IntSub, IntMul, IntDiv, IntMod, IntNe, IntEq, IntLt, IntLe, IntGt, IntGe,
		FloatNeg, FloatAdd, FloatSub, FloatMul, FloatDiv, FloatMod, FloatNe, FloatEq, FloatLt, FloatLe, FloatGt, FloatGe,
		StrConcat, StrSlice:
		return op.String()

	case Return:
		return fmt.Sprintf("%-16s count=%d", op, i.U8())

	case Call:
		base, results := i.U16U8()
		return fmt.Sprintf("%-16s base=%d results=%d", op, base, results)

	case Load, Store:
		offset, length := i.U16U8()
		return fmt.Sprintf("%-16s offset=%d len=%d", op, offset, length)

	case SetLocal, GetLocal:
		return fmt.Sprintf("%-16s slot=%d", op, i.U16())

	case SetUpValue, GetUpValue:
		return fmt.Sprintf("%-16s upvalue=%d", op, i.U16())

	case SetGlobal, GetGlobal:
		return fmt.Sprintf("%-16s name_const=%d", op, i.U16())

	case Pop:
		return fmt.Sprintf("%-16s n=%d", op, i.Arg24().Uint32())

	case PushIntIn:
		return fmt.Sprintf("%-16s i=%d", op, i.Arg24().Int64())

	case PushInt, PushFloat, PushString, PushFunc, CreateClosure:
		return fmt.Sprintf("%-16s k=%d", op, i.Arg24().Uint32())

	case CaptureValue:
		kind, index := i.U8U16()
		return fmt.Sprintf("%-16s kind=%d index=%d", op, kind, index)

	case Jump, JumpZero, JumpNe, JumpEq, JumpLt, JumpLe, JumpGt, JumpGe:
		return fmt.Sprintf("%-16s addr=%d", op, i.Arg24().Int64())

	default:
		return fmt.Sprintf("<bad opcode %d>", byte(op))
	}
}

// Disassemble renders an entire code vector, one instruction per line,
// prefixed with its index so jump targets can be cross-referenced by eye.
func Disassemble(code []Instruction) string {
	var b strings.Builder
	for ip, instr := range code {
		fmt.Fprintf(&b, "%04d  %s\n", ip, instr.String())
	}
	return b.String()
}
