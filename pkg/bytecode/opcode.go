// Package bytecode defines the fixed-width instruction encoding the VM
// fetches and decodes: one byte of opcode tag, three bytes of immediate
// payload, four bytes total. It has no knowledge of function prototypes,
// values, or the VM itself — everything above it builds on this encoding,
// never the other way around.
package bytecode

// OpCode tags a single 4-byte Instruction.
type OpCode uint8

const (
	NoOp OpCode = iota

	Pop
	End
	Return
	Call

	Load
	Store

	SetLocal
	GetLocal
	SetUpValue
	GetUpValue
	SetGlobal
	GetGlobal

	PushIntIn
	PushInt
	PushFloat
	PushString
	PushFunc

	CaptureValue
	CreateClosure

	IntNeg
	IntAdd
	IntSub
	IntMul
	IntDiv
	IntMod
	IntNe
	IntEq
	IntLt
	IntLe
	IntGt
	IntGe

	FloatNeg
	FloatAdd
	FloatSub
	FloatMul
	FloatDiv
	FloatMod
	FloatNe
	FloatEq
	FloatLt
	FloatLe
	FloatGt
	FloatGe

	StrConcat
	StrSlice

	Jump
	JumpZero
	JumpNe
	JumpEq
	JumpLt
	JumpLe
	JumpGt
	JumpGe

	opCodeCount
)

var mnemonics = [opCodeCount]string{
	NoOp:          "no_op",
	Pop:           "pop",
	End:           "end",
	Return:        "return",
	Call:          "call",
	Load:          "load",
	Store:         "store",
	SetLocal:      "set_local",
	GetLocal:      "get_local",
	SetUpValue:    "set_upvalue",
	GetUpValue:    "get_upvalue",
	SetGlobal:     "set_global",
	GetGlobal:     "get_global",
	PushIntIn:     "push_int_in",
	PushInt:       "push_int",
	PushFloat:     "push_float",
	PushString:    "push_string",
	PushFunc:      "push_func",
	CaptureValue:  "capture_value",
	CreateClosure: "create_closure",
	IntNeg:        "int_neg",
	IntAdd:        "int_add",
	IntSub:        "int_sub",
	IntMul:        "int_mul",
	IntDiv:        "int_div",
	IntMod:        "int_mod",
	IntNe:         "int_ne",
	IntEq:         "int_eq",
	IntLt:         "int_lt",
	IntLe:         "int_le",
	IntGt:         "int_gt",
	IntGe:         "int_ge",
	FloatNeg:      "float_neg",
	FloatAdd:      "float_add",
	FloatSub:      "float_sub",
	FloatMul:      "float_mul",
	FloatDiv:      "float_div",
	FloatMod:      "float_mod",
	FloatNe:       "float_ne",
	FloatEq:       "float_eq",
	FloatLt:       "float_lt",
	FloatLe:       "float_le",
	FloatGt:       "float_gt",
	FloatGe:       "float_ge",
	StrConcat:     "str_concat",
	StrSlice:      "str_slice",
	Jump:          "jump",
	JumpZero:      "jump_zero",
	JumpNe:        "jump_ne",
	JumpEq:        "jump_eq",
	JumpLt:        "jump_lt",
	JumpLe:        "jump_le",
	JumpGt:        "jump_gt",
	JumpGe:        "jump_ge",
}

func (op OpCode) String() string {
	if op >= opCodeCount {
		return "unknown"
	}
	if s := mnemonics[op]; s != "" {
		return s
	}
	return "unknown"
}

// IsValid reports whether op names a defined instruction.
func (op OpCode) IsValid() bool {
	return op < opCodeCount
}
