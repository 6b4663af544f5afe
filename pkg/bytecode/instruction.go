package bytecode

// Instruction is a fixed 4-byte unit: one opcode byte followed by three
// payload bytes. Every instruction in a prototype's code vector is exactly
// this size, so instruction addresses (jump targets, ip) are plain
// indices into a []Instruction rather than byte offsets.
type Instruction [4]byte

// Op returns the instruction's opcode tag.
func (i Instruction) Op() OpCode {
	return OpCode(i[0])
}

// Arg24 reads the payload as a single 24-bit immediate (PushIntIn,
// PushInt, PushFloat, PushString, PushFunc, CreateClosure, all Jump
// variants).
func (i Instruction) Arg24() Arg24 {
	return Arg24{i[1], i[2], i[3]}
}

// U16 reads the payload as a single 16-bit operand with the last payload
// byte unused (SetLocal, GetLocal, SetUpValue, GetUpValue, SetGlobal,
// GetGlobal).
func (i Instruction) U16() uint16 {
	return uint16(i[1]) | uint16(i[2])<<8
}

// U16U8 reads the payload as a 16-bit field followed by an 8-bit field
// (Call{base, results}, Load{offset, len}, Store{offset, len}).
func (i Instruction) U16U8() (uint16, uint8) {
	return uint16(i[1]) | uint16(i[2])<<8, i[3]
}

// U8 reads the payload as a single byte with the remaining two bytes
// unused (Return{count}).
func (i Instruction) U8() uint8 {
	return i[1]
}

// U8U16 reads the payload as an 8-bit field followed by a 16-bit field
// (CaptureValue{kind, index}).
func (i Instruction) U8U16() (uint8, uint16) {
	return i[1], uint16(i[2]) | uint16(i[3])<<8
}

func newInstruction(op OpCode, b0, b1, b2 byte) Instruction {
	return Instruction{byte(op), b0, b1, b2}
}

// FromArg24 builds an instruction carrying a single 24-bit payload.
func FromArg24(op OpCode, a Arg24) Instruction {
	return newInstruction(op, a[0], a[1], a[2])
}

// FromU16 builds an instruction carrying a single 16-bit payload.
func FromU16(op OpCode, v uint16) Instruction {
	return newInstruction(op, byte(v), byte(v>>8), 0)
}

// FromU16U8 builds an instruction carrying a 16-bit field then an 8-bit
// field.
func FromU16U8(op OpCode, hi uint16, lo uint8) Instruction {
	return newInstruction(op, byte(hi), byte(hi>>8), lo)
}

// FromU8 builds an instruction carrying a single byte payload.
func FromU8(op OpCode, v uint8) Instruction {
	return newInstruction(op, v, 0, 0)
}

// FromU8U16 builds an instruction carrying a byte field then a 16-bit
// field.
func FromU8U16(op OpCode, b uint8, v uint16) Instruction {
	return newInstruction(op, b, byte(v), byte(v>>8))
}

// Bare builds an instruction with no payload (NoOp, End, all Int_*/Float_*
// arithmetic and comparison ops, Str_Concat, Str_Slice).
func Bare(op OpCode) Instruction {
	return newInstruction(op, 0, 0, 0)
}
