// Package asm provides panicking shorthand constructors for hand-assembling
// instruction streams, mirroring the shorthand module the reference
// implementation used to build test programs without a front-end compiler.
// Every function here either builds a valid Instruction or panics, on the
// grounds that encode failures in a literal, hand-written program are
// programmer error, not runtime input.
package asm

import "crow/pkg/bytecode"

func encodePanic(err error) {
	if err != nil {
		panic(err)
	}
}

func NoOp() bytecode.Instruction { return bytecode.Bare(bytecode.NoOp) }
func End() bytecode.Instruction  { return bytecode.Bare(bytecode.End) }

func Pop(n uint32) bytecode.Instruction {
	a, err := bytecode.Arg24FromUint32(n)
	encodePanic(err)
	return bytecode.FromArg24(bytecode.Pop, a)
}

func Return(count uint8) bytecode.Instruction {
	return bytecode.FromU8(bytecode.Return, count)
}

func Call(base uint16, results uint8) bytecode.Instruction {
	return bytecode.FromU16U8(bytecode.Call, base, results)
}

func Load(offset uint16, length uint8) bytecode.Instruction {
	return bytecode.FromU16U8(bytecode.Load, offset, length)
}

func Store(offset uint16, length uint8) bytecode.Instruction {
	return bytecode.FromU16U8(bytecode.Store, offset, length)
}

func SetLocal(slot uint16) bytecode.Instruction {
	return bytecode.FromU16(bytecode.SetLocal, slot)
}

func GetLocal(slot uint16) bytecode.Instruction {
	return bytecode.FromU16(bytecode.GetLocal, slot)
}

func SetUpValue(index uint16) bytecode.Instruction {
	return bytecode.FromU16(bytecode.SetUpValue, index)
}

func GetUpValue(index uint16) bytecode.Instruction {
	return bytecode.FromU16(bytecode.GetUpValue, index)
}

func SetGlobal(nameConst uint16) bytecode.Instruction {
	return bytecode.FromU16(bytecode.SetGlobal, nameConst)
}

func GetGlobal(nameConst uint16) bytecode.Instruction {
	return bytecode.FromU16(bytecode.GetGlobal, nameConst)
}

func PushIntIn(v int32) bytecode.Instruction {
	a, err := bytecode.Arg24FromInt64(int64(v))
	encodePanic(err)
	return bytecode.FromArg24(bytecode.PushIntIn, a)
}

func PushInt(k uint32) bytecode.Instruction {
	a, err := bytecode.Arg24FromUint32(k)
	encodePanic(err)
	return bytecode.FromArg24(bytecode.PushInt, a)
}

func PushFloat(k uint32) bytecode.Instruction {
	a, err := bytecode.Arg24FromUint32(k)
	encodePanic(err)
	return bytecode.FromArg24(bytecode.PushFloat, a)
}

func PushString(k uint32) bytecode.Instruction {
	a, err := bytecode.Arg24FromUint32(k)
	encodePanic(err)
	return bytecode.FromArg24(bytecode.PushString, a)
}

func PushFunc(k uint32) bytecode.Instruction {
	a, err := bytecode.Arg24FromUint32(k)
	encodePanic(err)
	return bytecode.FromArg24(bytecode.PushFunc, a)
}

// CaptureValue kinds: 0 = Parent(local_index), 1 = Outer(upvalue_index).
func CaptureValueParent(localIndex uint16) bytecode.Instruction {
	return bytecode.FromU8U16(bytecode.CaptureValue, 0, localIndex)
}

func CaptureValueOuter(upvalueIndex uint16) bytecode.Instruction {
	return bytecode.FromU8U16(bytecode.CaptureValue, 1, upvalueIndex)
}

func CreateClosure(protoIndex uint32) bytecode.Instruction {
	a, err := bytecode.Arg24FromUint32(protoIndex)
	encodePanic(err)
	return bytecode.FromArg24(bytecode.CreateClosure, a)
}

func IntNeg() bytecode.Instruction { return bytecode.Bare(bytecode.IntNeg) }
func IntAdd() bytecode.Instruction { return bytecode.Bare(bytecode.IntAdd) }
func IntSub() bytecode.Instruction { return bytecode.Bare(bytecode.IntSub) }
func IntMul() bytecode.Instruction { return bytecode.Bare(bytecode.IntMul) }
func IntDiv() bytecode.Instruction { return bytecode.Bare(bytecode.IntDiv) }
func IntMod() bytecode.Instruction { return bytecode.Bare(bytecode.IntMod) }
func IntNe() bytecode.Instruction  { return bytecode.Bare(bytecode.IntNe) }
func IntEq() bytecode.Instruction  { return bytecode.Bare(bytecode.IntEq) }
func IntLt() bytecode.Instruction  { return bytecode.Bare(bytecode.IntLt) }
func IntLe() bytecode.Instruction  { return bytecode.Bare(bytecode.IntLe) }
func IntGt() bytecode.Instruction  { return bytecode.Bare(bytecode.IntGt) }
func IntGe() bytecode.Instruction  { return bytecode.Bare(bytecode.IntGe) }

func FloatNeg() bytecode.Instruction { return bytecode.Bare(bytecode.FloatNeg) }
func FloatAdd() bytecode.Instruction { return bytecode.Bare(bytecode.FloatAdd) }
func FloatSub() bytecode.Instruction { return bytecode.Bare(bytecode.FloatSub) }
func FloatMul() bytecode.Instruction { return bytecode.Bare(bytecode.FloatMul) }
func FloatDiv() bytecode.Instruction { return bytecode.Bare(bytecode.FloatDiv) }
func FloatMod() bytecode.Instruction { return bytecode.Bare(bytecode.FloatMod) }
func FloatNe() bytecode.Instruction  { return bytecode.Bare(bytecode.FloatNe) }
func FloatEq() bytecode.Instruction  { return bytecode.Bare(bytecode.FloatEq) }
func FloatLt() bytecode.Instruction  { return bytecode.Bare(bytecode.FloatLt) }
func FloatLe() bytecode.Instruction  { return bytecode.Bare(bytecode.FloatLe) }
func FloatGt() bytecode.Instruction  { return bytecode.Bare(bytecode.FloatGt) }
func FloatGe() bytecode.Instruction  { return bytecode.Bare(bytecode.FloatGe) }

func StrConcat() bytecode.Instruction { return bytecode.Bare(bytecode.StrConcat) }
func StrSlice() bytecode.Instruction  { return bytecode.Bare(bytecode.StrSlice) }

func jumpArg(op bytecode.OpCode, addr int32) bytecode.Instruction {
	a, err := bytecode.Arg24FromInt64(int64(addr))
	encodePanic(err)
	return bytecode.FromArg24(op, a)
}

func Jump(addr int32) bytecode.Instruction     { return jumpArg(bytecode.Jump, addr) }
func JumpZero(addr int32) bytecode.Instruction { return jumpArg(bytecode.JumpZero, addr) }
func JumpNe(addr int32) bytecode.Instruction   { return jumpArg(bytecode.JumpNe, addr) }
func JumpEq(addr int32) bytecode.Instruction   { return jumpArg(bytecode.JumpEq, addr) }
func JumpLt(addr int32) bytecode.Instruction   { return jumpArg(bytecode.JumpLt, addr) }
func JumpLe(addr int32) bytecode.Instruction   { return jumpArg(bytecode.JumpLe, addr) }
func JumpGt(addr int32) bytecode.Instruction   { return jumpArg(bytecode.JumpGt, addr) }
func JumpGe(addr int32) bytecode.Instruction   { return jumpArg(bytecode.JumpGe, addr) }
