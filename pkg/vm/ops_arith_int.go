package vm

import (
	"crow/pkg/bytecode"
	"crow/pkg/value"
	"crow/pkg/vmerrors"
)

// execIntOp implements the monomorphic integer arithmetic and comparison
// opcodes. Every one of them requires both operands (one, for Int_Neg) to
// already be Int values; mixing Int and Float is a type error the
// compiler is expected to have already ruled out; the VM still checks it
// since nothing else does.
func (vm *VM) execIntOp(op bytecode.OpCode) error {
	if op == bytecode.IntNeg {
		a, err := vm.popInt()
		if err != nil {
			return err
		}
		vm.push(value.IntValue(-a))
		return nil
	}

	b, err := vm.popInt()
	if err != nil {
		return err
	}
	a, err := vm.popInt()
	if err != nil {
		return err
	}

	switch op {
	case bytecode.IntAdd:
		vm.push(value.IntValue(a + b))
	case bytecode.IntSub:
		vm.push(value.IntValue(a - b))
	case bytecode.IntMul:
		vm.push(value.IntValue(a * b))
	case bytecode.IntDiv:
		if b == 0 {
			return vmerrors.New("integer division by zero")
		}
		vm.push(value.IntValue(a / b))
	case bytecode.IntMod:
		if b == 0 {
			return vmerrors.New("integer division by zero")
		}
		vm.push(value.IntValue(a % b))
	case bytecode.IntNe:
		vm.push(boolInt(a != b))
	case bytecode.IntEq:
		vm.push(boolInt(a == b))
	case bytecode.IntLt:
		vm.push(boolInt(a < b))
	case bytecode.IntLe:
		vm.push(boolInt(a <= b))
	case bytecode.IntGt:
		vm.push(boolInt(a > b))
	case bytecode.IntGe:
		vm.push(boolInt(a >= b))
	default:
		return vmerrors.New("internal error: %s is not an int op", op)
	}
	return nil
}

// boolInt represents a comparison's result as Int 1 (true) or Int 0
// (false), per spec.md's "booleans are represented as Int 0/1" rule.
func boolInt(b bool) value.Value {
	if b {
		return value.IntValue(1)
	}
	return value.IntValue(0)
}
