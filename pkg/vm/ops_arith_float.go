package vm

import (
	"math"

	"crow/pkg/bytecode"
	"crow/pkg/value"
	"crow/pkg/vmerrors"
)

func floatMod(a, b float64) float64 { return math.Mod(a, b) }

func (vm *VM) popFloat() (float64, error) {
	v, err := vm.pop()
	if err != nil {
		return 0, err
	}
	if v.Kind() != value.Float {
		return 0, vmerrors.New("expected float, got %s", v.Kind())
	}
	return v.Float(), nil
}

// execFloatOp implements the monomorphic float arithmetic and comparison
// opcodes, using IEEE-754 semantics throughout (division by zero yields
// +/-Inf or NaN, never an error, matching float64's native behavior).
func (vm *VM) execFloatOp(op bytecode.OpCode) error {
	if op == bytecode.FloatNeg {
		a, err := vm.popFloat()
		if err != nil {
			return err
		}
		vm.push(value.FloatValue(-a))
		return nil
	}

	b, err := vm.popFloat()
	if err != nil {
		return err
	}
	a, err := vm.popFloat()
	if err != nil {
		return err
	}

	switch op {
	case bytecode.FloatAdd:
		vm.push(value.FloatValue(a + b))
	case bytecode.FloatSub:
		vm.push(value.FloatValue(a - b))
	case bytecode.FloatMul:
		vm.push(value.FloatValue(a * b))
	case bytecode.FloatDiv:
		vm.push(value.FloatValue(a / b))
	case bytecode.FloatMod:
		vm.push(value.FloatValue(floatMod(a, b)))
	case bytecode.FloatNe:
		vm.push(boolInt(a != b))
	case bytecode.FloatEq:
		vm.push(boolInt(a == b))
	case bytecode.FloatLt:
		vm.push(boolInt(a < b))
	case bytecode.FloatLe:
		vm.push(boolInt(a <= b))
	case bytecode.FloatGt:
		vm.push(boolInt(a > b))
	case bytecode.FloatGe:
		vm.push(boolInt(a >= b))
	default:
		return vmerrors.New("internal error: %s is not a float op", op)
	}
	return nil
}
