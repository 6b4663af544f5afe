package vm

import (
	"crow/pkg/value"
	"crow/pkg/vmerrors"
)

func (vm *VM) popString() (*value.Str, error) {
	v, err := vm.pop()
	if err != nil {
		return nil, err
	}
	obj := v.Object()
	if obj == nil || obj.Tag != value.TagString {
		return nil, vmerrors.New("expected string, got %s", v.Kind())
	}
	return obj.Str, nil
}

// execStrConcat pops two strings (b then a) and pushes their
// NFC-normalized concatenation a+b.
func (vm *VM) execStrConcat() error {
	b, err := vm.popString()
	if err != nil {
		return err
	}
	a, err := vm.popString()
	if err != nil {
		return err
	}
	vm.push(value.ObjValue(value.StringObject(value.Concat(a, b))))
	return nil
}

// execStrSlice pops end, start (ints), then a string, and pushes the
// byte-range substring [start, end).
func (vm *VM) execStrSlice() error {
	end, err := vm.popInt()
	if err != nil {
		return err
	}
	start, err := vm.popInt()
	if err != nil {
		return err
	}
	s, err := vm.popString()
	if err != nil {
		return err
	}
	sub, ok := value.Slice(s, int(start), int(end))
	if !ok {
		return vmerrors.New("str_slice: range [%d, %d) out of bounds for string of length %d", start, end, s.Len())
	}
	vm.push(value.ObjValue(value.StringObject(sub)))
	return nil
}
