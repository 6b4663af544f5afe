// Package proto defines function prototypes: the immutable, compiled
// description of a function body (its code, constant pools, and up-value
// origin table) from which closures are stamped out at run time. A
// FuncProto owns no mutable state and can be shared by any number of
// closures simultaneously.
package proto

import (
	"fmt"

	"crow/pkg/bytecode"
	"crow/pkg/vmerrors"
)

// OriginKind distinguishes where a closure's up-value cell comes from at
// the moment it is created.
type OriginKind uint8

const (
	// Parent means the cell is captured from a local slot in the
	// directly enclosing frame (the frame creating this closure).
	Parent OriginKind = iota
	// Outer means the cell is inherited from an up-value already held by
	// the enclosing closure itself — the captured variable lives further
	// out than the immediate parent.
	Outer
)

func (k OriginKind) String() string {
	if k == Outer {
		return "outer"
	}
	return "parent"
}

// UpValueOrigin records, for one slot in a closure's up-value vector,
// where CreateClosure should obtain the cell: a local slot of the
// enclosing frame (Parent) or an up-value already held by the enclosing
// closure (Outer). Index means "local slot" under Parent and "up-value
// index" under Outer.
type UpValueOrigin struct {
	Kind  OriginKind
	Index uint32
}

// Constants holds a prototype's constant pools, one per primitive kind.
// PushInt/PushFloat/PushString/PushFunc index into the matching slice;
// PushIntIn carries its value inline and never touches Ints.
type Constants struct {
	Ints    []int64
	Floats  []float64
	Strings []string
	Funcs   []*FuncProto
}

// FuncProto is the compiled, immutable description of one function body.
type FuncProto struct {
	Code      []bytecode.Instruction
	StackSize uint32
	IsVarg    bool
	Constants Constants
	UpValues  []UpValueOrigin

	// Name is optional, used only for disassembly and error messages.
	Name string
}

// New validates and constructs a FuncProto. It rejects prototypes that
// could never execute safely: a stack too small to hold the callee slot,
// and out-of-range constant/prototype references in the code vector.
func New(name string, code []bytecode.Instruction, stackSize uint32, isVarg bool, constants Constants, upValues []UpValueOrigin) (*FuncProto, error) {
	if stackSize < 1 {
		return nil, vmerrors.New("function prototype %q: stack_size must be at least 1 (slot 0 holds the callable)", name)
	}

	p := &FuncProto{
		Code:      code,
		StackSize: stackSize,
		IsVarg:    isVarg,
		Constants: constants,
		UpValues:  upValues,
		Name:      name,
	}

	if err := checkReferences(p); err != nil {
		return nil, err
	}
	return p, nil
}

func checkReferences(p *FuncProto) error {
	for ip, instr := range p.Code {
		switch instr.Op() {
		case bytecode.PushInt:
			if idx := instr.Arg24().Uint32(); idx >= uint32(len(p.Constants.Ints)) {
				return vmerrors.New("function prototype %q: ip %d: push_int constant %d out of range (have %d)", p.Name, ip, idx, len(p.Constants.Ints))
			}
		case bytecode.PushFloat:
			if idx := instr.Arg24().Uint32(); idx >= uint32(len(p.Constants.Floats)) {
				return vmerrors.New("function prototype %q: ip %d: push_float constant %d out of range (have %d)", p.Name, ip, idx, len(p.Constants.Floats))
			}
		case bytecode.PushString, bytecode.SetGlobal, bytecode.GetGlobal:
			var idx uint32
			if instr.Op() == bytecode.PushString {
				idx = instr.Arg24().Uint32()
			} else {
				idx = uint32(instr.U16())
			}
			if idx >= uint32(len(p.Constants.Strings)) {
				return vmerrors.New("function prototype %q: ip %d: %s constant %d out of range (have %d)", p.Name, ip, instr.Op(), idx, len(p.Constants.Strings))
			}
		case bytecode.PushFunc, bytecode.CreateClosure:
			if idx := instr.Arg24().Uint32(); idx >= uint32(len(p.Constants.Funcs)) {
				return vmerrors.New("function prototype %q: ip %d: %s prototype %d out of range (have %d)", p.Name, ip, instr.Op(), idx, len(p.Constants.Funcs))
			}
		case bytecode.SetUpValue, bytecode.GetUpValue:
			if idx := instr.U16(); int(idx) >= len(p.UpValues) {
				return vmerrors.New("function prototype %q: ip %d: %s up-value %d out of range (have %d)", p.Name, ip, instr.Op(), idx, len(p.UpValues))
			}
		}
	}
	return nil
}

// Disassemble renders the prototype's code next to the values its
// constant-table references resolve to, recursing into nested function
// prototypes.
func Disassemble(p *FuncProto) string {
	var out string
	out += fmt.Sprintf("== %s (stack_size=%d is_varg=%t up_values=%d) ==\n", protoLabel(p), p.StackSize, p.IsVarg, len(p.UpValues))
	for ip, instr := range p.Code {
		out += fmt.Sprintf("%04d  %s\n", ip, annotate(p, instr))
	}
	for i, nested := range p.Constants.Funcs {
		out += fmt.Sprintf("\n-- nested prototype %d --\n", i)
		out += Disassemble(nested)
	}
	return out
}

func protoLabel(p *FuncProto) string {
	if p.Name == "" {
		return "<anonymous>"
	}
	return p.Name
}

func annotate(p *FuncProto, instr bytecode.Instruction) string {
	switch instr.Op() {
	case bytecode.PushInt:
		idx := instr.Arg24().Uint32()
		if int(idx) < len(p.Constants.Ints) {
			return fmt.Sprintf("%-24s ; %d", instr.String(), p.Constants.Ints[idx])
		}
	case bytecode.PushFloat:
		idx := instr.Arg24().Uint32()
		if int(idx) < len(p.Constants.Floats) {
			return fmt.Sprintf("%-24s ; %g", instr.String(), p.Constants.Floats[idx])
		}
	case bytecode.PushString:
		idx := instr.Arg24().Uint32()
		if int(idx) < len(p.Constants.Strings) {
			return fmt.Sprintf("%-24s ; %q", instr.String(), p.Constants.Strings[idx])
		}
	case bytecode.SetGlobal, bytecode.GetGlobal:
		idx := uint32(instr.U16())
		if int(idx) < len(p.Constants.Strings) {
			return fmt.Sprintf("%-24s ; %q", instr.String(), p.Constants.Strings[idx])
		}
	case bytecode.PushFunc, bytecode.CreateClosure:
		idx := instr.Arg24().Uint32()
		if int(idx) < len(p.Constants.Funcs) {
			return fmt.Sprintf("%-24s ; %s", instr.String(), protoLabel(p.Constants.Funcs[idx]))
		}
	}
	return instr.String()
}
