package proto

import (
	"strings"
	"testing"

	"crow/pkg/bytecode"
	"crow/pkg/bytecode/asm"
)

func TestNewRejectsZeroStackSize(t *testing.T) {
	_, err := New("f", []bytecode.Instruction{asm.End()}, 0, false, Constants{}, nil)
	if err == nil {
		t.Fatal("expected error for stack_size 0")
	}
}

func TestNewRejectsOutOfRangeConstant(t *testing.T) {
	code := []bytecode.Instruction{asm.PushInt(0), asm.End()}
	_, err := New("f", code, 1, false, Constants{Ints: nil}, nil)
	if err == nil {
		t.Fatal("expected error for out-of-range int constant")
	}
}

func TestNewAcceptsWellFormedProto(t *testing.T) {
	code := []bytecode.Instruction{
		asm.PushInt(0),
		asm.Return(1),
	}
	p, err := New("f", code, 1, false, Constants{Ints: []int64{7}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.StackSize != 1 {
		t.Errorf("StackSize = %d, want 1", p.StackSize)
	}
}

func TestValidateRejectsBadGlobalName(t *testing.T) {
	code := []bytecode.Instruction{
		asm.GetGlobal(0),
		asm.Return(1),
	}
	p, err := New("f", code, 1, false, Constants{Strings: []string{"1bad"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(p); err == nil {
		t.Fatal("expected error for non-identifier global name")
	}
}

func TestValidateAcceptsGoodGlobalName(t *testing.T) {
	code := []bytecode.Instruction{
		asm.GetGlobal(0),
		asm.Return(1),
	}
	p, err := New("f", code, 1, false, Constants{Strings: []string{"_counter$1"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(p); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDisassembleAnnotatesConstants(t *testing.T) {
	code := []bytecode.Instruction{
		asm.PushInt(0),
		asm.Return(1),
	}
	p, err := New("adder", code, 1, false, Constants{Ints: []int64{42}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Disassemble(p)
	if out == "" {
		t.Fatal("expected non-empty disassembly")
	}
	if !strings.Contains(out, "; 42") {
		t.Errorf("disassembly does not annotate push_int with its constant 42:\n%s", out)
	}
}
