package vm

import (
	"testing"

	"crow/pkg/bytecode"
	"crow/pkg/bytecode/asm"
	"crow/pkg/proto"
)

func TestLiteralAdd(t *testing.T) {
	// PushIntIn 7; PushIntIn 11; Int_Add; Return 1 -> Int(18).
	code := []bytecode.Instruction{
		asm.PushIntIn(7),
		asm.PushIntIn(11),
		asm.IntAdd(),
		asm.Return(1),
	}
	p, err := proto.New("main", code, 2, false, proto.Constants{}, nil)
	if err != nil {
		t.Fatalf("proto.New: %v", err)
	}

	m := New()
	results, err := m.Run(p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 || results[0].Int() != 18 {
		t.Fatalf("results = %v, want [Int(18)]", results)
	}
	if m.StackLen() != 0 {
		t.Errorf("StackLen() = %d, want 0 after a completed run", m.StackLen())
	}
}

func TestBranchOnLessThan(t *testing.T) {
	// PushIntIn 7; PushIntIn 11; GetLocal 1; GetLocal 2; Int_Lt;
	// JumpZero +2; PushIntIn 123; Return 1; PushIntIn 456; Return 1
	code := []bytecode.Instruction{
		asm.PushIntIn(7),     // 0, slot1 = 7
		asm.PushIntIn(11),    // 1, slot2 = 11
		asm.GetLocal(1),      // 2
		asm.GetLocal(2),      // 3
		asm.IntLt(),          // 4
		asm.JumpZero(2),      // 5: ip after fetch = 6; target 8; offset = 2
		asm.PushIntIn(123),   // 6
		asm.Return(1),        // 7
		asm.PushIntIn(456),   // 8
		asm.Return(1),        // 9
	}
	p, err := proto.New("main", code, 3, false, proto.Constants{}, nil)
	if err != nil {
		t.Fatalf("proto.New: %v", err)
	}

	results, err := New().Run(p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 || results[0].Int() != 123 {
		t.Fatalf("results = %v, want [Int(123)]", results)
	}
}

func TestDirectCall(t *testing.T) {
	// callee: Int_Add; Return 1
	calleeCode := []bytecode.Instruction{
		asm.IntAdd(),
		asm.Return(1),
	}
	callee, err := proto.New("adder", calleeCode, 3, false, proto.Constants{}, nil)
	if err != nil {
		t.Fatalf("proto.New(adder): %v", err)
	}

	// main: PushFunc adder; PushIntIn 7; PushIntIn 11; Call{base:1, results:1}; Return 1
	mainCode := []bytecode.Instruction{
		asm.PushFunc(0),
		asm.PushIntIn(7),
		asm.PushIntIn(11),
		asm.Call(1, 1),
		asm.Return(1),
	}
	main, err := proto.New("main", mainCode, 4, false, proto.Constants{Funcs: []*proto.FuncProto{callee}}, nil)
	if err != nil {
		t.Fatalf("proto.New(main): %v", err)
	}

	results, err := New().Run(main)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 || results[0].Int() != 18 {
		t.Fatalf("results = %v, want [Int(18)]", results)
	}
}

func TestRecursiveFibonacciWithCapturedSelf(t *testing.T) {
	// fib(n): if n > 1 { return fib(n-2) + fib(n-1) } else { return n }
	fibCode := []bytecode.Instruction{
		asm.GetLocal(1),    // 0: n
		asm.PushIntIn(1),   // 1
		asm.IntGt(),        // 2: n > 1
		asm.JumpZero(12),   // 3: ip after fetch = 4; target 16; offset 12
		asm.GetUpValue(0),  // 4: fib
		asm.GetLocal(1),    // 5: n
		asm.PushIntIn(2),   // 6
		asm.IntSub(),       // 7: n-2
		asm.Call(2, 1),     // 8: fib(n-2)
		asm.GetUpValue(0),  // 9: fib
		asm.GetLocal(1),    // 10: n
		asm.PushIntIn(1),   // 11
		asm.IntSub(),       // 12: n-1
		asm.Call(3, 1),     // 13: fib(n-1)
		asm.IntAdd(),       // 14
		asm.Return(1),      // 15
		asm.GetLocal(1),    // 16: base case: n
		asm.Return(1),      // 17
	}
	fib, err := proto.New("fib", fibCode, 6, false, proto.Constants{},
		[]proto.UpValueOrigin{{Kind: proto.Parent, Index: 1}})
	if err != nil {
		t.Fatalf("proto.New(fib): %v", err)
	}

	// main: reserve slot1, create fib closure capturing it, store it back,
	// drop the duplicate, call fib(5).
	mainCode := []bytecode.Instruction{
		asm.PushIntIn(0),     // 0: placeholder at slot1
		asm.CreateClosure(0), // 1: captures Parent(1)
		asm.SetLocal(1),      // 2: slot1 = closure (no pop)
		asm.Pop(1),           // 3: drop the duplicate on top
		asm.PushIntIn(5),     // 4: arg
		asm.Call(1, 1),       // 5: fib(5)
		asm.Return(1),        // 6
	}
	main, err := proto.New("main", mainCode, 3, false, proto.Constants{Funcs: []*proto.FuncProto{fib}}, nil)
	if err != nil {
		t.Fatalf("proto.New(main): %v", err)
	}

	results, err := New().Run(main)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 || results[0].Int() != 5 {
		t.Fatalf("fib(5) = %v, want [Int(5)]", results)
	}
}

func TestClosedUpValueOutlivesItsFrame(t *testing.T) {
	// inner: return the captured x
	innerCode := []bytecode.Instruction{
		asm.GetUpValue(0),
		asm.Return(1),
	}
	inner, err := proto.New("inner", innerCode, 1, false, proto.Constants{},
		[]proto.UpValueOrigin{{Kind: proto.Parent, Index: 1}})
	if err != nil {
		t.Fatalf("proto.New(inner): %v", err)
	}

	// outer: x = 42; return closure(inner) capturing x
	outerCode := []bytecode.Instruction{
		asm.PushIntIn(42),
		asm.CreateClosure(0),
		asm.Return(1),
	}
	outer, err := proto.New("outer", outerCode, 3, false, proto.Constants{Funcs: []*proto.FuncProto{inner}}, nil)
	if err != nil {
		t.Fatalf("proto.New(outer): %v", err)
	}

	// main: call outer() to get the inner closure, then call it, return its result.
	mainCode := []bytecode.Instruction{
		asm.PushFunc(0),
		asm.Call(1, 1),
		asm.Call(1, 1),
		asm.Return(1),
	}
	main, err := proto.New("main", mainCode, 3, false, proto.Constants{Funcs: []*proto.FuncProto{outer}}, nil)
	if err != nil {
		t.Fatalf("proto.New(main): %v", err)
	}

	results, err := New().Run(main)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 || results[0].Int() != 42 {
		t.Fatalf("results = %v, want [Int(42)]", results)
	}
}

func TestArityMismatch(t *testing.T) {
	calleeCode := []bytecode.Instruction{
		asm.PushIntIn(1),
		asm.Return(1),
	}
	callee, err := proto.New("one", calleeCode, 2, false, proto.Constants{}, nil)
	if err != nil {
		t.Fatalf("proto.New(one): %v", err)
	}

	mainCode := []bytecode.Instruction{
		asm.PushFunc(0),
		asm.Call(1, 2), // expects 2 results, callee returns 1
		asm.Return(2),
	}
	main, err := proto.New("main", mainCode, 3, false, proto.Constants{Funcs: []*proto.FuncProto{callee}}, nil)
	if err != nil {
		t.Fatalf("proto.New(main): %v", err)
	}

	m := New()
	_, err = m.Run(main)
	if err == nil {
		t.Fatal("expected an arity-mismatch error")
	}
	if m.StackLen() != 0 {
		t.Errorf("StackLen() = %d, want 0 after a failed run", m.StackLen())
	}
}

func TestIntDivideByZero(t *testing.T) {
	code := []bytecode.Instruction{
		asm.PushIntIn(1),
		asm.PushIntIn(0),
		asm.IntDiv(),
		asm.Return(1),
	}
	p, err := proto.New("main", code, 2, false, proto.Constants{}, nil)
	if err != nil {
		t.Fatalf("proto.New: %v", err)
	}

	m := New()
	if _, err := m.Run(p); err == nil {
		t.Fatal("expected a divide-by-zero error")
	}
	if m.StackLen() != 0 {
		t.Errorf("StackLen() = %d, want 0 after a failed run", m.StackLen())
	}
}

func TestMonomorphismRejectsMixedArithmetic(t *testing.T) {
	code := []bytecode.Instruction{
		asm.PushIntIn(1),
		asm.PushFloat(0),
		asm.IntAdd(),
		asm.Return(1),
	}
	p, err := proto.New("main", code, 2, false, proto.Constants{Floats: []float64{2.5}}, nil)
	if err != nil {
		t.Fatalf("proto.New: %v", err)
	}

	m := New()
	if _, err := m.Run(p); err == nil {
		t.Fatal("expected a type error mixing int and float operands")
	}
}
