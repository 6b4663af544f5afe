package main

import (
	"fmt"
	"os"

	"crow/pkg/bytecode"
	"crow/pkg/bytecode/asm"
	"crow/pkg/proto"
	"crow/pkg/vm"
)

func main() {
	fmt.Println("--- Crow VM --- (hand-assembled demo)")

	fib, err := buildFib()
	if err != nil {
		fmt.Fprintln(os.Stderr, "assemble fib:", err)
		os.Exit(1)
	}

	main, err := buildMain(fib)
	if err != nil {
		fmt.Fprintln(os.Stderr, "assemble main:", err)
		os.Exit(1)
	}

	fmt.Println("--- Disassembly ---")
	fmt.Println(proto.Disassemble(main))
	fmt.Println("-------------------")

	results, err := vm.New().Run(main)
	if err != nil {
		fmt.Fprintln(os.Stderr, "run:", err)
		os.Exit(1)
	}

	fmt.Printf("--- Result: %v ---\n", results)
}

// buildFib assembles a recursive fib(n) = n <= 1 ? n : fib(n-1) + fib(n-2)
// that captures itself as a Parent up-value, exercising the flat-closure
// mechanism the rest of the demo's call depends on.
func buildFib() (*proto.FuncProto, error) {
	code := []bytecode.Instruction{
		asm.GetLocal(1),   // 0: n
		asm.PushIntIn(1),  // 1
		asm.IntGt(),       // 2: n > 1
		asm.JumpZero(12),  // 3: else branch
		asm.GetUpValue(0), // 4: fib
		asm.GetLocal(1),   // 5: n
		asm.PushIntIn(2),  // 6
		asm.IntSub(),      // 7: n-2
		asm.Call(2, 1),    // 8: fib(n-2)
		asm.GetUpValue(0), // 9: fib
		asm.GetLocal(1),   // 10: n
		asm.PushIntIn(1),  // 11
		asm.IntSub(),      // 12: n-1
		asm.Call(3, 1),    // 13: fib(n-1)
		asm.IntAdd(),      // 14
		asm.Return(1),     // 15
		asm.GetLocal(1),   // 16: base case: n
		asm.Return(1),     // 17
	}
	return proto.New("fib", code, 6, false, proto.Constants{},
		[]proto.UpValueOrigin{{Kind: proto.Parent, Index: 1}})
}

// buildMain wires a placeholder slot, closes fib over it so the recursive
// call can find itself, then calls fib(10).
func buildMain(fib *proto.FuncProto) (*proto.FuncProto, error) {
	code := []bytecode.Instruction{
		asm.PushIntIn(0),     // 0: placeholder at slot1
		asm.CreateClosure(0), // 1: captures Parent(1)
		asm.SetLocal(1),      // 2: slot1 = closure
		asm.Pop(1),           // 3: drop the duplicate SetLocal left behind
		asm.PushIntIn(10),    // 4: arg
		asm.Call(1, 1),       // 5: fib(10)
		asm.Return(1),        // 6
	}
	return proto.New("main", code, 3, false, proto.Constants{Funcs: []*proto.FuncProto{fib}}, nil)
}
