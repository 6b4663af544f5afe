package bytecode

import "testing"

func TestArg24RoundTripSigned(t *testing.T) {
	cases := []int64{0, 1, -1, 42, arg24Max, arg24Min, -100, 8388607}

	for _, v := range cases {
		a, err := Arg24FromInt64(v)
		if err != nil {
			t.Fatalf("Arg24FromInt64(%d): %v", v, err)
		}
		if got := a.Int64(); got != v {
			t.Errorf("Arg24FromInt64(%d).Int64() = %d, want %d", v, got, v)
		}
	}
}

func TestArg24SignedOutOfRange(t *testing.T) {
	if _, err := Arg24FromInt64(arg24Max + 1); err == nil {
		t.Error("expected error encoding arg24Max+1")
	}
	if _, err := Arg24FromInt64(arg24Min - 1); err == nil {
		t.Error("expected error encoding arg24Min-1")
	}
}

func TestArg24RoundTripUnsigned(t *testing.T) {
	cases := []uint32{0, 1, 42, arg24UMax}

	for _, v := range cases {
		a, err := Arg24FromUint32(v)
		if err != nil {
			t.Fatalf("Arg24FromUint32(%d): %v", v, err)
		}
		if got := a.Uint32(); got != v {
			t.Errorf("Arg24FromUint32(%d).Uint32() = %d, want %d", v, got, v)
		}
	}
}

func TestArg24UnsignedOutOfRange(t *testing.T) {
	if _, err := Arg24FromUint32(arg24UMax + 1); err == nil {
		t.Error("expected error encoding arg24UMax+1")
	}
}

func TestInstructionSize(t *testing.T) {
	var i Instruction
	if len(i) != 4 {
		t.Errorf("Instruction size = %d, want 4", len(i))
	}
}

func TestInstructionShapes(t *testing.T) {
	i := FromU16U8(Call, 7, 2)
	base, results := i.U16U8()
	if base != 7 || results != 2 {
		t.Errorf("Call payload = (%d, %d), want (7, 2)", base, results)
	}
	if i.Op() != Call {
		t.Errorf("Op() = %v, want Call", i.Op())
	}

	j := FromU8U16(CaptureValue, 1, 300)
	kind, index := j.U8U16()
	if kind != 1 || index != 300 {
		t.Errorf("CaptureValue payload = (%d, %d), want (1, 300)", kind, index)
	}

	k := FromArg24(Jump, mustArg24(-5))
	if k.Arg24().Int64() != -5 {
		t.Errorf("Jump addr = %d, want -5", k.Arg24().Int64())
	}
}

func mustArg24(v int64) Arg24 {
	a, err := Arg24FromInt64(v)
	if err != nil {
		panic(err)
	}
	return a
}

func TestOpCodeString(t *testing.T) {
	if IntAdd.String() != "int_add" {
		t.Errorf("IntAdd.String() = %q, want %q", IntAdd.String(), "int_add")
	}
	if !IntAdd.IsValid() {
		t.Error("IntAdd should be valid")
	}
	if OpCode(255).IsValid() {
		t.Error("255 should not be a valid opcode")
	}
}
