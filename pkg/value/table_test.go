package value

import "testing"

func TestTableSetGet(t *testing.T) {
	tbl := NewTable()
	tbl.Set("x", IntValue(10))

	v, ok := tbl.Get("x")
	if !ok || v.Int() != 10 {
		t.Fatalf("Get(x) = (%v, %v), want (10, true)", v, ok)
	}

	if _, ok := tbl.Get("missing"); ok {
		t.Error("Get(missing) should report false")
	}
}

func TestTableWeakEntrySurvivesWhileReferenced(t *testing.T) {
	tbl := NewTable()
	s := NewStr("kept alive by this local")
	obj := StringObject(s)
	tbl.SetWeak("back", obj)

	v, ok := tbl.GetWeak("back")
	if !ok {
		t.Fatal("expected weak entry to resolve while referent is reachable")
	}
	if v.Object().Str.Go() != s.Go() {
		t.Errorf("resolved weak entry = %q, want %q", v.Object().Str.Go(), s.Go())
	}
}

func TestTableSetOverwritesWeak(t *testing.T) {
	tbl := NewTable()
	obj := StringObject(NewStr("a"))
	tbl.SetWeak("k", obj)
	tbl.Set("k", IntValue(1))

	if _, ok := tbl.GetWeak("k"); ok {
		t.Error("Set should clear a prior weak entry at the same key")
	}
	v, ok := tbl.Get("k")
	if !ok || v.Int() != 1 {
		t.Errorf("Get(k) = (%v, %v), want (1, true)", v, ok)
	}
}

func TestTableDelete(t *testing.T) {
	tbl := NewTable()
	tbl.Set("k", IntValue(1))
	tbl.Delete("k")
	if _, ok := tbl.Get("k"); ok {
		t.Error("expected k to be gone after Delete")
	}
}
