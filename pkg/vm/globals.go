package vm

import "crow/pkg/value"

// globals is the VM's single flat, name-indexed global table. Grounded on
// the teacher's Heap: a plain name -> value map, grown lazily, with no
// notion of scope — every SetGlobal/GetGlobal in every frame shares the
// same table.
type globals struct {
	values map[string]value.Value
}

func newGlobals() *globals {
	return &globals{values: make(map[string]value.Value)}
}

func (g *globals) get(name string) (value.Value, bool) {
	v, ok := g.values[name]
	return v, ok
}

func (g *globals) set(name string, v value.Value) {
	g.values[name] = v
}
