package value

import (
	"fmt"
	"weak"
)

// Table is a string-keyed associative object. Most entries are strong
// (Set/Get): the table keeps its values alive. A table entry can instead
// be registered weak (SetWeak/GetWeak) for the rare case where the table
// forms one side of a reference cycle — e.g. a record that needs to
// point back at the closure that produced it — so that side of the edge
// doesn't keep the whole cycle permanently alive.
type Table struct {
	entries     map[string]Value
	weakEntries map[string]Weak[Object]
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Value)}
}

// Get returns the strong entry at key, if any.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Set stores a strong entry at key, overwriting any prior strong or weak
// entry there.
func (t *Table) Set(key string, v Value) {
	if t.weakEntries != nil {
		delete(t.weakEntries, key)
	}
	t.entries[key] = v
}

// SetWeak stores a weak back-reference to o at key, overwriting any prior
// entry there.
func (t *Table) SetWeak(key string, o *Object) {
	delete(t.entries, key)
	if t.weakEntries == nil {
		t.weakEntries = make(map[string]Weak[Object])
	}
	t.weakEntries[key] = Weak[Object]{weak: weak.Make(o)}
}

// GetWeak resolves the weak entry at key. ok is false if there is no
// such entry, or if the referent has since been collected.
func (t *Table) GetWeak(key string) (Value, bool) {
	w, present := t.weakEntries[key]
	if !present {
		return Value{}, false
	}
	h, ok := w.Upgrade()
	if !ok {
		delete(t.weakEntries, key)
		return Value{}, false
	}
	obj := h.Get()
	return ObjValue(obj), true
}

// Delete removes any entry (strong or weak) at key.
func (t *Table) Delete(key string) {
	delete(t.entries, key)
	if t.weakEntries != nil {
		delete(t.weakEntries, key)
	}
}

// Len returns the number of strong entries plus the number of weak
// entries whose referent is still live. Weak entries whose referent has
// been collected are not counted.
func (t *Table) Len() int {
	n := len(t.entries)
	for _, w := range t.weakEntries {
		if _, ok := w.Upgrade(); ok {
			n++
		}
	}
	return n
}

func (t *Table) String() string {
	return fmt.Sprintf("<table %d entries>", t.Len())
}
