// Package value implements the VM's tagged value union and its object
// model: closures, strings, tables, and the shared/weak handle machinery
// cyclic object graphs need to avoid leaking memory.
package value

import "fmt"

// Kind tags which arm of a Value is live.
type Kind uint8

const (
	Int Kind = iota
	UInt
	Float
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Float:
		return "float"
	case ObjectKind:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a small tagged union: exactly one of its arms is meaningful,
// selected by kind. It is always passed and stored by value, never by
// pointer — the stack is a plain []Value.
type Value struct {
	kind Kind
	bits uint64
	obj  *Object
}

// IntValue wraps a signed integer.
func IntValue(i int64) Value {
	return Value{kind: Int, bits: uint64(i)}
}

// UIntValue wraps an unsigned integer.
func UIntValue(u uint64) Value {
	return Value{kind: UInt, bits: u}
}

// FloatValue wraps an IEEE-754 double.
func FloatValue(f float64) Value {
	return Value{kind: Float, bits: floatBits(f)}
}

// ObjValue wraps a reference to a heap object.
func ObjValue(o *Object) Value {
	return Value{kind: ObjectKind, obj: o}
}

// Kind reports which arm of the value is live.
func (v Value) Kind() Kind { return v.kind }

// Int returns the value's integer arm. Callers must check Kind first;
// Int does not itself validate the tag.
func (v Value) Int() int64 { return int64(v.bits) }

// UInt returns the value's unsigned-integer arm.
func (v Value) UInt() uint64 { return v.bits }

// Float returns the value's float arm.
func (v Value) Float() float64 { return floatFromBits(v.bits) }

// Object returns the value's object arm, or nil if this value is not an
// object.
func (v Value) Object() *Object {
	if v.kind != ObjectKind {
		return nil
	}
	return v.obj
}

func (v Value) String() string {
	switch v.kind {
	case Int:
		return fmt.Sprintf("%d", v.Int())
	case UInt:
		return fmt.Sprintf("%d", v.UInt())
	case Float:
		return fmt.Sprintf("%g", v.Float())
	case ObjectKind:
		if v.obj == nil {
			return "<nil object>"
		}
		return v.obj.String()
	default:
		return "<invalid value>"
	}
}
