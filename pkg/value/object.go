package value

import "crow/pkg/proto"

// ObjectTag distinguishes the variants a heap Object can be.
type ObjectTag uint8

const (
	TagClosure ObjectTag = iota
	TagFuncProto
	TagString
	TagTable
)

func (t ObjectTag) String() string {
	switch t {
	case TagClosure:
		return "closure"
	case TagFuncProto:
		return "funcproto"
	case TagString:
		return "string"
	case TagTable:
		return "table"
	default:
		return "unknown"
	}
}

// Object is the tagged union backing Value's ObjectKind arm. Only one of
// Closure, Proto, Str, Table is non-nil, selected by Tag.
type Object struct {
	Tag     ObjectTag
	Closure *Closure
	Proto   *proto.FuncProto
	Str     *Str
	Table   *Table
}

func (o *Object) String() string {
	switch o.Tag {
	case TagClosure:
		return o.Closure.String()
	case TagFuncProto:
		return "<func " + o.Proto.Name + ">"
	case TagString:
		return o.Str.String()
	case TagTable:
		return o.Table.String()
	default:
		return "<invalid object>"
	}
}

// ClosureObject boxes a *Closure as a heap Object/Value.
func ClosureObject(c *Closure) *Object { return &Object{Tag: TagClosure, Closure: c} }

// FuncProtoObject boxes a raw *proto.FuncProto as a heap Object/Value, with
// no up-values resolved. PushFunc produces these; CreateClosure is the only
// opcode that turns a prototype into a closure with captured up-values.
func FuncProtoObject(p *proto.FuncProto) *Object { return &Object{Tag: TagFuncProto, Proto: p} }

// StringObject boxes a *Str as a heap Object/Value.
func StringObject(s *Str) *Object { return &Object{Tag: TagString, Str: s} }

// TableObject boxes a *Table as a heap Object/Value.
func TableObject(t *Table) *Object { return &Object{Tag: TagTable, Table: t} }
