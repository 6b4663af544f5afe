package value

import (
	"fmt"

	"crow/pkg/proto"
	"crow/pkg/vmerrors"
)

// Closure pairs a function prototype with the up-value cells captured at
// the moment the closure was created. Two closures stamped from the same
// FuncProto are independent objects with independent up-value vectors;
// the prototype itself is immutable and shared.
type Closure struct {
	Proto    *proto.FuncProto
	UpValues []Handle[UpValueCell]
}

// NewClosure builds a closure, checking that the supplied up-value cells
// match the prototype's up-value table in count.
func NewClosure(p *proto.FuncProto, upValues []Handle[UpValueCell]) (*Closure, error) {
	if len(upValues) != len(p.UpValues) {
		return nil, vmerrors.New("closure over %q: expected %d up-values, got %d", p.Name, len(p.UpValues), len(upValues))
	}
	return &Closure{Proto: p, UpValues: upValues}, nil
}

func (c *Closure) String() string {
	name := c.Proto.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<closure %s>", name)
}
