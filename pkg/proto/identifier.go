package proto

import (
	"github.com/dlclark/regexp2"

	"crow/pkg/bytecode"
	"crow/pkg/vmerrors"
)

// identifierPattern mirrors the teacher's ECMAScript identifier matcher
// (used there to validate property names before interning them): a
// Unicode letter or underscore or dollar sign, followed by any number of
// Unicode letters, digits, underscores, or dollar signs. regexp2 is used
// rather than the standard library's regexp because \p{L} word-boundary
// classes need .NET-style Unicode category support that RE2 doesn't
// provide.
const identifierPattern = `^[\p{L}_$][\p{L}\p{N}_$]*$`

var identifierRe = regexp2.MustCompile(identifierPattern, regexp2.None)

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	ok, err := identifierRe.MatchString(s)
	return err == nil && ok
}

// Validate checks that every global name a prototype references via
// SetGlobal/GetGlobal is a legal identifier, recursing into nested
// function prototypes. New does not call it; a caller runs it on a
// constructed prototype to reject malformed global names before handing
// it to the VM, rather than leaving the VM to discover a garbage global
// name on first access.
func Validate(p *FuncProto) error {
	return validate(p, map[*FuncProto]bool{})
}

func validate(p *FuncProto, seen map[*FuncProto]bool) error {
	if seen[p] {
		return nil
	}
	seen[p] = true

	for ip, instr := range p.Code {
		switch instr.Op() {
		case bytecode.SetGlobal, bytecode.GetGlobal:
			idx := instr.U16()
			if int(idx) >= len(p.Constants.Strings) {
				continue // already reported by checkReferences
			}
			name := p.Constants.Strings[idx]
			if !isIdentifier(name) {
				return vmerrors.New("function prototype %q: ip %d: %q is not a legal global name", p.Name, ip, name)
			}
		}
	}

	for _, nested := range p.Constants.Funcs {
		if err := validate(nested, seen); err != nil {
			return err
		}
	}
	return nil
}
