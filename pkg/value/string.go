package value

import "golang.org/x/text/unicode/norm"

// Str is the VM's boxed string object. Its content is always stored in
// Unicode Normalization Form C: a string constant is normalized each time
// NewStr boxes it, and every Str_Concat result is renormalized, so that
// two strings built from differently-composed but canonically equivalent
// code points compare and hash identically once they reach a Table key.
type Str struct {
	s string
}

// NewStr boxes s, normalizing it to NFC first.
func NewStr(s string) *Str {
	return &Str{s: norm.NFC.String(s)}
}

// Go returns the string's content as a plain Go string.
func (s *Str) Go() string { return s.s }

func (s *Str) String() string { return s.s }

// Concat returns a new, NFC-normalized string holding a followed by b.
// Concat renormalizes the combined text rather than the two operands
// separately, since NFC composition is not guaranteed to distribute over
// concatenation at the boundary between them.
func Concat(a, b *Str) *Str {
	return &Str{s: norm.NFC.String(a.s + b.s)}
}

// Slice returns the substring of s between byte offsets [start, end).
// Offsets are byte offsets into the NFC-normalized form, not rune counts.
func Slice(s *Str, start, end int) (*Str, bool) {
	if start < 0 || end < start || end > len(s.s) {
		return nil, false
	}
	return &Str{s: s.s[start:end]}, true
}

// Len returns the string's length in bytes.
func (s *Str) Len() int { return len(s.s) }
