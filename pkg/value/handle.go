package value

import "weak"

// Handle is a strong reference to a heap-allocated T. Unlike the
// reference-counted Rc<RefCell<T>> the reference implementation built
// this on, Handle needs no manual refcounting: Go's tracing garbage
// collector already reclaims a T once every strong Handle to it is gone.
// Handle exists at all so object-graph code (Table entries, closure
// up-values) has a named, cloneable "shared reference" type instead of
// passing bare *T around, and so Weak has something to degrade from.
type Handle[T any] struct {
	ptr *T
}

// NewHandle allocates a new strong handle around v.
func NewHandle[T any](v T) Handle[T] {
	return Handle[T]{ptr: &v}
}

// Get returns the underlying pointer. A zero-value Handle returns nil.
func (h Handle[T]) Get() *T { return h.ptr }

// Valid reports whether the handle points at an object.
func (h Handle[T]) Valid() bool { return h.ptr != nil }

// PtrEqual reports whether two handles refer to the same underlying
// object.
func (h Handle[T]) PtrEqual(other Handle[T]) bool { return h.ptr == other.ptr }

// Downgrade produces a Weak reference that does not keep the object
// alive on its own.
func (h Handle[T]) Downgrade() Weak[T] {
	return Weak[T]{weak: weak.Make(h.ptr)}
}

// Weak is a non-owning reference to a T, built on the standard library's
// weak pointer support. It is how the object graph breaks reference
// cycles: a Table that points back at an enclosing Closure (or vice
// versa) holds a Weak instead of a Handle, so the cycle doesn't keep
// either side artificially alive.
type Weak[T any] struct {
	weak weak.Pointer[T]
}

// Upgrade attempts to recover a strong Handle. It fails (ok == false)
// once the garbage collector has reclaimed the target.
func (w Weak[T]) Upgrade() (h Handle[T], ok bool) {
	ptr := w.weak.Value()
	if ptr == nil {
		return Handle[T]{}, false
	}
	return Handle[T]{ptr: ptr}, true
}
