// Package union implements closed discriminated unions of two to four
// alternatives, stored in place with an integer tag selecting the live
// one.
//
// The zero value of every union has tag 0 and holds the zero value of
// its first alternative. Switching alternatives rewrites the whole
// union, so the dead alternative's field is released in the same
// assignment; exactly one alternative is ever observable.
//
// Access comes in three flavors: unchecked by index (Get0, Get1, ...)
// which panics when the tag does not match, checked by index (Ptr0, ...)
// which returns a nil pointer on a tag mismatch, and checked by type
// (As) over the boxed live alternative. Visitation dispatches through an
// interface visitor (Visit), through positional handlers with a result
// (Match2, Match3, Match4), or through a Cases struct composing
// per-alternative funcs into a visitor.
package union

import "errors"

// ErrNoAlternative is returned by the Make* constructors and Assign when
// no alternative accepts the supplied value.
var ErrNoAlternative = errors.New("union: no viable alternative for value")

// Union is the surface every union in this package shares: the current
// tag and the live alternative boxed as any.
type Union interface {
	Tag() int
	Value() any
}

// As returns the live alternative of u as an E when the dynamic type
// matches, in the manner of a checked type-based access.
func As[E any](u Union) (E, bool) {
	e, ok := u.Value().(E)
	return e, ok
}
