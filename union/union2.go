package union

// U2 is a discriminated union of two alternatives. The zero value holds
// a zero T0 at tag 0.
type U2[T0, T1 any] struct {
	tag uint8
	a0  T0
	a1  T1
}

// U2Of0 returns a U2 holding v at tag 0.
func U2Of0[T0, T1 any](v T0) U2[T0, T1] { return U2[T0, T1]{tag: 0, a0: v} }

// U2Of1 returns a U2 holding v at tag 1.
func U2Of1[T0, T1 any](v T1) U2[T0, T1] { return U2[T0, T1]{tag: 1, a1: v} }

// Tag returns the index of the live alternative.
func (u U2[T0, T1]) Tag() int { return int(u.tag) }

// Get0 returns alternative 0. Calling it with a different tag live is a
// programming error and panics.
func (u U2[T0, T1]) Get0() T0 {
	if u.tag != 0 {
		panic("union: alternative 0 is not live")
	}
	return u.a0
}

// Get1 returns alternative 1, panicking when it is not live.
func (u U2[T0, T1]) Get1() T1 {
	if u.tag != 1 {
		panic("union: alternative 1 is not live")
	}
	return u.a1
}

// Ptr0 returns a pointer to alternative 0 for in-place mutation, or nil
// when it is not live.
func (u *U2[T0, T1]) Ptr0() *T0 {
	if u.tag != 0 {
		return nil
	}
	return &u.a0
}

// Ptr1 returns a pointer to alternative 1, or nil when it is not live.
func (u *U2[T0, T1]) Ptr1() *T1 {
	if u.tag != 1 {
		return nil
	}
	return &u.a1
}

// Set0 releases the live alternative and installs v at tag 0.
func (u *U2[T0, T1]) Set0(v T0) { *u = U2[T0, T1]{tag: 0, a0: v} }

// Set1 releases the live alternative and installs v at tag 1.
func (u *U2[T0, T1]) Set1(v T1) { *u = U2[T0, T1]{tag: 1, a1: v} }

// Value returns the live alternative boxed as any.
func (u U2[T0, T1]) Value() any {
	if u.tag == 0 {
		return u.a0
	}
	return u.a1
}

// Take returns the union and resets the source to its zero value, so a
// shared alternative is transferred rather than duplicated.
func (u *U2[T0, T1]) Take() U2[T0, T1] {
	out := *u
	*u = U2[T0, T1]{}
	return out
}

// Visitor2 receives the live alternative of a U2.
type Visitor2[T0, T1 any] interface {
	Case0(T0)
	Case1(T1)
}

// Visit dispatches the live alternative to vis.
func (u U2[T0, T1]) Visit(vis Visitor2[T0, T1]) {
	if u.tag == 0 {
		vis.Case0(u.a0)
		return
	}
	vis.Case1(u.a1)
}

// Cases2 composes per-alternative funcs into a Visitor2.
type Cases2[T0, T1 any] struct {
	On0 func(T0)
	On1 func(T1)
}

func (c Cases2[T0, T1]) Case0(v T0) { c.On0(v) }
func (c Cases2[T0, T1]) Case1(v T1) { c.On1(v) }

// Match2 calls the handler for the live alternative and returns its
// result.
func Match2[R, T0, T1 any](u U2[T0, T1], f0 func(T0) R, f1 func(T1) R) R {
	if u.tag == 0 {
		return f0(u.a0)
	}
	return f1(u.a1)
}
