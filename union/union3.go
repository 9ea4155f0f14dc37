package union

// U3 is a discriminated union of three alternatives. The zero value
// holds a zero T0 at tag 0.
type U3[T0, T1, T2 any] struct {
	tag uint8
	a0  T0
	a1  T1
	a2  T2
}

// U3Of0 returns a U3 holding v at tag 0.
func U3Of0[T0, T1, T2 any](v T0) U3[T0, T1, T2] { return U3[T0, T1, T2]{tag: 0, a0: v} }

// U3Of1 returns a U3 holding v at tag 1.
func U3Of1[T0, T1, T2 any](v T1) U3[T0, T1, T2] { return U3[T0, T1, T2]{tag: 1, a1: v} }

// U3Of2 returns a U3 holding v at tag 2.
func U3Of2[T0, T1, T2 any](v T2) U3[T0, T1, T2] { return U3[T0, T1, T2]{tag: 2, a2: v} }

// Tag returns the index of the live alternative.
func (u U3[T0, T1, T2]) Tag() int { return int(u.tag) }

func (u U3[T0, T1, T2]) Get0() T0 {
	if u.tag != 0 {
		panic("union: alternative 0 is not live")
	}
	return u.a0
}

func (u U3[T0, T1, T2]) Get1() T1 {
	if u.tag != 1 {
		panic("union: alternative 1 is not live")
	}
	return u.a1
}

func (u U3[T0, T1, T2]) Get2() T2 {
	if u.tag != 2 {
		panic("union: alternative 2 is not live")
	}
	return u.a2
}

func (u *U3[T0, T1, T2]) Ptr0() *T0 {
	if u.tag != 0 {
		return nil
	}
	return &u.a0
}

func (u *U3[T0, T1, T2]) Ptr1() *T1 {
	if u.tag != 1 {
		return nil
	}
	return &u.a1
}

func (u *U3[T0, T1, T2]) Ptr2() *T2 {
	if u.tag != 2 {
		return nil
	}
	return &u.a2
}

func (u *U3[T0, T1, T2]) Set0(v T0) { *u = U3[T0, T1, T2]{tag: 0, a0: v} }
func (u *U3[T0, T1, T2]) Set1(v T1) { *u = U3[T0, T1, T2]{tag: 1, a1: v} }
func (u *U3[T0, T1, T2]) Set2(v T2) { *u = U3[T0, T1, T2]{tag: 2, a2: v} }

// Value returns the live alternative boxed as any.
func (u U3[T0, T1, T2]) Value() any {
	switch u.tag {
	case 0:
		return u.a0
	case 1:
		return u.a1
	default:
		return u.a2
	}
}

// Take returns the union and resets the source to its zero value.
func (u *U3[T0, T1, T2]) Take() U3[T0, T1, T2] {
	out := *u
	*u = U3[T0, T1, T2]{}
	return out
}

// Visitor3 receives the live alternative of a U3.
type Visitor3[T0, T1, T2 any] interface {
	Case0(T0)
	Case1(T1)
	Case2(T2)
}

// Visit dispatches the live alternative to vis.
func (u U3[T0, T1, T2]) Visit(vis Visitor3[T0, T1, T2]) {
	switch u.tag {
	case 0:
		vis.Case0(u.a0)
	case 1:
		vis.Case1(u.a1)
	default:
		vis.Case2(u.a2)
	}
}

// Cases3 composes per-alternative funcs into a Visitor3.
type Cases3[T0, T1, T2 any] struct {
	On0 func(T0)
	On1 func(T1)
	On2 func(T2)
}

func (c Cases3[T0, T1, T2]) Case0(v T0) { c.On0(v) }
func (c Cases3[T0, T1, T2]) Case1(v T1) { c.On1(v) }
func (c Cases3[T0, T1, T2]) Case2(v T2) { c.On2(v) }

// Match3 calls the handler for the live alternative and returns its
// result.
func Match3[R, T0, T1, T2 any](u U3[T0, T1, T2], f0 func(T0) R, f1 func(T1) R, f2 func(T2) R) R {
	switch u.tag {
	case 0:
		return f0(u.a0)
	case 1:
		return f1(u.a1)
	default:
		return f2(u.a2)
	}
}
