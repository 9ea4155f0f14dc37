package union

// U4 is a discriminated union of four alternatives. The zero value holds
// a zero T0 at tag 0.
type U4[T0, T1, T2, T3 any] struct {
	tag uint8
	a0  T0
	a1  T1
	a2  T2
	a3  T3
}

// U4Of0 returns a U4 holding v at tag 0.
func U4Of0[T0, T1, T2, T3 any](v T0) U4[T0, T1, T2, T3] { return U4[T0, T1, T2, T3]{tag: 0, a0: v} }

// U4Of1 returns a U4 holding v at tag 1.
func U4Of1[T0, T1, T2, T3 any](v T1) U4[T0, T1, T2, T3] { return U4[T0, T1, T2, T3]{tag: 1, a1: v} }

// U4Of2 returns a U4 holding v at tag 2.
func U4Of2[T0, T1, T2, T3 any](v T2) U4[T0, T1, T2, T3] { return U4[T0, T1, T2, T3]{tag: 2, a2: v} }

// U4Of3 returns a U4 holding v at tag 3.
func U4Of3[T0, T1, T2, T3 any](v T3) U4[T0, T1, T2, T3] { return U4[T0, T1, T2, T3]{tag: 3, a3: v} }

// Tag returns the index of the live alternative.
func (u U4[T0, T1, T2, T3]) Tag() int { return int(u.tag) }

func (u U4[T0, T1, T2, T3]) Get0() T0 {
	if u.tag != 0 {
		panic("union: alternative 0 is not live")
	}
	return u.a0
}

func (u U4[T0, T1, T2, T3]) Get1() T1 {
	if u.tag != 1 {
		panic("union: alternative 1 is not live")
	}
	return u.a1
}

func (u U4[T0, T1, T2, T3]) Get2() T2 {
	if u.tag != 2 {
		panic("union: alternative 2 is not live")
	}
	return u.a2
}

func (u U4[T0, T1, T2, T3]) Get3() T3 {
	if u.tag != 3 {
		panic("union: alternative 3 is not live")
	}
	return u.a3
}

func (u *U4[T0, T1, T2, T3]) Ptr0() *T0 {
	if u.tag != 0 {
		return nil
	}
	return &u.a0
}

func (u *U4[T0, T1, T2, T3]) Ptr1() *T1 {
	if u.tag != 1 {
		return nil
	}
	return &u.a1
}

func (u *U4[T0, T1, T2, T3]) Ptr2() *T2 {
	if u.tag != 2 {
		return nil
	}
	return &u.a2
}

func (u *U4[T0, T1, T2, T3]) Ptr3() *T3 {
	if u.tag != 3 {
		return nil
	}
	return &u.a3
}

func (u *U4[T0, T1, T2, T3]) Set0(v T0) { *u = U4[T0, T1, T2, T3]{tag: 0, a0: v} }
func (u *U4[T0, T1, T2, T3]) Set1(v T1) { *u = U4[T0, T1, T2, T3]{tag: 1, a1: v} }
func (u *U4[T0, T1, T2, T3]) Set2(v T2) { *u = U4[T0, T1, T2, T3]{tag: 2, a2: v} }
func (u *U4[T0, T1, T2, T3]) Set3(v T3) { *u = U4[T0, T1, T2, T3]{tag: 3, a3: v} }

// Value returns the live alternative boxed as any.
func (u U4[T0, T1, T2, T3]) Value() any {
	switch u.tag {
	case 0:
		return u.a0
	case 1:
		return u.a1
	case 2:
		return u.a2
	default:
		return u.a3
	}
}

// Take returns the union and resets the source to its zero value.
func (u *U4[T0, T1, T2, T3]) Take() U4[T0, T1, T2, T3] {
	out := *u
	*u = U4[T0, T1, T2, T3]{}
	return out
}

// Visitor4 receives the live alternative of a U4.
type Visitor4[T0, T1, T2, T3 any] interface {
	Case0(T0)
	Case1(T1)
	Case2(T2)
	Case3(T3)
}

// Visit dispatches the live alternative to vis.
func (u U4[T0, T1, T2, T3]) Visit(vis Visitor4[T0, T1, T2, T3]) {
	switch u.tag {
	case 0:
		vis.Case0(u.a0)
	case 1:
		vis.Case1(u.a1)
	case 2:
		vis.Case2(u.a2)
	default:
		vis.Case3(u.a3)
	}
}

// Cases4 composes per-alternative funcs into a Visitor4.
type Cases4[T0, T1, T2, T3 any] struct {
	On0 func(T0)
	On1 func(T1)
	On2 func(T2)
	On3 func(T3)
}

func (c Cases4[T0, T1, T2, T3]) Case0(v T0) { c.On0(v) }
func (c Cases4[T0, T1, T2, T3]) Case1(v T1) { c.On1(v) }
func (c Cases4[T0, T1, T2, T3]) Case2(v T2) { c.On2(v) }
func (c Cases4[T0, T1, T2, T3]) Case3(v T3) { c.On3(v) }

// Match4 calls the handler for the live alternative and returns its
// result.
func Match4[R, T0, T1, T2, T3 any](u U4[T0, T1, T2, T3], f0 func(T0) R, f1 func(T1) R, f2 func(T2) R, f3 func(T3) R) R {
	switch u.tag {
	case 0:
		return f0(u.a0)
	case 1:
		return f1(u.a1)
	case 2:
		return f2(u.a2)
	default:
		return f3(u.a3)
	}
}
