package union

import (
	"reflect"
	"sync"
)

// First-fit resolution: an exact dynamic-type match against the
// alternatives in declaration order wins; otherwise the first
// alternative the value converts to is chosen. The fallback inherits
// Go's conversion rules and keeps the rule's known ambiguity: an int
// value lands in a float64 alternative declared before a string one, a
// string value lands in a []byte alternative declared before it. Callers
// who need a specific alternative should use the Of/Set forms.
//
// Resolution depends only on the argument's dynamic type and the
// alternative set, so the outcome is cached per pair.

type altSet [4]reflect.Type

type fitKey struct {
	arg reflect.Type
	set altSet
}

type fit struct {
	idx     int // -1 when no alternative is viable
	convert bool
}

var (
	fitMu    sync.RWMutex
	fitCache = make(map[fitKey]fit)
)

func resolve(v any, set altSet) (int, reflect.Value, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		// untyped nil matches nothing
		return 0, reflect.Value{}, ErrNoAlternative
	}
	key := fitKey{arg: t, set: set}

	fitMu.RLock()
	d, ok := fitCache[key]
	fitMu.RUnlock()
	if !ok {
		d = fit{idx: -1}
		for i, alt := range set {
			if t == alt {
				d = fit{idx: i}
				break
			}
		}
		if d.idx < 0 {
			for i, alt := range set {
				if alt != nil && t.ConvertibleTo(alt) {
					d = fit{idx: i, convert: true}
					break
				}
			}
		}
		fitMu.Lock()
		fitCache[key] = d
		fitMu.Unlock()
	}

	if d.idx < 0 {
		return 0, reflect.Value{}, ErrNoAlternative
	}
	rv := reflect.ValueOf(v)
	if d.convert {
		rv = rv.Convert(set[d.idx])
	}
	return d.idx, rv, nil
}

// MakeU2 constructs a U2 from v by first fit.
func MakeU2[T0, T1 any](v any) (U2[T0, T1], error) {
	idx, rv, err := resolve(v, altSet{reflect.TypeFor[T0](), reflect.TypeFor[T1]()})
	if err != nil {
		return U2[T0, T1]{}, err
	}
	switch idx {
	case 0:
		return U2Of0[T0, T1](rv.Interface().(T0)), nil
	default:
		return U2Of1[T0, T1](rv.Interface().(T1)), nil
	}
}

// MakeU3 constructs a U3 from v by first fit.
func MakeU3[T0, T1, T2 any](v any) (U3[T0, T1, T2], error) {
	idx, rv, err := resolve(v, altSet{
		reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2](),
	})
	if err != nil {
		return U3[T0, T1, T2]{}, err
	}
	switch idx {
	case 0:
		return U3Of0[T0, T1, T2](rv.Interface().(T0)), nil
	case 1:
		return U3Of1[T0, T1, T2](rv.Interface().(T1)), nil
	default:
		return U3Of2[T0, T1, T2](rv.Interface().(T2)), nil
	}
}

// MakeU4 constructs a U4 from v by first fit.
func MakeU4[T0, T1, T2, T3 any](v any) (U4[T0, T1, T2, T3], error) {
	idx, rv, err := resolve(v, altSet{
		reflect.TypeFor[T0](), reflect.TypeFor[T1](),
		reflect.TypeFor[T2](), reflect.TypeFor[T3](),
	})
	if err != nil {
		return U4[T0, T1, T2, T3]{}, err
	}
	switch idx {
	case 0:
		return U4Of0[T0, T1, T2, T3](rv.Interface().(T0)), nil
	case 1:
		return U4Of1[T0, T1, T2, T3](rv.Interface().(T1)), nil
	case 2:
		return U4Of2[T0, T1, T2, T3](rv.Interface().(T2)), nil
	default:
		return U4Of3[T0, T1, T2, T3](rv.Interface().(T3)), nil
	}
}

// Assign replaces the live alternative with v by the same first-fit rule
// as MakeU2. On error the union is unchanged.
func (u *U2[T0, T1]) Assign(v any) error {
	m, err := MakeU2[T0, T1](v)
	if err != nil {
		return err
	}
	*u = m
	return nil
}

// Assign replaces the live alternative with v by first fit. On error the
// union is unchanged.
func (u *U3[T0, T1, T2]) Assign(v any) error {
	m, err := MakeU3[T0, T1, T2](v)
	if err != nil {
		return err
	}
	*u = m
	return nil
}

// Assign replaces the live alternative with v by first fit. On error the
// union is unchanged.
func (u *U4[T0, T1, T2, T3]) Assign(v any) error {
	m, err := MakeU4[T0, T1, T2, T3](v)
	if err != nil {
		return err
	}
	*u = m
	return nil
}
