package union

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestMakeExactMatch(t *testing.T) {
	u, err := MakeU3[int, string, float64](2.0)
	require.NoError(t, err)
	require.Equal(t, 2, u.Tag())
	require.Equal(t, 2.0, u.Get2())

	u2, err := MakeU3[int, string, float64]("hello")
	require.NoError(t, err)
	require.Equal(t, 1, u2.Tag())
	require.Equal(t, "hello", u2.Get1())

	u3, err := MakeU3[int, string, float64](7)
	require.NoError(t, err)
	require.Equal(t, 0, u3.Tag())
}

func TestMakeExactBeatsConversion(t *testing.T) {
	// string converts to []byte, but an exact match anywhere in the
	// set wins over a conversion to an earlier alternative
	u, err := MakeU2[[]byte, string]("hi")
	require.NoError(t, err)
	require.Equal(t, 1, u.Tag())
	require.Equal(t, "hi", u.Get1())
}

func TestMakeFirstFitConversion(t *testing.T) {
	// no exact match: the first convertible alternative in declaration
	// order takes the value, ambiguity and all
	u, err := MakeU2[float64, string](7)
	require.NoError(t, err)
	require.Equal(t, 0, u.Tag())
	require.Equal(t, 7.0, u.Get0())

	// string lands in a []byte alternative declared before int
	u2, err := MakeU2[[]byte, int]("hi")
	require.NoError(t, err)
	require.Equal(t, 0, u2.Tag())
	require.Equal(t, []byte("hi"), u2.Get0())

	// int32 converts to both; first fit picks the earlier one
	u3, err := MakeU3[int64, float64, string](int32(5))
	require.NoError(t, err)
	require.Equal(t, 0, u3.Tag())
	require.Equal(t, int64(5), u3.Get0())
}

func TestMakeInterfaceAlternative(t *testing.T) {
	// concrete types convert to interface alternatives they implement
	u, err := MakeU2[int, error](assertErr{})
	require.NoError(t, err)
	require.Equal(t, 1, u.Tag())
	require.EqualError(t, u.Get1(), "boom")
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestMakeNoViableAlternative(t *testing.T) {
	_, err := MakeU2[int, float64]("text")
	require.ErrorIs(t, err, ErrNoAlternative)

	_, err = MakeU2[int, string](nil)
	require.ErrorIs(t, err, ErrNoAlternative)

	u4, err := MakeU4[int, string, float64, bool](struct{ x int }{1})
	require.ErrorIs(t, err, ErrNoAlternative)
	require.Equal(t, 0, u4.Tag())
}

func TestAssign(t *testing.T) {
	u, err := MakeU3[int, string, float64](2.0)
	require.NoError(t, err)
	require.Equal(t, 2, u.Tag())

	require.NoError(t, u.Assign("hello"))
	require.Equal(t, 1, u.Tag())
	require.Equal(t, "hello", u.Get1())

	// failed assign leaves the union unchanged
	require.ErrorIs(t, u.Assign(nil), ErrNoAlternative)
	require.Equal(t, 1, u.Tag())
	require.Equal(t, "hello", u.Get1())
}

func TestResolutionIsCached(t *testing.T) {
	// same (value type, alternative set) twice must agree; exercises
	// the cache hit path
	for range 2 {
		u, err := MakeU4[int, string, float64, bool](true)
		require.NoError(t, err)
		require.Equal(t, 3, u.Tag())
	}
	// a different alternative order is a different cache entry
	u, err := MakeU4[bool, string, float64, int](true)
	require.NoError(t, err)
	require.Equal(t, 0, u.Tag())
}

func TestMakeValueRoundTripProperty(t *testing.T) {
	cond := func(pick bool, i int, s string) bool {
		var u U2[int, string]
		var err error
		if pick {
			u, err = MakeU2[int, string](i)
		} else {
			u, err = MakeU2[int, string](s)
		}
		if err != nil {
			return false
		}
		if pick {
			return u.Tag() == 0 && u.Value() == any(i)
		}
		return u.Tag() == 1 && u.Value() == any(s)
	}
	require.NoError(t, quick.Check(cond, nil))
}
