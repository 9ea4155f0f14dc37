package guard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// holder mirrors the intended use: an erased guard stored as a member
// without the enclosing type knowing the payload.
type holder struct {
	cleanup *Key
}

func TestKeyRunsOnDrop(t *testing.T) {
	valA, valB := 1, 2
	h := holder{cleanup: NewKey(func() {
		valA = 2
		valB = 3
	})}
	require.Equal(t, 1, valA)
	require.Equal(t, 2, valB)

	h.cleanup.Drop()
	require.Equal(t, 2, valA)
	require.Equal(t, 3, valB)
}

func TestKeyDropExactlyOnce(t *testing.T) {
	n := 0
	k := NewKey(func() { n++ })
	k.Drop()
	k.Drop()
	require.Equal(t, 1, n)
}

func TestKeyDismiss(t *testing.T) {
	n := 0
	k := NewKey(func() { n++ })
	k.Dismiss()
	k.Drop()
	require.Equal(t, 0, n)
}

func TestKeyDismissReleasesPayload(t *testing.T) {
	p := new(int)
	k := Capture(p, func(q *int) { *q = 1 })
	k.Dismiss()
	k.Drop()
	require.Equal(t, 0, *p, "dismissed payload must not be invoked")
	require.Nil(t, k.payload, "dropped key must not keep the payload alive")
	require.Nil(t, k.fn)
}

func TestCaptureCarriesState(t *testing.T) {
	type counter struct {
		a int
		b bool
	}
	c := &counter{}
	k := Capture(c, func(c *counter) {
		c.a++
		c.b = !c.b
	})
	k.Drop()
	require.Equal(t, 1, c.a)
	require.True(t, c.b)
}

func TestKeyClose(t *testing.T) {
	n := 0
	k := NewKey(func() { n++ })
	require.NoError(t, k.Close())
	require.NoError(t, k.Close())
	require.Equal(t, 1, n)
}

func TestZeroKeyIsInert(t *testing.T) {
	k := &Key{}
	require.NotPanics(t, k.Drop)
	require.NoError(t, k.Close())
}

func TestKeyPanicPropagatesOnce(t *testing.T) {
	n := 0
	k := NewKey(func() {
		n++
		panic("boom")
	})
	require.Panics(t, k.Drop)
	require.NotPanics(t, k.Drop)
	require.Equal(t, 1, n)
	require.Nil(t, k.payload)
}

func TestKeyReleasesCapturedResource(t *testing.T) {
	// the guard holds the only extra reference; after Drop the key must
	// not pin it
	res := new(bool)
	*res = true
	k := Capture(res, func(r *bool) { *r = false })
	k.Drop()
	require.False(t, *res)
	require.Nil(t, k.payload)
}
