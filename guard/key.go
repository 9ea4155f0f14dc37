package guard

// Key is the type-erased guard: one heap handle regardless of the
// payload's type, so it can live as a struct member next to guards
// created elsewhere.
//
// The payload and its invoker are boxed, and dispatch goes through a
// trampoline that is an instantiation of a package-level generic
// function: a plain function value with no captures. Dismiss clears the
// trampoline, trading a nil check in Drop for never calling into a
// dismissed payload.
type Key struct {
	trampoline func(fn, payload any)
	fn         any
	payload    any
}

// trampoline for payload type P; the instantiation remembers P the way a
// hand-written shim would.
func invoke[P any](fn, payload any) {
	fn.(func(P))(payload.(P))
}

func runTarget(target func()) { target() }

// NewKey returns an erased guard that runs target on Drop.
func NewKey(target func()) *Key {
	return Capture(target, runTarget)
}

// Capture returns an erased guard holding payload; Drop passes the
// payload to call. This keeps the payload's state in the guard itself
// instead of forcing a closure.
func Capture[P any](payload P, call func(P)) *Key {
	return &Key{trampoline: invoke[P], fn: call, payload: payload}
}

// Dismiss clears the trampoline. Drop still releases the stored payload,
// but never invokes it.
func (k *Key) Dismiss() { k.trampoline = nil }

// Drop invokes the payload if the key is still armed, then releases the
// stored payload and invoker. At most one invocation ever happens, even
// when the payload panics or Drop is called again.
func (k *Key) Drop() {
	t := k.trampoline
	fn, payload := k.fn, k.payload
	k.trampoline, k.fn, k.payload = nil, nil, nil
	if t != nil {
		t(fn, payload)
	}
}

// Close makes Key an io.Closer so it can ride existing cleanup plumbing.
// It drops the guard and always returns nil.
func (k *Key) Close() error {
	k.Drop()
	return nil
}
