// Package guard implements scope-bound cleanup: a callable that runs
// when its scope is left, unless dismissed first.
//
// The stack form, Guard, is a plain value driven by defer:
//
//	conn := db.Open()
//	g := guard.New(conn.Close)
//	defer g.Drop()
//	// ... use conn; g.Dismiss() to keep it open
//
// The erased form, Key, is a heap handle that can be stored as a struct
// member without parameterizing the enclosing type; see NewKey and
// Capture.
//
// A panic raised by a cleanup target propagates to the caller of Drop;
// the guard disarms itself first, so the target never runs twice.
package guard

// Guard runs its target exactly once on Drop while armed. The zero Guard
// is disarmed and inert.
type Guard struct {
	target func()
	armed  bool
}

// New returns an armed guard for target.
func New(target func()) Guard {
	return Guard{target: target, armed: true}
}

// Dismiss disarms the guard; Drop becomes a no-op.
func (g *Guard) Dismiss() { g.armed = false }

// Armed reports whether Drop would run the target.
func (g *Guard) Armed() bool { return g.armed }

// Drop runs the target if the guard is armed, at most once. Intended to
// be deferred at the point the guarded resource is acquired. The guard
// disarms before invoking, so a panicking target is not re-run by a
// second Drop.
func (g *Guard) Drop() {
	if !g.armed {
		return
	}
	g.armed = false
	g.target()
}
