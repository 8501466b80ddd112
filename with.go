package guard

// With constructs a guard over value and cleanup, runs fn with it, and
// finalizes the guard when fn returns — normally or by panic. It is the
// scoped-block form of [New] plus a deferred [Guard.Finalize], for callers
// that want the guard's whole lifetime bound to a single function.
//
// fn may finalize the guard early itself; the trailing trigger is then a
// no-op. A panic from fn propagates to the caller after the cleanup has
// run, matching nested-scope teardown: inner guards finalize before outer
// ones while the panic unwinds.
func With[T any](value T, cleanup func(T), fn func(*Guard[T])) {
	g := New(value, cleanup)
	defer g.Finalize()
	fn(g)
}
