package guard

// A Guard owns a value together with a cleanup function and runs the
// cleanup with the value exactly once, when [Guard.Finalize] fires.
//
// The usual pattern is to construct the guard right after acquiring the
// value and defer finalization immediately:
//
//	g := guard.New(f, func(f *os.File) { f.Close() })
//	defer g.Finalize()
//
// The deferred call runs whether the scope exits normally or by panic.
// Calling Finalize early runs the cleanup at that point instead and turns
// the deferred call into a no-op.
type Guard[T any] struct {
	value   T
	cleanup func(T)
	state   State
}

// New creates a guard owning value and cleanup. It panics with
// [ErrNilCleanup] if cleanup is nil; construction cannot otherwise fail.
func New[T any](value T, cleanup func(T)) *Guard[T] {
	if cleanup == nil {
		panic(ErrNilCleanup)
	}
	return &Guard[T]{value: value, cleanup: cleanup}
}

// Value returns the guarded value. It panics with [ErrFinalized] if the
// guard has been finalized.
func (g *Guard[T]) Value() T {
	g.mustBeAlive()
	return g.value
}

// Ptr returns a pointer to the guarded value for in-place mutation.
// Mutations made through the pointer are what the cleanup observes at
// finalization time. The guard keeps ownership; callers must not retain
// the pointer past the guard's lifetime. Panics with [ErrFinalized] if
// the guard has been finalized.
func (g *Guard[T]) Ptr() *T {
	g.mustBeAlive()
	return &g.value
}

// Cleanup returns the current cleanup function, for inspection. Panics
// with [ErrFinalized] if the guard has been finalized.
func (g *Guard[T]) Cleanup() func(T) {
	g.mustBeAlive()
	return g.cleanup
}

// SetCleanup replaces the cleanup function. The replaced function is
// dropped without being invoked; only the function installed at
// finalization time runs. Panics with [ErrNilCleanup] if fn is nil and
// with [ErrFinalized] if the guard has been finalized.
func (g *Guard[T]) SetCleanup(fn func(T)) {
	g.mustBeAlive()
	if fn == nil {
		panic(ErrNilCleanup)
	}
	g.cleanup = fn
}

// State reports whether the guard is [Alive] or [Finalized].
func (g *Guard[T]) State() State {
	return g.state
}

// Finalize runs the cleanup with the guarded value. The first call
// consumes both; every later call is a no-op, so a deferred Finalize
// after an explicit early one never double-fires.
//
// A panic raised by the cleanup is not recovered here; it propagates to
// whatever triggered finalization. If that trigger is a deferred call
// already unwinding from another panic, the cleanup's panic supersedes
// it — the runtime's usual panic-during-panic behavior, deliberately not
// masked.
func (g *Guard[T]) Finalize() {
	if g.state == Finalized {
		return
	}
	g.state = Finalized

	value, cleanup := g.value, g.cleanup

	// Release our references before invoking, so the guard holds nothing
	// even if the cleanup panics.
	var zero T
	g.value = zero
	g.cleanup = nil

	cleanup(value)
}

// Close finalizes the guard and returns nil, satisfying [io.Closer] so a
// guard can be handed to closer-based lifecycles such as [Stack]. Like
// [Guard.Finalize] it is a no-op after the first finalization.
func (g *Guard[T]) Close() error {
	g.Finalize()
	return nil
}

func (g *Guard[T]) mustBeAlive() {
	if g.state == Finalized {
		panic(ErrFinalized)
	}
}
