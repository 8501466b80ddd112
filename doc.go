// Package guard provides a generic scope guard: a value paired with a
// cleanup function that is guaranteed to run, with that value, exactly once
// when the guard is finalized.
//
// Attach the cleanup at the point the value is acquired, then finalize on
// the way out. Deferred finalization runs on every exit path, including
// panics, so the cleanup cannot be skipped by an early return or an
// unwinding error.
//
// # Quick Start
//
//	g := guard.New(conn, func(c net.Conn) { c.Close() })
//	defer g.Finalize()
//
//	// use the guarded value in place
//	g.Value().SetDeadline(time.Now().Add(timeout))
//
// # Scoped Form
//
// [With] bundles construction and finalization into a single call, for
// callers that want the guard's whole lifetime bound to one function:
//
//	guard.With(pool, func(p *Pool) { p.Drain() }, func(g *guard.Guard[*Pool]) {
//	    g.Value().Submit(job)
//	})
//
// # Early Finalization
//
// [Guard.Finalize] may be called before the deferred trigger fires, to run
// the cleanup at a precise point and observe any panic it raises directly.
// Later triggers become no-ops; the cleanup never runs twice.
//
// # Teardown Stacks
//
// [Stack] collects closers — guards among them, via [Guard.Close] — and
// closes them in reverse push order, mirroring nested-scope teardown:
//
//	s := guard.NewStack()
//	s.Push(outer)
//	s.Push(inner)
//	err := s.Close(ctx) // inner first, then outer
//
// A Guard performs no synchronization and is meant to be owned by a single
// goroutine; callers that share the guarded value across goroutines must
// synchronize it themselves.
package guard
