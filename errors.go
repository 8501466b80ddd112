package guard

import "errors"

var (
	// ErrFinalized is returned by [Stack.Close] and [Stack.Push] after the
	// stack has already been closed, and is the panic value raised when a
	// [Guard] accessor is used after finalization.
	ErrFinalized = errors.New("guard: already finalized")

	// ErrNilCleanup is the panic value raised when a nil cleanup function
	// is supplied to [New] or [Guard.SetCleanup].
	ErrNilCleanup = errors.New("guard: nil cleanup function")
)
