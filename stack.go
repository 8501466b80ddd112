package guard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// CloseFunc adapts a plain function to [io.Closer].
type CloseFunc func() error

// Close implements [io.Closer].
func (f CloseFunc) Close() error {
	return f()
}

// A Stack collects closers and closes them in reverse push order,
// mirroring nested-scope teardown: the last resource acquired is the
// first one released. Guards join a stack through [Guard.Close].
//
// Unlike a single [Guard], a Stack is safe for concurrent use: pushes
// from multiple goroutines are serialized, and [Stack.Close] runs the
// teardown exactly once.
type Stack struct {
	mu        sync.Mutex
	closers   []io.Closer
	finalized bool
}

// NewStack creates an empty teardown stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push adds c to the stack. Closers pushed later are closed earlier.
// Returns [ErrFinalized] if the stack has already been closed.
func (s *Stack) Push(c io.Closer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return ErrFinalized
	}
	s.closers = append(s.closers, c)
	return nil
}

// Defer adds a plain function to the stack, wrapped in a [CloseFunc]
// that returns nil. Returns [ErrFinalized] if the stack has already
// been closed.
func (s *Stack) Defer(fn func()) error {
	return s.Push(CloseFunc(func() error {
		fn()
		return nil
	}))
}

// Len reports how many closers are pending. It is zero after
// [Stack.Close].
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.closers)
}

// Close closes every pushed closer in reverse push order. Errors from
// individual closers do not stop the teardown; they are aggregated with
// [errors.Join]. The context bounds the teardown as a whole: once it is
// done, remaining closers are skipped and the context error is included
// in the result.
//
// Close runs the teardown at most once; later calls return
// [ErrFinalized].
func (s *Stack) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return ErrFinalized
	}
	s.finalized = true

	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%d closer(s) skipped: %w", i+1, err))
			break
		}
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil

	return errors.Join(errs...)
}
