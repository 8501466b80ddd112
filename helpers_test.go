package guard

// Shared test fixtures used across test files.

// recorder counts cleanup invocations and records every value handed to
// the cleanup function.
type recorder[T any] struct {
	calls  int
	values []T
}

func (r *recorder[T]) fn() func(T) {
	return func(v T) {
		r.calls++
		r.values = append(r.values, v)
	}
}

// testClosable records the order in which closers are closed via a
// shared slice.
type testClosable struct {
	name   string
	closed bool
	order  *[]string
}

func (c *testClosable) Close() error {
	c.closed = true
	if c.order != nil {
		*c.order = append(*c.order, c.name)
	}
	return nil
}

// failCloser implements io.Closer but always returns err.
type failCloser struct{ err error }

func (f *failCloser) Close() error {
	return f.err
}
