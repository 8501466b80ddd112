package guard_test

import (
	"context"
	"fmt"

	"github.com/avelsk/guard"
)

func ExampleNew() {
	g := guard.New(41, func(x int) { fmt.Println("cleanup:", x+1) })
	defer g.Finalize()
	// Output: cleanup: 42
}

func ExampleGuard_Ptr() {
	s := guard.New("a common string", func(v string) {
		fmt.Printf("s became %q at last\n", v)
	})
	defer s.Finalize()

	// much code and time passes by ...
	*s.Ptr() = "a rainbow"
	// Output: s became "a rainbow" at last
}

func ExampleGuard_Finalize() {
	g := guard.New("tmpfile", func(name string) { fmt.Println("removed", name) })
	defer g.Finalize()

	g.Finalize() // run the cleanup now and observe it directly
	// the deferred trigger is a no-op from here on

	// Output: removed tmpfile
}

func ExampleWith() {
	guard.With([]int{1, 2, 3}, func(v []int) {
		sum := 0
		for _, n := range v {
			sum += n
		}
		fmt.Println("sum:", sum)
	}, func(g *guard.Guard[[]int]) {
		*g.Ptr() = append(*g.Ptr(), 4)
	})
	// Output: sum: 10
}

func ExampleStack() {
	s := guard.NewStack()
	_ = s.Defer(func() { fmt.Println("outer") })
	_ = s.Defer(func() { fmt.Println("inner") })

	if err := s.Close(context.Background()); err != nil {
		panic(err)
	}
	// Output:
	// inner
	// outer
}
