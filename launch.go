package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// A flight is one fan-out of N candidates against a shared argument. Handle i
// corresponds to task i for the lifetime of the evaluation. Each settling
// candidate additionally sends its index on the settled channel, waking
// whichever evaluator is draining the flight; the channel is buffered to N so
// losers never block on it.
type flight[R any] struct {
	handles []*Handle[R]
	settled chan int
}

// launch starts every task against arg and returns without waiting for any of
// them. With limit <= 0 each task gets its own goroutine immediately; with a
// positive limit a feeder goroutine pushes the tasks through a size-limited
// group, so launch itself still does not block.
func launch[A, R any](ctx context.Context, tasks []Task[A, R], arg A, limit int) *flight[R] {
	f := &flight[R]{
		handles: make([]*Handle[R], len(tasks)),
		settled: make(chan int, len(tasks)),
	}
	for i := range f.handles {
		f.handles[i] = newHandle[R]()
	}

	run := func(i int) {
		f.handles[i].settle(call(ctx, tasks[i].fn, arg))
		f.settled <- i
	}

	if limit <= 0 {
		for i := range tasks {
			go run(i)
		}
		return f
	}

	var eg errgroup.Group
	eg.SetLimit(limit)
	go func() {
		for i := range tasks {
			i := i
			eg.Go(func() error {
				run(i)
				return nil
			})
		}
	}()
	return f
}
