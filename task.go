package fanout

import "context"

// A Func is a unit of work with the package's common call signature.
//
// This is a core concept of this package. Every task wraps a Func, and every
// policy reduces the outcomes of several Funcs sharing one argument type A and
// one return type R. Go has no variadic type parameters, so a task taking
// several arguments uses a struct for A.
//
// When ctx is closed, the function should finish as soon as possible and
// return ctx.Err(). Candidates that ignore ctx still work; they just keep
// running after the policy that launched them has returned, and their results
// are discarded.
type Func[A, R any] func(ctx context.Context, arg A) (R, error)

// A Task is an immutable, re-runnable wrapper around a Func. Each invocation
// is independent; a Task holds no state between runs.
type Task[A, R any] struct {
	fn Func[A, R]
}

// New wraps fn as a Task.
func New[A, R any](fn Func[A, R]) Task[A, R] {
	return Task[A, R]{fn: fn}
}

// Run starts one invocation of the task in its own goroutine and returns a
// handle to its eventual outcome. A panic inside the task settles the handle
// as failed with ErrPanic.
func (t Task[A, R]) Run(ctx context.Context, arg A) *Handle[R] {
	h := newHandle[R]()
	go func() {
		h.settle(call(ctx, t.fn, arg))
	}()
	return h
}

// Get runs the task and blocks until it settles, returning its value or its
// failure. Together with Wait and Then this is the only surface that
// propagates a task's own error to the caller; the policies swallow it.
func (t Task[A, R]) Get(ctx context.Context, arg A) (R, error) {
	return t.Run(ctx, arg).Wait(ctx)
}

// Wait runs the task and blocks until it settles, discarding the value.
func (t Task[A, R]) Wait(ctx context.Context, arg A) error {
	_, err := t.Run(ctx, arg).Wait(ctx)
	return err
}

// Then composes a task with a transform applied to its result. The returned
// task is lazy: nothing runs until it is itself run. When it runs, it runs t,
// blocks for its outcome, and applies fn to the value. If t fails, the
// failure propagates and fn is not called.
func Then[A, R, R2 any](t Task[A, R], fn func(ctx context.Context, value R) (R2, error)) Task[A, R2] {
	return New(func(ctx context.Context, arg A) (R2, error) {
		value, err := t.Get(ctx, arg)
		if err != nil {
			var zero R2
			return zero, err
		}
		return fn(ctx, value)
	})
}
