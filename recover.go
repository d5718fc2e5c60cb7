package fanout

import (
	"context"
	"fmt"
	"runtime/debug"
)

// ErrPanic is the error type that occurs when a task panics
type ErrPanic struct {
	Value interface{}
	Stack []byte
}

func (err ErrPanic) Error() string {
	return fmt.Sprintf("panic: %s", err.Value)
}

// Unwrap returns the error passed to panic, or nil if panic was called with
// something other than an error
func (err ErrPanic) Unwrap() error {
	if e, ok := err.Value.(error); ok {
		return e
	}
	return nil
}

// call executes fn in the current goroutine, recovering from panics. A panic
// is returned as ErrPanic carrying the stack of the panic location.
func call[A, R any](ctx context.Context, fn Func[A, R], arg A) (value R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = ErrPanic{Value: p, Stack: debug.Stack()}
		}
	}()
	return fn(ctx, arg)
}
