package fanout

import "context"

// A Handle is a reference to one in-flight task invocation. It settles
// exactly once, as either ready (a value) or failed (an error), and may be
// read by any number of readers once settled.
type Handle[R any] struct {
	done  chan struct{}
	value R
	err   error
}

func newHandle[R any]() *Handle[R] {
	return &Handle[R]{done: make(chan struct{})}
}

// settle must be called exactly once per handle.
func (h *Handle[R]) settle(value R, err error) {
	h.value = value
	h.err = err
	close(h.done)
}

// Done returns a channel that closes when the handle settles.
func (h *Handle[R]) Done() <-chan struct{} {
	return h.done
}

// Ready reports whether the handle has settled, without blocking.
func (h *Handle[R]) Ready() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the handle settles or ctx closes. Once the handle has
// settled, Wait returns its outcome regardless of ctx.
func (h *Handle[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-h.done:
		return h.value, h.err
	case <-ctx.Done():
		select {
		case <-h.done:
			return h.value, h.err
		default:
			var zero R
			return zero, ctx.Err()
		}
	}
}
