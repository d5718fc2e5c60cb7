package fanout

import (
	"context"
	"time"
)

// Option configures one policy evaluation.
type Option func(*options)

type options struct {
	timeout time.Duration
	limit   int
}

// WithTimeout bounds the whole evaluation. The deadline is computed once, at
// evaluation entry; every subsequent wait measures its remaining budget
// against that same instant. Zero or negative means block indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLimit bounds how many candidates run simultaneously. Zero or negative
// means unbounded, which is the default: one goroutine per candidate, all
// started before the launcher returns.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// evalContext derives the context governing one policy evaluation. The
// returned cancel must be called when the evaluation finishes so that
// cooperative losing candidates stop early.
func evalContext(ctx context.Context, opts []Option) (context.Context, context.CancelFunc, options) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.timeout > 0 {
		ctx, cancel := context.WithTimeout(ctx, o.timeout)
		return ctx, cancel, o
	}
	ctx, cancel := context.WithCancel(ctx)
	return ctx, cancel, o
}
