package fanout

import "context"

// Match is the outcome of the index-reporting policies: the winning
// candidate's position in launch order and its value.
//
// Index is -1 when there is no winner (all failed, no predicate match, or
// deadline expiry), except that OrderWith reports len(tasks) after scanning
// every candidate without a match.
type Match[R any] struct {
	Index int
	Value R
}

// All returns a task that launches every candidate against its argument and
// collects their values in launch order. Failed candidates are omitted. Under
// WithTimeout, waiting is cut off at the deadline and the values collected up
// to that point are kept; the rest are abandoned. All never fails: an empty
// or partial list is its only degraded outcome.
func All[A, R any](tasks []Task[A, R], opts ...Option) Task[A, []R] {
	return New(func(ctx context.Context, arg A) ([]R, error) {
		if len(tasks) == 0 {
			return nil, nil
		}
		ctx, cancel, o := evalContext(ctx, opts)
		defer cancel()

		collected := evalAll(ctx, launch(ctx, tasks, arg, o.limit))
		values := make([]R, len(collected))
		for i, c := range collected {
			values[i] = c.Value
		}
		return values, nil
	})
}

// Any returns a task that races every candidate and yields the first one to
// settle with a value, ignoring failures. If every candidate fails it reports
// ErrAllFailed; if the deadline expires first, the context's error.
func Any[A, R any](tasks []Task[A, R], opts ...Option) Task[A, Match[R]] {
	return New(func(ctx context.Context, arg A) (Match[R], error) {
		if len(tasks) == 0 {
			return Match[R]{Index: -1}, ErrNoTasks
		}
		ctx, cancel, o := evalContext(ctx, opts)
		defer cancel()

		return evalAny(ctx, launch(ctx, tasks, arg, o.limit))
	})
}

// AnyWith is Any with an acceptance predicate: a candidate wins only if its
// value satisfies pred. A value that does not is consumed and never
// considered again. When every candidate is consumed, by failure or by
// mismatch, it reports ErrNoMatch with Index -1.
func AnyWith[A, R any](pred func(R) bool, tasks []Task[A, R], opts ...Option) Task[A, Match[R]] {
	return New(func(ctx context.Context, arg A) (Match[R], error) {
		if len(tasks) == 0 {
			return Match[R]{Index: -1}, ErrNoTasks
		}
		ctx, cancel, o := evalContext(ctx, opts)
		defer cancel()

		return evalAnyWith(ctx, pred, launch(ctx, tasks, arg, o.limit))
	})
}

// OrderWith scans candidates strictly in launch order, even though all of
// them run concurrently: it blocks on candidate 0, then 1, and so on, and
// yields the first one in that order whose value satisfies pred. Failed
// candidates are skipped. Once a candidate matches, later candidates are
// never inspected, even if they settled earlier in wall-clock time. If the
// deadline expires while waiting on candidate i, candidates beyond i are
// never checked. Exhausting the scan reports ErrNoMatch with Index equal to
// the number of candidates.
func OrderWith[A, R any](pred func(R) bool, tasks []Task[A, R], opts ...Option) Task[A, Match[R]] {
	return New(func(ctx context.Context, arg A) (Match[R], error) {
		if len(tasks) == 0 {
			return Match[R]{Index: -1}, ErrNoTasks
		}
		ctx, cancel, o := evalContext(ctx, opts)
		defer cancel()

		return evalOrderWith(ctx, pred, launch(ctx, tasks, arg, o.limit))
	})
}

// Best collects like All and then reduces: better(a, b) means a is preferred
// over b, and the winner is the first collected value that no other collected
// value is strictly preferred to (a stable linear pass, first wins ties).
// With nothing collected, Best reports the deadline error when a deadline cut
// the collection short and ErrAllFailed otherwise.
func Best[A, R any](better func(a, b R) bool, tasks []Task[A, R], opts ...Option) Task[A, R] {
	return New(func(ctx context.Context, arg A) (R, error) {
		var zero R
		if len(tasks) == 0 {
			return zero, ErrNoTasks
		}
		ctx, cancel, o := evalContext(ctx, opts)
		defer cancel()

		collected := evalAll(ctx, launch(ctx, tasks, arg, o.limit))
		best, ok := bestOf(better, collected)
		if !ok {
			if err := ctx.Err(); err != nil {
				return zero, err
			}
			return zero, ErrAllFailed
		}
		return best.Value, nil
	})
}

// evalAll drains the whole flight in index order under ctx. Failed handles
// are skipped. A handle that is still pending when ctx closes truncates the
// collection: it and everything after it are abandoned.
func evalAll[R any](ctx context.Context, f *flight[R]) []Match[R] {
	collected := make([]Match[R], 0, len(f.handles))
	for i, h := range f.handles {
		select {
		case <-h.Done():
		case <-ctx.Done():
			// An already-settled handle is still collected; only a pending
			// one ends the scan.
			select {
			case <-h.Done():
			default:
				return collected
			}
		}
		if h.err != nil {
			continue
		}
		collected = append(collected, Match[R]{Index: i, Value: h.value})
	}
	return collected
}

// evalAny claims the first settled handle holding a value. The flight's
// settled channel has a single consumer, so the claim is exactly-once by
// construction.
func evalAny[R any](ctx context.Context, f *flight[R]) (Match[R], error) {
	failed := 0
	for failed < len(f.handles) {
		select {
		case i := <-f.settled:
			if h := f.handles[i]; h.err == nil {
				return Match[R]{Index: i, Value: h.value}, nil
			}
			failed++
		case <-ctx.Done():
			return Match[R]{Index: -1}, ctx.Err()
		}
	}
	return Match[R]{Index: -1}, ErrAllFailed
}

func evalAnyWith[R any](ctx context.Context, pred func(R) bool, f *flight[R]) (Match[R], error) {
	consumed := 0
	for consumed < len(f.handles) {
		select {
		case i := <-f.settled:
			if h := f.handles[i]; h.err == nil && pred(h.value) {
				return Match[R]{Index: i, Value: h.value}, nil
			}
			consumed++
		case <-ctx.Done():
			return Match[R]{Index: -1}, ctx.Err()
		}
	}
	return Match[R]{Index: -1}, ErrNoMatch
}

func evalOrderWith[R any](ctx context.Context, pred func(R) bool, f *flight[R]) (Match[R], error) {
	for i, h := range f.handles {
		select {
		case <-h.Done():
		case <-ctx.Done():
			select {
			case <-h.Done():
			default:
				return Match[R]{Index: -1}, ctx.Err()
			}
		}
		if h.err != nil {
			continue
		}
		if pred(h.value) {
			return Match[R]{Index: i, Value: h.value}, nil
		}
	}
	return Match[R]{Index: len(f.handles)}, ErrNoMatch
}

func bestOf[R any](better func(a, b R) bool, collected []Match[R]) (Match[R], bool) {
	if len(collected) == 0 {
		return Match[R]{Index: -1}, false
	}
	best := collected[0]
	for _, c := range collected[1:] {
		if better(c.Value, best.Value) {
			best = c
		}
	}
	return best, true
}
