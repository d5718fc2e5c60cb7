package fanout

import "context"

// Named pairs a registry entry's name with the value it produced.
type Named[R any] struct {
	Name  string
	Value R
}

type entry[A, R any] struct {
	name string
	task Task[A, R]
}

// Group is an ordered registry of named tasks exposing every policy with
// names substituted for indices. Names are not required to be unique;
// insertion order is what OrderWith scans by and what ExecuteAll orders its
// results by.
//
// Group is not safe for concurrent registration. Register everything first,
// then evaluate from as many goroutines as needed.
type Group[A, R any] struct {
	entries []entry[A, R]
}

// NewGroup creates an empty registry
func NewGroup[A, R any]() *Group[A, R] {
	return &Group[A, R]{}
}

// Add appends fn under name.
func (g *Group[A, R]) Add(name string, fn Func[A, R]) {
	g.AddTask(name, New(fn))
}

// AddTask appends an already-wrapped task under name.
func (g *Group[A, R]) AddTask(name string, t Task[A, R]) {
	g.entries = append(g.entries, entry[A, R]{name: name, task: t})
}

// Bound adapts an explicit receiver/method pair into a Func, for registering
// a method together with the object it operates on:
//
//	group.Add("lookup", fanout.Bound(resolver, (*Resolver).Lookup))
//
// A method value (resolver.Lookup) works just as well with plain Add; Bound
// exists for call sites that pass the receiver separately.
func Bound[T, A, R any](recv T, method func(T, context.Context, A) (R, error)) Func[A, R] {
	return func(ctx context.Context, arg A) (R, error) {
		return method(recv, ctx, arg)
	}
}

// Len returns the number of registered entries.
func (g *Group[A, R]) Len() int {
	return len(g.entries)
}

// Names returns the registered names in insertion order.
func (g *Group[A, R]) Names() []string {
	names := make([]string, len(g.entries))
	for i, e := range g.entries {
		names[i] = e.name
	}
	return names
}

func (g *Group[A, R]) tasks() []Task[A, R] {
	tasks := make([]Task[A, R], len(g.entries))
	for i, e := range g.entries {
		tasks[i] = e.task
	}
	return tasks
}

// name translates a policy's winning index back to the paired name.
func (g *Group[A, R]) name(i int) string {
	if i < 0 || i >= len(g.entries) {
		return ""
	}
	return g.entries[i].name
}

// ExecuteAny races every entry and returns the name and value of the first
// one to produce a value. An empty registry returns ErrNoTasks without
// launching anything, as do all the other Execute methods.
func (g *Group[A, R]) ExecuteAny(ctx context.Context, arg A, opts ...Option) (string, R, error) {
	m, err := Any(g.tasks(), opts...).Get(ctx, arg)
	return g.name(m.Index), m.Value, err
}

// ExecuteAnyWith races every entry and returns the first value satisfying
// pred, with its entry's name.
func (g *Group[A, R]) ExecuteAnyWith(ctx context.Context, pred func(R) bool, arg A, opts ...Option) (string, R, error) {
	m, err := AnyWith(pred, g.tasks(), opts...).Get(ctx, arg)
	return g.name(m.Index), m.Value, err
}

// ExecuteOrderWith scans entries in registration order and returns the first
// one, in that order, whose value satisfies pred.
func (g *Group[A, R]) ExecuteOrderWith(ctx context.Context, pred func(R) bool, arg A, opts ...Option) (string, R, error) {
	m, err := OrderWith(pred, g.tasks(), opts...).Get(ctx, arg)
	return g.name(m.Index), m.Value, err
}

// ExecuteAll runs every entry and returns the produced values with their
// names, in registration order. Failed or deadline-abandoned entries are
// absent from the result.
func (g *Group[A, R]) ExecuteAll(ctx context.Context, arg A, opts ...Option) []Named[R] {
	if len(g.entries) == 0 {
		return nil
	}
	evalCtx, cancel, o := evalContext(ctx, opts)
	defer cancel()

	collected := evalAll(evalCtx, launch(evalCtx, g.tasks(), arg, o.limit))
	named := make([]Named[R], len(collected))
	for i, c := range collected {
		named[i] = Named[R]{Name: g.name(c.Index), Value: c.Value}
	}
	return named
}

// ExecuteBest runs every entry and returns the preferred value under better,
// with its entry's name.
func (g *Group[A, R]) ExecuteBest(ctx context.Context, better func(a, b R) bool, arg A, opts ...Option) (string, R, error) {
	var zero R
	if len(g.entries) == 0 {
		return "", zero, ErrNoTasks
	}
	evalCtx, cancel, o := evalContext(ctx, opts)
	defer cancel()

	collected := evalAll(evalCtx, launch(evalCtx, g.tasks(), arg, o.limit))
	best, ok := bestOf(better, collected)
	if !ok {
		if err := evalCtx.Err(); err != nil {
			return "", zero, err
		}
		return "", zero, ErrAllFailed
	}
	return g.name(best.Index), best.Value, nil
}
