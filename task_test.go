package fanout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTaskGet(t *testing.T) {
	ctx := context.Background()
	task := New(func(ctx context.Context, x int) (int, error) {
		return x * x, nil
	})
	v, err := task.Get(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 25, v)
}

func TestTaskGetError(t *testing.T) {
	ctx := context.Background()
	task := New(func(ctx context.Context, _ int) (int, error) {
		return 0, errors.New("oops")
	})
	_, err := task.Get(ctx, 5)
	require.EqualError(t, err, "oops")
}

func TestTaskWait(t *testing.T) {
	ctx := context.Background()
	ran := make(chan struct{})
	task := New(func(ctx context.Context, _ int) (int, error) {
		close(ran)
		return 0, nil
	})
	require.NoError(t, task.Wait(ctx, 0))
	select {
	case <-ran:
	default:
		t.Fatal("task did not run")
	}
}

func TestTaskRunHandle(t *testing.T) {
	ctx := context.Background()
	step := make(chan struct{})
	task := New(func(ctx context.Context, x int) (int, error) {
		<-step
		return x + 1, nil
	})

	h := task.Run(ctx, 1)
	require.False(t, h.Ready())

	close(step)
	<-h.Done()
	require.True(t, h.Ready())

	v, err := h.Wait(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, v)

	// settled handles answer any number of readers
	v, err = h.Wait(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestTaskRunIndependentInvocations(t *testing.T) {
	ctx := context.Background()
	task := New(func(ctx context.Context, x int) (int, error) {
		return x * 10, nil
	})

	h1 := task.Run(ctx, 1)
	h2 := task.Run(ctx, 2)

	v1, err := h1.Wait(ctx)
	require.NoError(t, err)
	v2, err := h2.Wait(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, v1)
	require.Equal(t, 20, v2)
}

func TestHandleWaitContextExpiry(t *testing.T) {
	ctx := context.Background()
	block := make(chan struct{})
	defer close(block)
	task := New(func(ctx context.Context, _ int) (int, error) {
		<-block
		return 0, nil
	})

	h := task.Run(ctx, 0)
	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err := h.Wait(waitCtx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestThen(t *testing.T) {
	ctx := context.Background()
	double := New(func(ctx context.Context, x int) (int, error) {
		return x * 2, nil
	})
	plusThree := Then(double, func(ctx context.Context, v int) (int, error) {
		return v + 3, nil
	})
	v, err := plusThree.Get(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 13, v)
}

func TestThenLazy(t *testing.T) {
	ctx := context.Background()
	ran := make(chan struct{}, 1)
	task := Then(New(func(ctx context.Context, _ int) (int, error) {
		ran <- struct{}{}
		return 0, nil
	}), func(ctx context.Context, v int) (int, error) {
		return v, nil
	})

	select {
	case <-ran:
		t.Fatal("composing ran the task")
	default:
	}

	_, err := task.Get(ctx, 0)
	require.NoError(t, err)
	<-ran
}

func TestThenPropagatesError(t *testing.T) {
	ctx := context.Background()
	failing := New(func(ctx context.Context, _ int) (int, error) {
		return 0, errors.New("oops")
	})
	transformed := false
	task := Then(failing, func(ctx context.Context, v int) (int, error) {
		transformed = true
		return v, nil
	})
	_, err := task.Get(ctx, 0)
	require.EqualError(t, err, "oops")
	require.False(t, transformed)
}

func TestThenChangesType(t *testing.T) {
	ctx := context.Background()
	length := Then(New(func(ctx context.Context, s string) (string, error) {
		return s + s, nil
	}), func(ctx context.Context, v string) (int, error) {
		return len(v), nil
	})
	n, err := length.Get(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, 6, n)
}
