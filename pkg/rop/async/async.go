package async

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/kairo/pkg/rop"
	"github.com/ib-77/kairo/pkg/rop/core"
	"github.com/ib-77/kairo/pkg/rop/solo"
)

// DefaultLimit is the fan-out bound used when the context carries no worker
// limit (see core.WithWorkerLimit).
const DefaultLimit = 64

// Func is an asynchronous step. A non-nil error or a panic is a failure.
type Func[In, Out any] = func(ctx context.Context, in In) (Out, error)

// Pipe runs fns one after another, feeding each output to the next. It stops
// at the first failure. An empty Pipe returns its input.
func Pipe[T any](fns ...Func[T, T]) Func[T, T] {
	return func(ctx context.Context, in T) (T, error) {
		current := in
		for _, fn := range fns {
			next, err := call(ctx, fn, current)
			if err != nil {
				var zero T
				return zero, err
			}
			current = next
		}
		return current, nil
	}
}

// Map runs fn on every item concurrently, at most the context worker limit at
// a time. Results keep the input order. The first failure cancels the rest.
func Map[T, U any](fn Func[T, U]) func(ctx context.Context, items []T) ([]U, error) {
	return func(ctx context.Context, items []T) ([]U, error) {
		out := make([]U, len(items))
		g, gctx := group(ctx)
		for i, item := range items {
			g.Go(func() error {
				v, err := call(gctx, fn, item)
				if err != nil {
					return err
				}
				out[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// MapSeq is Map without concurrency: call i+1 starts after call i returned.
func MapSeq[T, U any](fn Func[T, U]) func(ctx context.Context, items []T) ([]U, error) {
	return func(ctx context.Context, items []T) ([]U, error) {
		out := make([]U, 0, len(items))
		for _, item := range items {
			v, err := call(ctx, fn, item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// Filter evaluates predicate concurrently, then keeps matching items in input
// order.
func Filter[T any](predicate Func[T, bool]) func(ctx context.Context, items []T) ([]T, error) {
	return func(ctx context.Context, items []T) ([]T, error) {
		keep, err := Map(predicate)(ctx, items)
		if err != nil {
			return nil, err
		}
		out := make([]T, 0, len(items))
		for i, item := range items {
			if keep[i] {
				out = append(out, item)
			}
		}
		return out, nil
	}
}

// ForEach runs fn on every item concurrently and returns items unchanged.
// Completion order is unspecified.
func ForEach[T any](fn func(ctx context.Context, item T) error) func(ctx context.Context, items []T) ([]T, error) {
	return func(ctx context.Context, items []T) ([]T, error) {
		g, gctx := group(ctx)
		for _, item := range items {
			g.Go(func() error {
				_, err := call(gctx, func(ctx context.Context, item T) (struct{}, error) {
					return struct{}{}, fn(ctx, item)
				}, item)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return items, nil
	}
}

// ToResult waits for fn and captures its outcome. Panics are converted to
// errors so the failure side always carries an error.
func ToResult[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) rop.Result[error, T] {
	v, err := call(ctx, func(ctx context.Context, _ struct{}) (T, error) { return fn(ctx) }, struct{}{})
	if err != nil {
		return rop.Err[T](err)
	}
	return rop.Ok[error](v)
}

// Sequence runs every task concurrently, waits for all of them and then
// behaves like solo.Sequence.
func Sequence[E, T any](ctx context.Context, tasks []func(ctx context.Context) rop.Result[E, T]) rop.Result[E, []T] {
	results := make([]rop.Result[E, T], len(tasks))
	g, gctx := group(ctx)
	for i, task := range tasks {
		g.Go(func() error {
			results[i] = task(gctx)
			return nil
		})
	}
	// Tasks report through their Results and never fail the group, so Wait
	// only joins and its error is always nil.
	g.Wait()
	return solo.Sequence(results)
}

func Traverse[E, T, U any](fn func(ctx context.Context, item T) rop.Result[E, U]) func(ctx context.Context, items []T) rop.Result[E, []U] {
	return func(ctx context.Context, items []T) rop.Result[E, []U] {
		tasks := make([]func(ctx context.Context) rop.Result[E, U], len(items))
		for i, item := range items {
			tasks[i] = func(ctx context.Context) rop.Result[E, U] { return fn(ctx, item) }
		}
		return Sequence(ctx, tasks)
	}
}

func group(ctx context.Context) (*errgroup.Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	if limit := core.GetWorkerLimit(ctx, DefaultLimit); limit > 0 {
		g.SetLimit(limit)
	}
	return g, gctx
}

func call[In, Out any](ctx context.Context, fn Func[In, Out], in In) (out Out, err error) {
	defer rop.Recover(&err)
	return fn(ctx, in)
}
