package solo

import (
	"errors"

	"github.com/ib-77/kairo/pkg/rop"
)

var ErrNoResults = errors.New("No results provided")

// Partitioned splits results into their success values and error payloads.
type Partitioned[E, T any] struct {
	Successes []T
	Failures  []E
}

// Sequence collects all success values in order, or returns the first Err
// found scanning from the start.
func Sequence[E, T any](results []rop.Result[E, T]) rop.Result[E, []T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsErr() {
			return rop.Err[[]T](r.Err())
		}
		values = append(values, r.Value())
	}
	return rop.Ok[E](values)
}

func Traverse[E, T, U any](fn func(T) rop.Result[E, U]) func([]T) rop.Result[E, []U] {
	return func(items []T) rop.Result[E, []U] {
		results := make([]rop.Result[E, U], len(items))
		for i, item := range items {
			results[i] = fn(item)
		}
		return Sequence(results)
	}
}

// Chain calls fn with the success value. fn is never called for an Err.
func Chain[E, T, U any](input rop.Result[E, T], fn func(T) rop.Result[E, U]) rop.Result[E, U] {
	if input.IsOk() {
		return fn(input.Value())
	}
	return rop.Err[U](input.Err())
}

func Filter[E, T any](input rop.Result[E, T], predicate func(T) bool,
	errorFactory func(T) E) rop.Result[E, T] {

	if input.IsErr() {
		return input
	}

	if v := input.Value(); !predicate(v) {
		return rop.Err[T](errorFactory(v))
	}
	return input
}

// LiftA2 lifts a binary function over two results. When both fail the error
// of the left one wins.
func LiftA2[E, A, B, C any](fn func(A, B) C) func(rop.Result[E, A], rop.Result[E, B]) rop.Result[E, C] {
	return func(ra rop.Result[E, A], rb rop.Result[E, B]) rop.Result[E, C] {
		if ra.IsErr() {
			return rop.Err[C](ra.Err())
		}
		if rb.IsErr() {
			return rop.Err[C](rb.Err())
		}
		return rop.Ok[E](fn(ra.Value(), rb.Value()))
	}
}

// FirstOk returns the first success, otherwise the last failure.
// An empty input fails with ErrNoResults.
func FirstOk[T any](results []rop.Result[error, T]) rop.Result[error, T] {
	return FirstOkOr(results, ErrNoResults)
}

func FirstOkOr[E, T any](results []rop.Result[E, T], emptyErr E) rop.Result[E, T] {
	if len(results) == 0 {
		return rop.Err[T](emptyErr)
	}

	for _, r := range results {
		if r.IsOk() {
			return r
		}
	}
	return results[len(results)-1]
}

func WithDefault[E, T any](input rop.Result[E, T], defaultValue T) T {
	if input.IsOk() {
		return input.Value()
	}
	return defaultValue
}

func MapError[E, F, T any](input rop.Result[E, T], fn func(E) F) rop.Result[F, T] {
	if input.IsOk() {
		return rop.Ok[F](input.Value())
	}
	return rop.Err[T](fn(input.Err()))
}

// Recover gives a failure a second chance. fn may succeed or fail with a
// different error.
func Recover[E, F, T any](input rop.Result[E, T], fn func(E) rop.Result[F, T]) rop.Result[F, T] {
	if input.IsOk() {
		return rop.Ok[F](input.Value())
	}
	return fn(input.Err())
}

func Partition[E, T any](results []rop.Result[E, T]) Partitioned[E, T] {
	p := Partitioned[E, T]{
		Successes: make([]T, 0, len(results)),
		Failures:  make([]E, 0),
	}
	for _, r := range results {
		if r.IsOk() {
			p.Successes = append(p.Successes, r.Value())
		} else {
			p.Failures = append(p.Failures, r.Err())
		}
	}
	return p
}

// Try runs fn and converts a returned error or a panic into a failure.
func Try[T any](fn func() (T, error)) (res rop.Result[error, T]) {
	defer func() {
		if r := recover(); r != nil {
			res = rop.Err[T, error](rop.PanicError{Value: r})
		}
	}()

	v, err := fn()
	if err != nil {
		return rop.Err[T](err)
	}
	return rop.Ok[error](v)
}

func Tee[E, T any](input rop.Result[E, T], onSuccess func(T)) rop.Result[E, T] {
	if input.IsOk() {
		onSuccess(input.Value())
	}
	return input
}
