package chain

import (
	"github.com/ib-77/kairo/pkg/rop"
	"github.com/ib-77/kairo/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[E, T any] struct {
	result rop.Result[E, T]
}

// Start creates a new chain from a rop.Result
func Start[E, T any](result rop.Result[E, T]) *Chain[E, T] {
	return &Chain[E, T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[E, T any](value T) *Chain[E, T] {
	return &Chain[E, T]{result: rop.Ok[E](value)}
}

// Result returns the underlying rop.Result
func (c *Chain[E, T]) Result() rop.Result[E, T] {
	return c.result
}

// Then chains a function that returns rop.Result[E, U]
func Then[E, T, U any](c *Chain[E, T], onSuccess func(T) rop.Result[E, U]) *Chain[E, U] {
	return &Chain[E, U]{result: solo.Chain(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error). Panics become failures.
func ThenTry[T, U any](c *Chain[error, T], tryOnSuccess func(T) (U, error)) *Chain[error, U] {
	return Then(c, func(v T) rop.Result[error, U] {
		return solo.Try(func() (U, error) { return tryOnSuccess(v) })
	})
}

// Map chains a pure transformation function
func Map[E, T, U any](c *Chain[E, T], onSuccess func(T) U) *Chain[E, U] {
	return &Chain[E, U]{result: rop.Map(c.result, onSuccess)}
}

func MapError[E, F, T any](c *Chain[E, T], onFailure func(E) F) *Chain[F, T] {
	return &Chain[F, T]{result: solo.MapError(c.result, onFailure)}
}

// Ensure performs a side effect without changing the result. Either handler
// may be nil.
func (c *Chain[E, T]) Ensure(onSuccess func(T), onFailure func(E)) *Chain[E, T] {
	if c.result.IsErr() {
		if onFailure != nil {
			onFailure(c.result.Err())
		}
		return c
	}
	if onSuccess != nil {
		solo.Tee(c.result, onSuccess)
	}
	return c
}

// Finally collapses the chain into a final value
func Finally[E, T, U any](c *Chain[E, T], onSuccess func(T) U, onFailure func(E) U) U {
	return rop.Match(c.result, onSuccess, onFailure)
}
