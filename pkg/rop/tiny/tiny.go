package tiny

import (
	"github.com/ib-77/kairo/pkg/rop"
	"github.com/ib-77/kairo/pkg/rop/solo"
)

type Chain[E, T any] struct {
	res rop.Result[E, T]
}

func Start[E, T any](r rop.Result[E, T]) Chain[E, T] {
	return Chain[E, T]{res: r}
}

func FromValue[E, T any](v T) Chain[E, T] {
	return Start(rop.Ok[E](v))
}

func (c Chain[E, T]) Result() rop.Result[E, T] {
	return c.res
}

// Then composes functions that already return rop.Result[E, T]
func (c Chain[E, T]) Then(onSuccess func(t T) rop.Result[E, T]) Chain[E, T] {
	return Chain[E, T]{res: solo.Chain(c.res, onSuccess)}
}

// ThenTry composes functions that return (T, error). The chain must carry
// error failures.
func (c Chain[E, T]) ThenTry(try func(t T) (T, error), wrap func(error) E) Chain[E, T] {
	if c.res.IsErr() {
		return c
	}
	v, err := try(c.res.Value())
	if err != nil {
		return Chain[E, T]{res: rop.Err[T](wrap(err))}
	}
	return Chain[E, T]{res: rop.Ok[E](v)}
}

// Map transforms the successful value to a new value
func (c Chain[E, T]) Map(onSuccess func(t T) T) Chain[E, T] {
	return Chain[E, T]{res: rop.Map(c.res, onSuccess)}
}

func (c Chain[E, T]) Filter(predicate func(t T) bool, errorFactory func(t T) E) Chain[E, T] {
	return Chain[E, T]{res: solo.Filter(c.res, predicate, errorFactory)}
}

func (c Chain[E, T]) Recover(onFailure func(e E) rop.Result[E, T]) Chain[E, T] {
	return Chain[E, T]{res: solo.Recover(c.res, onFailure)}
}

func (c Chain[E, T]) RepeatUntil(onSuccess func(t T) rop.Result[E, T], until func(t T) bool) Chain[E, T] {
	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsErr() || !until(c.res.Value()) {
			return c
		}
	}
}

func (c Chain[E, T]) While(onSuccess func(t T) rop.Result[E, T], while func(t T) bool) Chain[E, T] {
	for c.res.IsOk() && while(c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain, otherwise the last failure.
func (c Chain[E, T]) Or(alternatives ...Chain[E, T]) Chain[E, T] {
	candidates := make([]rop.Result[E, T], 0, len(alternatives)+1)
	candidates = append(candidates, c.res)
	for _, alt := range alternatives {
		candidates = append(candidates, alt.res)
	}
	return Chain[E, T]{res: solo.FirstOkOr(candidates, c.res.Err())}
}

// And returns the first failed chain, otherwise the last one.
func (c Chain[E, T]) And(required ...Chain[E, T]) Chain[E, T] {
	res := c.res
	if res.IsErr() {
		return c
	}
	for _, ch := range required {
		res = ch.res
		if res.IsErr() {
			return ch
		}
	}
	return Chain[E, T]{res: res}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[E, T]) Ensure(onSuccess func(T), onFailure func(E)) Chain[E, T] {
	if c.res.IsErr() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[E, T]) Finally(onSuccess func(T) T, onFailure func(E) T) T {
	return rop.Match(c.res, onSuccess, onFailure)
}
