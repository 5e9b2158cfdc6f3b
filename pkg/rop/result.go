package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or an error of type E.
// Exactly one of the two is present.
type Result[E, T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

func Ok[E, T any](v T) Result[E, T] {
	return Result[E, T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[E, T] {
	return Result[E, T]{
		err:       e,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[E, T]) IsOk() bool {
	return r.ok
}

func (r Result[E, T]) IsErr() bool {
	return !r.ok
}

// Value returns the success value, or the zero T for an Err.
func (r Result[E, T]) Value() T {
	return r.value
}

// Err returns the error payload, or the zero E for an Ok.
func (r Result[E, T]) Err() E {
	return r.err
}

func (r Result[E, T]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

func (r Result[E, T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[E, T]) Id() uuid.UUID {
	return r.id
}

// Map transforms the success value. An Err passes through unchanged.
func Map[E, T, U any](r Result[E, T], fn func(T) U) Result[E, U] {
	if r.ok {
		return Ok[E](fn(r.value))
	}
	return Err[U](r.err)
}

// Match reduces the result to a single value with one handler per variant.
func Match[E, T, U any](r Result[E, T], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}
