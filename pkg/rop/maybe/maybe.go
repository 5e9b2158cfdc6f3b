package maybe

import (
	"context"

	"go.uber.org/zap"

	"github.com/ib-77/kairo/pkg/rop"
	"github.com/ib-77/kairo/pkg/rop/core"
)

const DefaultUnwrapMessage = "value is absent"

// Maybe is a value that may be absent. The zero Maybe is absent.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Partitioned holds the present values of a slice and the positions of the
// absent ones, both in input order.
type Partitioned[T any] struct {
	Present []T
	Absent  []int
}

func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr treats a nil pointer as absent.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Of builds a Maybe from the comma-ok idiom.
func Of[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (m Maybe[T]) IsSome() bool {
	return m.ok
}

func (m Maybe[T]) IsNone() bool {
	return !m.ok
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// Fold applies fn to a present value, or returns defaultValue.
func Fold[T, U any](m Maybe[T], fn func(T) U, defaultValue U) U {
	if m.ok {
		return fn(m.value)
	}
	return defaultValue
}

func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.ok {
		return Some(fn(m.value))
	}
	return None[U]()
}

func Chain[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.ok {
		return fn(m.value)
	}
	return None[U]()
}

func Filter[T any](m Maybe[T], predicate func(T) bool) Maybe[T] {
	if m.ok && predicate(m.value) {
		return m
	}
	return None[T]()
}

func WithDefault[T any](m Maybe[T], defaultValue T) T {
	if m.ok {
		return m.value
	}
	return defaultValue
}

// Unwrap returns the value or panics with message (DefaultUnwrapMessage when
// omitted). Only use it where presence is already guaranteed.
func Unwrap[T any](m Maybe[T], message ...string) T {
	if m.ok {
		return m.value
	}
	msg := DefaultUnwrapMessage
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	panic(msg)
}

// FromTry runs fn and keeps its value. A returned error or a panic becomes
// None; the cause is only reported to the diagnostics logger.
func FromTry[T any](fn func() (T, error)) Maybe[T] {
	v, err := try(fn)
	if err != nil {
		core.Logger().Debug("maybe: discarding error", zap.Error(err))
		return None[T]()
	}
	return Some(v)
}

// FromAsync runs fn on its own goroutine and waits for it. Failure, panic or
// ctx being done all become None.
func FromAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Maybe[T] {
	type outcome struct {
		value T
		err   error
	}

	done := make(chan outcome, 1)
	go func() {
		v, err := try(func() (T, error) { return fn(ctx) })
		done <- outcome{value: v, err: err}
	}()

	select {
	case o := <-done:
		if o.err != nil {
			core.LoggerFrom(ctx).Debug("maybe: discarding async error", zap.Error(o.err))
			return None[T]()
		}
		return Some(o.value)
	case <-ctx.Done():
		core.LoggerFrom(ctx).Debug("maybe: context done before value", zap.Error(ctx.Err()))
		return None[T]()
	}
}

func try[T any](fn func() (T, error)) (v T, err error) {
	defer rop.Recover(&err)
	return fn()
}

// All returns every value when all of them are present.
func All[T any](values ...Maybe[T]) Maybe[[]T] {
	out := make([]T, 0, len(values))
	for _, m := range values {
		if !m.ok {
			return None[[]T]()
		}
		out = append(out, m.value)
	}
	return Some(out)
}

func First[T any](values ...Maybe[T]) Maybe[T] {
	for _, m := range values {
		if m.ok {
			return m
		}
	}
	return None[T]()
}

// When runs fn for a present value and returns m unchanged.
func When[T any](m Maybe[T], fn func(T)) Maybe[T] {
	if m.ok {
		fn(m.value)
	}
	return m
}

func ToResult[E, T any](m Maybe[T], errValue E) rop.Result[E, T] {
	if m.ok {
		return rop.Ok[E](m.value)
	}
	return rop.Err[T](errValue)
}

func Partition[T any](values []Maybe[T]) Partitioned[T] {
	p := Partitioned[T]{
		Present: make([]T, 0, len(values)),
		Absent:  make([]int, 0),
	}
	for i, m := range values {
		if m.ok {
			p.Present = append(p.Present, m.value)
		} else {
			p.Absent = append(p.Absent, i)
		}
	}
	return p
}
