package core

import (
	"context"

	"go.uber.org/zap"
)

// ToChan emits values in order on an unbuffered channel and closes it once
// every value was taken or ctx is done.
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for i, v := range values {
			if ctx.Err() != nil {
				LoggerFrom(ctx).Debug("in: context done before send", zap.Int("rest", len(values)-i))
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				LoggerFrom(ctx).Debug("in: context done during send", zap.Int("rest", len(values)-i))
				return
			}
		}
	}()

	return in
}

// FromChan collects everything received on out until it is closed or ctx is
// done.
func FromChan[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
