package async

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ib-77/kairo/pkg/rop/core"
)

var ErrTimeout = errors.New("Operation timed out")

type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Operation timed out after %dms", e.After.Milliseconds())
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// WithTimeout races fn against a timer of d. If the timer wins it returns
// timeoutErr, or a *TimeoutError when timeoutErr is nil. fn is not cancelled:
// it keeps running and its late outcome is dropped.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error), timeoutErr error) (T, error) {
	type outcome struct {
		value T
		err   error
	}

	done := make(chan outcome, 1)
	go func() {
		v, err := call(ctx, func(ctx context.Context, _ struct{}) (T, error) { return fn(ctx) }, struct{}{})
		done <- outcome{value: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	var zero T
	select {
	case o := <-done:
		return o.value, o.err
	case <-timer.C:
		core.LoggerFrom(ctx).Debug("operation timed out", zap.Duration("after", d))
		if timeoutErr != nil {
			return zero, timeoutErr
		}
		return zero, &TimeoutError{After: d}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
