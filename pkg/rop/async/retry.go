package async

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/ib-77/kairo/pkg/rop/core"
)

const (
	DefaultInitialDelay  = 100 * time.Millisecond
	DefaultBackoffFactor = 2.0
	DefaultMaxDelay      = 10 * time.Second
)

// RetryOptions configures Retry. Zero fields take the defaults above.
type RetryOptions struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries    int
	InitialDelay  time.Duration
	BackoffFactor float64
	MaxDelay      time.Duration
}

func (o RetryOptions) withDefaults() RetryOptions {
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = DefaultInitialDelay
	}
	if o.BackoffFactor <= 0 {
		o.BackoffFactor = DefaultBackoffFactor
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = DefaultMaxDelay
	}
	if o.InitialDelay > o.MaxDelay {
		o.InitialDelay = o.MaxDelay
	}
	return o
}

func (o RetryOptions) backOff() *backoff.ExponentialBackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     o.InitialDelay,
		RandomizationFactor: 0,
		Multiplier:          o.BackoffFactor,
		MaxInterval:         o.MaxDelay,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return b
}

// Retry calls fn until it succeeds, at most MaxRetries+1 times. Before retry n
// (counting from 0) it waits min(InitialDelay*BackoffFactor^n, MaxDelay).
// When every attempt failed the last error is returned. A done ctx stops the
// retries early and its error is returned. Errors from fn are never treated as
// permanent, even when they wrap *backoff.PermanentError.
func Retry[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts RetryOptions) (T, error) {
	opts = opts.withDefaults()
	log := core.LoggerFrom(ctx)

	attempt := 0
	policy := backoff.WithContext(backoff.WithMaxRetries(opts.backOff(), uint64(opts.MaxRetries)), ctx)

	v, err := backoff.RetryNotifyWithData(
		func() (T, error) {
			attempt++
			v, err := call(ctx, func(ctx context.Context, _ struct{}) (T, error) { return fn(ctx) }, struct{}{})
			if err != nil {
				return v, attemptError{err: err}
			}
			return v, nil
		},
		policy,
		func(err error, delay time.Duration) {
			log.Debug("retrying after failure",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", opts.MaxRetries),
				zap.Duration("delay", delay),
				zap.Error(err))
		},
	)
	if failed, ok := err.(attemptError); ok {
		return v, failed.err
	}
	return v, err
}

// attemptError hides fn's error chain from backoff so a wrapped
// *backoff.PermanentError cannot end the retries early.
type attemptError struct {
	err error
}

func (e attemptError) Error() string {
	return e.err.Error()
}
