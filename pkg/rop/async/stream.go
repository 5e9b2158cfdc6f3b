package async

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ib-77/kairo/pkg/rop"
	"github.com/ib-77/kairo/pkg/rop/core"
)

// Stream runs fn over items received on in using a fixed set of workers, one
// per unit of the context worker limit (DefaultLimit when the limit is <= 0).
// Every item yields one Result; output order follows completion. The returned
// channel is closed once in is closed and drained or ctx is done. Items still
// in flight on cancellation are dropped and logged.
func Stream[In, Out any](ctx context.Context, in <-chan In, fn Func[In, Out]) <-chan rop.Result[error, Out] {
	workers := core.GetWorkerLimit(ctx, DefaultLimit)
	if workers <= 0 {
		workers = DefaultLimit
	}

	out := make(chan rop.Result[error, Out])
	log := core.LoggerFrom(ctx)
	handlers := core.CancellationHandlers[In, rop.Result[error, Out]]{
		OnCancelUnprocessed: func(ctx context.Context, _ In) {
			log.Debug("stream: dropping unprocessed item", zap.Error(ctx.Err()))
		},
		OnCancelProcessed: func(ctx context.Context, _ In, _ rop.Result[error, Out]) {
			log.Debug("stream: dropping processed item", zap.Error(ctx.Err()))
		},
	}
	engine := func(ctx context.Context, item In) rop.Result[error, Out] {
		v, err := call(ctx, fn, item)
		if err != nil {
			return rop.Err[Out](err)
		}
		return rop.Ok[error](v)
	}

	wg := &sync.WaitGroup{}
	wg.Add(workers)
	for range workers {
		go core.Locomotive(ctx, in, out, engine, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Collect streams items through fn and returns every result together with the
// first failure in completion order.
func Collect[In, Out any](ctx context.Context, items []In, fn Func[In, Out]) ([]rop.Result[error, Out], error) {
	results := core.FromChan(ctx, Stream(ctx, core.ToChan(ctx, items...), fn))
	if err := ctx.Err(); err != nil {
		return results, err
	}
	for _, r := range results {
		if r.IsErr() {
			return results, r.Err()
		}
	}
	return results, nil
}
