package core

import (
	"context"
	"sync"
)

type CancellationHandlers[In, Out any] struct {
	OnCancelUnprocessed func(ctx context.Context, unprocessed In)
	OnCancelProcessed   func(ctx context.Context, in In, processed Out)
}

// Locomotive is a single pipeline worker. It feeds items from inputCh through
// engine into outCh until inputCh is closed or ctx is done, then calls
// wg.Done. Items caught by cancellation go to handlers instead of outCh.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) Out,
	handlers CancellationHandlers[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in)
				}
				return
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr)
				}
				return
			case outCh <- pr:
			}
		}
	}
}
