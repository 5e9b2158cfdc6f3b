// Package async lifts computations that may block or fail over slices and
// into rop.Result.
//
// A step is a Func: func(ctx, in) (out, error). Returning an error or
// panicking is a failure; panics are converted to rop.PanicError.
//
// Highlights:
// - Pipe: run steps one after another
// - Map/Filter/ForEach: concurrent fan-out, output in input order
// - MapSeq: strictly sequential Map
// - ToResult/Sequence/Traverse: bridge to rop.Result
// - Retry: exponential backoff with a bounded number of attempts
// - WithTimeout: race a step against a timer
// - Stream/Collect: channel stage with a fixed pool of workers
//
// Fan-out is bounded by the worker limit carried in the context
// (core.WithWorkerLimit), DefaultLimit when none is set. A limit <= 0 lets
// every call start at once. Nothing here cancels work that already started
// except through ctx.
package async
