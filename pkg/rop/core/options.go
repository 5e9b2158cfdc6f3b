package core

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	LoggerOptionKey OptionKey = "logger_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// WithWorkerLimit bounds how many calls a parallel combinator keeps in flight.
// A limit <= 0 removes the bound.
func WithWorkerLimit(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerLimit(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}
