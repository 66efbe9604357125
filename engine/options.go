package engine

import "log/slog"

type options struct {
	workers   int
	threshold int
	logger    *Logger
	metrics   MetricsCollector
}

// Option configures Load.
type Option func(*options)

// WithWorkers bounds the number of goroutines used by one element-wise
// operation. 1 disables parallel execution.
//
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithParallelThreshold sets the minimum element count at which
// element-wise operations are split across workers.
//
// Defaults to DefaultParallelThreshold.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.threshold = n
	}
}

// WithLogger sets the logger for the engine.
// If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			o.logger = NoopLogger()
			return
		}
		o.logger = &Logger{Logger: l}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &engine.BasicMetricsCollector{}
//	eng, _ := engine.Load(engine.WithMetricsCollector(metrics))
//	// ... use vectors created with flatvec.WithEngine(eng)
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}
