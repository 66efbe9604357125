package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    opCounter   *prometheus.CounterVec
//	    opHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordOp(op string, dims int, d time.Duration, err error) {
//	    p.opCounter.WithLabelValues(op).Inc()
//	    p.opHistogram.WithLabelValues(op).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordOp is called after each engine operation.
	// dimensions is the vector length (0 for decode failures before the
	// length is known), err is nil if successful.
	RecordOp(op string, dimensions int, duration time.Duration, err error)

	// RecordParallel is called when an element-wise operation is split into
	// chunks running on separate goroutines.
	RecordParallel(op string, chunks int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOp(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordParallel(string, int)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OpCount        atomic.Int64
	OpErrors       atomic.Int64
	OpTotalNanos   atomic.Int64
	Elements       atomic.Int64
	ParallelOps    atomic.Int64
	ParallelChunks atomic.Int64

	mu   sync.Mutex
	byOp map[string]int64
}

// RecordOp implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOp(op string, dimensions int, duration time.Duration, err error) {
	b.OpCount.Add(1)
	b.OpTotalNanos.Add(duration.Nanoseconds())
	b.Elements.Add(int64(dimensions))
	if err != nil {
		b.OpErrors.Add(1)
	}

	b.mu.Lock()
	if b.byOp == nil {
		b.byOp = make(map[string]int64)
	}
	b.byOp[op]++
	b.mu.Unlock()
}

// RecordParallel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParallel(_ string, chunks int) {
	b.ParallelOps.Add(1)
	b.ParallelChunks.Add(int64(chunks))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	b.mu.Lock()
	byOp := make(map[string]int64, len(b.byOp))
	for k, v := range b.byOp {
		byOp[k] = v
	}
	b.mu.Unlock()

	return BasicMetricsStats{
		OpCount:        b.OpCount.Load(),
		OpErrors:       b.OpErrors.Load(),
		OpAvgNanos:     b.getAvgOpNanos(),
		Elements:       b.Elements.Load(),
		ParallelOps:    b.ParallelOps.Load(),
		ParallelChunks: b.ParallelChunks.Load(),
		ByOp:           byOp,
	}
}

func (b *BasicMetricsCollector) getAvgOpNanos() int64 {
	count := b.OpCount.Load()
	if count == 0 {
		return 0
	}
	return b.OpTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	OpCount        int64
	OpErrors       int64
	OpAvgNanos     int64
	Elements       int64
	ParallelOps    int64
	ParallelChunks int64
	ByOp           map[string]int64
}
