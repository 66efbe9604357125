package engine

import (
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/flatvec/internal/kernel"
)

// forEach runs fn over [0, n). Large inputs are split into at most
// e.workers contiguous ranges that run concurrently; fn must only write the
// slots of its own range.
func (e *Engine) forEach(op kernel.Op, n int, fn func(lo, hi int)) {
	if e.workers == 1 || n < e.threshold {
		fn(0, n)
		return
	}

	chunks := min(e.workers, n)
	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(e.workers)

	count := 0
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		count++
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()

	e.logger.LogParallel(op.String(), n, count)
	if e.metrics != nil {
		e.metrics.RecordParallel(op.String(), count)
	}
}
