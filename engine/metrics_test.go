package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/flatvec/internal/buffer"
	"github.com/hupe1980/flatvec/internal/kernel"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	e, err := Load(WithMetricsCollector(mc), WithWorkers(2), WithParallelThreshold(4))
	require.NoError(t, err)

	a := fill(t, e, buffer.Double, 1, 2, 3, 4)
	e.Binary(kernel.OpAdd, a, a)
	e.Sum(a)
	_, err = e.PNorm(a, 5)
	require.Error(t, err)
	e.Reject(kernel.OpDot, 4, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(4), stats.OpCount)
	assert.Equal(t, int64(2), stats.OpErrors)
	assert.Equal(t, int64(16), stats.Elements)
	assert.Equal(t, int64(1), stats.ParallelOps)
	assert.Equal(t, int64(2), stats.ParallelChunks)
	assert.Equal(t, map[string]int64{"add": 1, "sum": 1, "p_norm": 1, "dot": 1}, stats.ByOp)
}

func TestNoopMetricsCollector(t *testing.T) {
	e, err := Load(WithMetricsCollector(NoopMetricsCollector{}))
	require.NoError(t, err)

	a := fill(t, e, buffer.Single, 1, 2)
	assert.Equal(t, 3.0, e.Sum(a))
}

func TestEmptyStats(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()
	assert.Zero(t, stats.OpCount)
	assert.Zero(t, stats.OpAvgNanos)
	assert.Empty(t, stats.ByOp)
}
