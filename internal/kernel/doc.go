// Package kernel implements the element-wise and reduction algorithms of a
// vector over raw buffers.
//
// Element-wise kernels take a half-open index range [lo, hi) and write into a
// caller-owned destination, so the engine can split a single operation over
// several goroutines. Every output element depends only on the inputs at the
// same index.
//
// Reductions always walk the buffer in index order, accumulate in float64 and
// round the final result to float32 for Single precision buffers.
//
// Callers are responsible for shape checks: kernels assume every buffer
// passed to one call has the same dimensions and precision.
package kernel
