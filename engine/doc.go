// Package engine provides the numeric backend behind every flatvec.Vector.
//
// An Engine is loaded once and threaded through vector construction. It
// resolves the CPU capabilities used to pick kernels, owns the logger and
// metrics collector, and decides when element-wise kernels are split across
// goroutines.
//
// # Loading
//
//	eng, err := engine.Load(
//	    engine.WithWorkers(4),
//	    engine.WithParallelThreshold(1<<15),
//	    engine.WithLogger(slog.Default()),
//	)
//
// engine.Default() returns a process-wide engine loaded with default options
// on first use.
//
// # Parallelism
//
// Element-wise operations (add, sub, mul, div, mod, neg, fill, cmp) on
// vectors with at least ParallelThreshold elements are split into disjoint
// index ranges and run on up to Workers goroutines. Each range writes only its
// own slots of a freshly allocated result, so the output is identical to a
// sequential run. Reductions always run sequentially in index order.
//
// # Environment
//
// FLATVEC_ISA (generic, neon, sve2, avx2, avx512) overrides the detected
// instruction set when the CPU supports it.
package engine
