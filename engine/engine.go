package engine

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/flatvec/internal/cpu"
)

// DefaultParallelThreshold is the element count from which element-wise
// kernels are split across goroutines.
const DefaultParallelThreshold = 1 << 16

var (
	// ErrInvalidWorkers is returned by Load when the worker count is < 1.
	ErrInvalidWorkers = errors.New("workers must be >= 1")
	// ErrInvalidThreshold is returned by Load when the parallel threshold is < 1.
	ErrInvalidThreshold = errors.New("parallel threshold must be >= 1")
)

var nextID atomic.Uint64

// Engine is a loaded numeric backend. It is safe for concurrent use; the
// vectors it operates on are not.
type Engine struct {
	id        uint64
	isa       cpu.ISA
	workers   int
	threshold int
	logger    *Logger
	metrics   MetricsCollector
}

// Info describes a loaded engine.
type Info struct {
	ID                uint64
	ISA               string
	ISAOverridden     bool
	Workers           int
	ParallelThreshold int
}

// Load resolves the numeric backend once and returns its handle.
func Load(optFns ...Option) (*Engine, error) {
	opts := options{
		workers:   runtime.GOMAXPROCS(0),
		threshold: DefaultParallelThreshold,
		logger:    NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, opts.workers)
	}
	if opts.threshold < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, opts.threshold)
	}

	e := &Engine{
		id:        nextID.Add(1),
		isa:       cpu.ActiveISA(),
		workers:   opts.workers,
		threshold: opts.threshold,
		logger:    opts.logger,
		metrics:   opts.metrics,
	}
	e.logger.LogLoad(e.Info())

	return e, nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := Load()
	if err != nil {
		// Default options always validate.
		panic(err)
	}
	return e
})

// Default returns the process-wide engine, loading it with default options
// on first use.
func Default() *Engine {
	return defaultEngine()
}

// Info returns a description of the engine.
func (e *Engine) Info() Info {
	return Info{
		ID:                e.id,
		ISA:               e.isa.String(),
		ISAOverridden:     cpu.IsOverridden(),
		Workers:           e.workers,
		ParallelThreshold: e.threshold,
	}
}

// ID returns a process-unique identifier of the engine.
func (e *Engine) ID() uint64 { return e.id }

// Logger returns the engine logger.
func (e *Engine) Logger() *Logger { return e.logger }

func (e *Engine) String() string {
	return fmt.Sprintf("engine#%d(isa=%s, workers=%d, threshold=%d)", e.id, e.isa, e.workers, e.threshold)
}
